package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Playlist is a user-owned list of songs keyed by (name, username).
type Playlist struct {
	Name         string    `json:"name"`
	Username     string    `json:"username,omitempty"`
	CreationDate time.Time `json:"creationDate"`
}

// CreatePlaylist inserts a playlist with the current timestamp.
func (s *Store) CreatePlaylist(ctx context.Context, username, name string) (Playlist, error) {
	playlist := Playlist{Name: name, Username: username, CreationDate: time.Now().UTC()}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO playlists (name, username, creation_date)
		VALUES ($1, $2, $3)
	`, name, username, playlist.CreationDate); err != nil {
		if isUniqueViolation(err) {
			return Playlist{}, ErrPlaylistExists
		}
		return Playlist{}, fmt.Errorf("insert playlist: %w", err)
	}

	return playlist, nil
}

// ListPlaylists returns all playlists owned by one user, newest first.
func (s *Store) ListPlaylists(ctx context.Context, username string) ([]Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, username, creation_date
		FROM playlists
		WHERE username = $1
		ORDER BY creation_date DESC, name ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	return scanPlaylists(rows)
}

// ListAllPlaylists returns every playlist across all users with its owner.
func (s *Store) ListAllPlaylists(ctx context.Context) ([]Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, username, creation_date
		FROM playlists
		ORDER BY creation_date DESC, username ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list all playlists: %w", err)
	}
	defer rows.Close()

	return scanPlaylists(rows)
}

// DeletePlaylist removes a playlist owned by the user. Inclusion rows go
// with it via ON DELETE CASCADE.
func (s *Store) DeletePlaylist(ctx context.Context, username, name string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM playlists
		WHERE name = $1 AND username = $2
	`, name, username)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// AddSongToPlaylist adds a catalog song to a playlist the user owns.
func (s *Store) AddSongToPlaylist(ctx context.Context, username, name string, ref SongRef) error {
	if err := s.playlistExists(ctx, username, name); err != nil {
		return err
	}

	exists, err := s.songExists(ctx, ref)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSongNotFound
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO inclusions (playlist_name, username, song_title, artist_name, album_title)
		VALUES ($1, $2, $3, $4, $5)
	`, name, username, ref.Title, ref.Artist, ref.Album); err != nil {
		if isUniqueViolation(err) {
			return ErrSongAlreadyInPlaylist
		}
		return fmt.Errorf("insert inclusion: %w", err)
	}
	return nil
}

// RemoveSongFromPlaylist drops a song from a playlist the user owns.
func (s *Store) RemoveSongFromPlaylist(ctx context.Context, username, name string, ref SongRef) error {
	if err := s.playlistExists(ctx, username, name); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM inclusions
		WHERE playlist_name = $1 AND username = $2
			AND song_title = $3 AND artist_name = $4 AND album_title = $5
	`, name, username, ref.Title, ref.Artist, ref.Album)
	if err != nil {
		return fmt.Errorf("delete inclusion: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSongNotInPlaylist
	}
	return nil
}

// PlaylistSongs returns the member songs of a playlist. The playlist itself
// must exist; an empty playlist yields an empty list, not an error.
func (s *Store) PlaylistSongs(ctx context.Context, username, name string) ([]Song, error) {
	if err := s.playlistExists(ctx, username, name); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+songColumns+`
		FROM inclusions i
		JOIN songs s
			ON s.song_title = i.song_title
			AND s.artist_name = i.artist_name
			AND s.album_title = i.album_title
		LEFT JOIN classifications c
			ON c.song_title = s.song_title
			AND c.artist_name = s.artist_name
			AND c.album_title = s.album_title
		WHERE i.playlist_name = $1 AND i.username = $2
		ORDER BY s.song_title ASC
	`, name, username)
	if err != nil {
		return nil, fmt.Errorf("list playlist songs: %w", err)
	}
	defer rows.Close()

	return scanSongs(rows)
}

func (s *Store) playlistExists(ctx context.Context, username, name string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM playlists
		WHERE name = $1 AND username = $2
	`, name, username).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlaylistNotFound
	}
	if err != nil {
		return fmt.Errorf("check playlist: %w", err)
	}
	return nil
}

func scanPlaylists(rows *sql.Rows) ([]Playlist, error) {
	playlists := make([]Playlist, 0)
	for rows.Next() {
		var playlist Playlist
		if err := rows.Scan(&playlist.Name, &playlist.Username, &playlist.CreationDate); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	return playlists, nil
}

func scanSongs(rows *sql.Rows) ([]Song, error) {
	songs := make([]Song, 0)
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.Title, &song.Artist, &song.Album, &song.Genre, &song.Duration, &song.Plays); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}
