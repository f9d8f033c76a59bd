package store

import (
	"context"
	"fmt"
	"time"
)

// LikedSong is a catalog song plus the timestamp of the caller's like.
type LikedSong struct {
	Song
	LikeDate time.Time `json:"likeDate"`
}

// LikeSong records a like for a catalog song. The check-then-insert pair is
// not transactional; the composite primary key on user_likes is the
// backstop when two requests race, and the losing insert maps to
// ErrAlreadyLiked.
func (s *Store) LikeSong(ctx context.Context, username string, ref SongRef) error {
	exists, err := s.songExists(ctx, ref)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSongNotFound
	}

	liked, err := s.isLiked(ctx, username, ref)
	if err != nil {
		return err
	}
	if liked {
		return ErrAlreadyLiked
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO user_likes (username, song_title, artist_name, album_title, like_date)
		VALUES ($1, $2, $3, $4, $5)
	`, username, ref.Title, ref.Artist, ref.Album, time.Now().UTC()); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyLiked
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

// UnlikeSong removes a like.
func (s *Store) UnlikeSong(ctx context.Context, username string, ref SongRef) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM user_likes
		WHERE username = $1 AND song_title = $2 AND artist_name = $3 AND album_title = $4
	`, username, ref.Title, ref.Artist, ref.Album)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotLiked
	}
	return nil
}

// ListLikes returns all songs liked by the user, newest like first.
func (s *Store) ListLikes(ctx context.Context, username string) ([]LikedSong, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+songColumns+`, ul.like_date
		FROM user_likes ul
		JOIN songs s
			ON s.song_title = ul.song_title
			AND s.artist_name = ul.artist_name
			AND s.album_title = ul.album_title
		LEFT JOIN classifications c
			ON c.song_title = s.song_title
			AND c.artist_name = s.artist_name
			AND c.album_title = s.album_title
		WHERE ul.username = $1
		ORDER BY ul.like_date DESC, s.song_title ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer rows.Close()

	likes := make([]LikedSong, 0)
	for rows.Next() {
		var liked LikedSong
		if err := rows.Scan(&liked.Title, &liked.Artist, &liked.Album, &liked.Genre,
			&liked.Duration, &liked.Plays, &liked.LikeDate); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		likes = append(likes, liked)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}
	return likes, nil
}

func (s *Store) isLiked(ctx context.Context, username string, ref SongRef) (bool, error) {
	var liked bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM user_likes
			WHERE username = $1 AND song_title = $2 AND artist_name = $3 AND album_title = $4
		)
	`, username, ref.Title, ref.Artist, ref.Album).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return liked, nil
}
