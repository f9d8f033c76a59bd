package store

import (
	"context"
	"fmt"
	"strings"
)

// Song is a catalog track joined with its genre classification.
type Song struct {
	Title    string `json:"songTitle"`
	Artist   string `json:"artistName"`
	Album    string `json:"albumTitle"`
	Genre    string `json:"genreName,omitempty"`
	Duration int    `json:"duration"`
	Plays    int64  `json:"plays"`
}

// SongFilter defines the search criteria. Empty fields add no filter.
type SongFilter struct {
	Title  string
	Artist string
	Album  string
	Genre  string
	// LikedBy restricts results to songs liked by the given user.
	LikedBy string
	// SortOrder is "ASC" or "DESC"; anything else falls back to "DESC".
	SortOrder string
}

const songColumns = `s.song_title, s.artist_name, s.album_title, COALESCE(c.genre_name, ''), s.duration, s.plays`

// SearchSongs returns all catalog songs matching the filter, ordered by
// play count. There is no pagination; the full result set comes back.
func (s *Store) SearchSongs(ctx context.Context, filter SongFilter) ([]Song, error) {
	query := `
		SELECT ` + songColumns + `
		FROM songs s
		LEFT JOIN classifications c
			ON c.song_title = s.song_title
			AND c.artist_name = s.artist_name
			AND c.album_title = s.album_title
		WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	for _, f := range []struct {
		column string
		value  string
	}{
		{"s.song_title", filter.Title},
		{"s.artist_name", filter.Artist},
		{"s.album_title", filter.Album},
		{"c.genre_name", filter.Genre},
	} {
		if f.value == "" {
			continue
		}
		query += fmt.Sprintf(" AND %s ILIKE $%d", f.column, argIdx)
		args = append(args, "%"+f.value+"%")
		argIdx++
	}

	if filter.LikedBy != "" {
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM user_likes ul
			WHERE ul.username = $%d
				AND ul.song_title = s.song_title
				AND ul.artist_name = s.artist_name
				AND ul.album_title = s.album_title
		)`, argIdx)
		args = append(args, filter.LikedBy)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY s.plays %s, s.song_title ASC", sortDirection(filter.SortOrder))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	return scanSongs(rows)
}

// songExists reports whether the natural-key triple is in the catalog.
func (s *Store) songExists(ctx context.Context, ref SongRef) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM songs
			WHERE song_title = $1 AND artist_name = $2 AND album_title = $3
		)
	`, ref.Title, ref.Artist, ref.Album).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check song: %w", err)
	}
	return exists, nil
}

func sortDirection(order string) string {
	if strings.EqualFold(order, "ASC") {
		return "ASC"
	}
	return "DESC"
}
