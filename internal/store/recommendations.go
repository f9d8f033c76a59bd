package store

import (
	"context"
	"fmt"
)

// RecommendedSong is a catalog song with its co-occurrence score.
type RecommendedSong struct {
	Song
	Score int `json:"score"`
}

// RecommendSongs scores every song the user has not liked yet as
// 3*artist matches + 2*album matches + 1*genre matches against the user's
// liked artists, albums, and genres, counting distinct matches per
// dimension. Only songs with a positive score come back, ordered by score
// then play count. The set is recomputed from scratch on every call.
func (s *Store) RecommendSongs(ctx context.Context, username string) ([]RecommendedSong, error) {
	rows, err := s.db.QueryContext(ctx, `
		WITH liked AS (
			SELECT song_title, artist_name, album_title
			FROM user_likes
			WHERE username = $1
		),
		liked_artists AS (
			SELECT DISTINCT artist_name FROM liked
		),
		liked_albums AS (
			SELECT DISTINCT album_title FROM liked
		),
		liked_genres AS (
			SELECT DISTINCT c.genre_name
			FROM liked l
			JOIN classifications c
				ON c.song_title = l.song_title
				AND c.artist_name = l.artist_name
				AND c.album_title = l.album_title
		)
		SELECT s.song_title, s.artist_name, s.album_title,
			COALESCE(MIN(c.genre_name), ''), s.duration, s.plays,
			3 * COUNT(DISTINCT la.artist_name)
				+ 2 * COUNT(DISTINCT lb.album_title)
				+ COUNT(DISTINCT lg.genre_name) AS score
		FROM songs s
		LEFT JOIN classifications c
			ON c.song_title = s.song_title
			AND c.artist_name = s.artist_name
			AND c.album_title = s.album_title
		LEFT JOIN liked_artists la ON la.artist_name = s.artist_name
		LEFT JOIN liked_albums lb ON lb.album_title = s.album_title
		LEFT JOIN liked_genres lg ON lg.genre_name = c.genre_name
		WHERE NOT EXISTS (
			SELECT 1 FROM liked l
			WHERE l.song_title = s.song_title
				AND l.artist_name = s.artist_name
				AND l.album_title = s.album_title
		)
		GROUP BY s.song_title, s.artist_name, s.album_title, s.duration, s.plays
		HAVING 3 * COUNT(DISTINCT la.artist_name)
			+ 2 * COUNT(DISTINCT lb.album_title)
			+ COUNT(DISTINCT lg.genre_name) > 0
		ORDER BY score DESC, s.plays DESC, s.song_title ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	recs := make([]RecommendedSong, 0)
	for rows.Next() {
		var rec RecommendedSong
		if err := rows.Scan(&rec.Title, &rec.Artist, &rec.Album, &rec.Genre,
			&rec.Duration, &rec.Plays, &rec.Score); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendations: %w", err)
	}
	return recs, nil
}
