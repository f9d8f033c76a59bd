package main

import (
	"context"
	"database/sql"
	"fmt"
)

// bootstrapDemoData seeds a small catalog and one chart so the app has
// something to browse on a fresh database. It is a no-op when songs
// already exist or the schema has not been migrated yet.
func bootstrapDemoData(ctx context.Context, db *sql.DB) error {
	songsTableExists, err := tableExists(ctx, db, "songs")
	if err != nil {
		return fmt.Errorf("check songs table: %w", err)
	}
	if !songsTableExists {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs`).Scan(&count); err != nil {
		return fmt.Errorf("count songs: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seedSong struct {
		Title    string
		Artist   string
		Album    string
		Genre    string
		Duration int
		Plays    int64
	}

	seeds := []seedSong{
		{"Midnight Drive", "Neon Harbor", "City Lights", "Synthwave", 244, 93210},
		{"Glass Towers", "Neon Harbor", "City Lights", "Synthwave", 201, 78450},
		{"Afterglow", "Neon Harbor", "Afterglow", "Synthpop", 233, 120034},
		{"Paper Boats", "Willow June", "Field Notes", "Folk", 187, 45120},
		{"Harvest Moon Waltz", "Willow June", "Field Notes", "Folk", 212, 38995},
		{"Static Bloom", "Kilo Array", "Transmission", "Electronic", 305, 150678},
		{"Signal Lost", "Kilo Array", "Transmission", "Electronic", 278, 99321},
		{"Ivory Steps", "Mara Quinn", "Solo Sessions", "Jazz", 254, 27410},
	}

	for _, s := range seeds {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO artists (artist_name) VALUES ($1)
			ON CONFLICT DO NOTHING
		`, s.Artist); err != nil {
			return fmt.Errorf("seed artist: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO albums (album_title) VALUES ($1)
			ON CONFLICT DO NOTHING
		`, s.Album); err != nil {
			return fmt.Errorf("seed album: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO genres (genre_name) VALUES ($1)
			ON CONFLICT DO NOTHING
		`, s.Genre); err != nil {
			return fmt.Errorf("seed genre: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO songs (song_title, artist_name, album_title, duration, plays)
			VALUES ($1, $2, $3, $4, $5)
		`, s.Title, s.Artist, s.Album, s.Duration, s.Plays); err != nil {
			return fmt.Errorf("seed song: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO classifications (song_title, artist_name, album_title, genre_name)
			VALUES ($1, $2, $3, $4)
		`, s.Title, s.Artist, s.Album, s.Genre); err != nil {
			return fmt.Errorf("seed classification: %w", err)
		}
	}

	const chartName = "Global Top"
	chartDates := []string{"2024-01-05", "2024-01-12"}
	charted := seeds[:5]

	for _, date := range chartDates {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO top_charts (chart_name, chart_date) VALUES ($1, $2)
		`, chartName, date); err != nil {
			return fmt.Errorf("seed chart: %w", err)
		}
		for _, s := range charted {
			if _, err := db.ExecContext(ctx, `
				INSERT INTO chart_entries (chart_name, chart_date, song_title, artist_name, album_title)
				VALUES ($1, $2, $3, $4, $5)
			`, chartName, date, s.Title, s.Artist, s.Album); err != nil {
				return fmt.Errorf("seed chart entry: %w", err)
			}
		}
	}

	return nil
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)
	`, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
