package store

import (
	"context"
	"fmt"
	"time"
)

// chartDateFormat is how chart dates travel on the wire.
const chartDateFormat = "2006-01-02"

// ChartNames returns the distinct chart names. An empty catalog yields an
// empty list, never an error.
func (s *Store) ChartNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT chart_name
		FROM top_charts
		ORDER BY chart_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list chart names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan chart name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chart names: %w", err)
	}
	return names, nil
}

// ChartDates returns the dates published for a chart, newest first.
func (s *Store) ChartDates(ctx context.Context, chartName string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT chart_date
		FROM top_charts
		WHERE chart_name = $1
		ORDER BY chart_date DESC
	`, chartName)
	if err != nil {
		return nil, fmt.Errorf("list chart dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan chart date: %w", err)
		}
		dates = append(dates, date.Format(chartDateFormat))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chart dates: %w", err)
	}
	if len(dates) == 0 {
		return nil, ErrChartNotFound
	}
	return dates, nil
}

// ChartSongs returns the songs on one chart edition, ordered by play count
// descending for ranking display.
func (s *Store) ChartSongs(ctx context.Context, chartName, chartDate string) ([]Song, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+songColumns+`
		FROM chart_entries e
		JOIN songs s
			ON s.song_title = e.song_title
			AND s.artist_name = e.artist_name
			AND s.album_title = e.album_title
		LEFT JOIN classifications c
			ON c.song_title = s.song_title
			AND c.artist_name = s.artist_name
			AND c.album_title = s.album_title
		WHERE e.chart_name = $1 AND e.chart_date = $2
		ORDER BY s.plays DESC, s.song_title ASC
	`, chartName, chartDate)
	if err != nil {
		return nil, fmt.Errorf("list chart songs: %w", err)
	}
	defer rows.Close()

	songs, err := scanSongs(rows)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, ErrChartNotFound
	}
	return songs, nil
}
