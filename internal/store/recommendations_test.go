package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRecommendSongs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cols := []string{"song_title", "artist_name", "album_title", "genre_name", "duration", "plays", "score"}
	mock.ExpectQuery(`(?s)WITH liked AS.*NOT EXISTS.*ORDER BY score DESC`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("Glass Signal", "Kilo Array", "Transmission", "Electronic", 281, int64(120034), 6).
			AddRow("Harbor Lights", "Neon Harbor", "City Lights", "Synthwave", 230, int64(88450), 3))

	recs, err := New(db).RecommendSongs(context.Background(), "alice")
	if err != nil {
		t.Fatalf("RecommendSongs() unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("RecommendSongs() returned %d songs, want 2", len(recs))
	}
	if recs[0].Score != 6 || recs[1].Score != 3 {
		t.Errorf("RecommendSongs() scores = %d, %d, want 6, 3", recs[0].Score, recs[1].Score)
	}
	if recs[0].Title != "Glass Signal" || recs[0].Genre != "Electronic" {
		t.Errorf("RecommendSongs()[0] = %+v, want Glass Signal / Electronic", recs[0].Song)
	}
}

func TestRecommendSongsNothingLikedYet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cols := []string{"song_title", "artist_name", "album_title", "genre_name", "duration", "plays", "score"}
	mock.ExpectQuery(`(?s)WITH liked AS`).
		WithArgs("newcomer").
		WillReturnRows(sqlmock.NewRows(cols))

	recs, err := New(db).RecommendSongs(context.Background(), "newcomer")
	if err != nil {
		t.Fatalf("RecommendSongs() unexpected error: %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Errorf("RecommendSongs() = %v, want empty non-nil slice", recs)
	}
}
