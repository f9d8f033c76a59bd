package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func expectLikeCheck(mock sqlmock.Sqlmock, username string, ref SongRef, liked bool) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM user_likes")).
		WithArgs(username, ref.Title, ref.Artist, ref.Album).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(liked))
}

func TestLikeSong(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New: %v", err)
		}
		defer db.Close()

		expectSongCheck(mock, testSong, true)
		expectLikeCheck(mock, "alice", testSong, false)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_likes")).
			WithArgs("alice", testSong.Title, testSong.Artist, testSong.Album, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := New(db).LikeSong(context.Background(), "alice", testSong); err != nil {
			t.Fatalf("LikeSong() unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("song absent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New: %v", err)
		}
		defer db.Close()

		expectSongCheck(mock, testSong, false)

		if err := New(db).LikeSong(context.Background(), "alice", testSong); !errors.Is(err, ErrSongNotFound) {
			t.Errorf("LikeSong() error = %v, want ErrSongNotFound", err)
		}
	})

	t.Run("already liked", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New: %v", err)
		}
		defer db.Close()

		expectSongCheck(mock, testSong, true)
		expectLikeCheck(mock, "alice", testSong, true)

		if err := New(db).LikeSong(context.Background(), "alice", testSong); !errors.Is(err, ErrAlreadyLiked) {
			t.Errorf("LikeSong() error = %v, want ErrAlreadyLiked", err)
		}
	})

	t.Run("race loser maps to already liked", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New: %v", err)
		}
		defer db.Close()

		expectSongCheck(mock, testSong, true)
		expectLikeCheck(mock, "alice", testSong, false)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_likes")).
			WithArgs("alice", testSong.Title, testSong.Artist, testSong.Album, sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		if err := New(db).LikeSong(context.Background(), "alice", testSong); !errors.Is(err, ErrAlreadyLiked) {
			t.Errorf("LikeSong() error = %v, want ErrAlreadyLiked", err)
		}
	})
}

func TestUnlikeSong(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_likes")).
		WithArgs("alice", testSong.Title, testSong.Artist, testSong.Album).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_likes")).
		WithArgs("alice", testSong.Title, testSong.Artist, testSong.Album).
		WillReturnResult(sqlmock.NewResult(0, 0))

	s := New(db)

	// Like then unlike restores the pre-like state; the second unlike is a miss.
	if err := s.UnlikeSong(context.Background(), "alice", testSong); err != nil {
		t.Fatalf("UnlikeSong() unexpected error: %v", err)
	}
	if err := s.UnlikeSong(context.Background(), "alice", testSong); !errors.Is(err, ErrNotLiked) {
		t.Errorf("UnlikeSong() second call error = %v, want ErrNotLiked", err)
	}
}

func TestListLikes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	likeDate := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_likes ul")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"song_title", "artist_name", "album_title", "genre_name", "duration", "plays", "like_date"}).
			AddRow("Static Bloom", "Kilo Array", "Transmission", "Electronic", 305, int64(150678), likeDate))

	likes, err := New(db).ListLikes(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListLikes() unexpected error: %v", err)
	}
	if len(likes) != 1 {
		t.Fatalf("ListLikes() returned %d likes, want 1", len(likes))
	}
	if likes[0].Title != "Static Bloom" || !likes[0].LikeDate.Equal(likeDate) {
		t.Errorf("ListLikes() first = %+v", likes[0])
	}
}
