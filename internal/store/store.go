package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserExists signals the username or email is already taken.
	ErrUserExists = errors.New("username or email already taken")
	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates a login or password-change failure.
	// The message never distinguishes an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSongNotFound indicates the referenced song is not in the catalog.
	ErrSongNotFound = errors.New("song not found")
	// ErrPlaylistExists signals a duplicate playlist name for the same user.
	ErrPlaylistExists = errors.New("playlist already exists")
	// ErrPlaylistNotFound indicates the playlist does not exist or is not
	// owned by the caller.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrSongAlreadyInPlaylist signals a duplicate inclusion.
	ErrSongAlreadyInPlaylist = errors.New("song already in playlist")
	// ErrSongNotInPlaylist indicates the song is not part of the playlist.
	ErrSongNotInPlaylist = errors.New("song not in playlist")
	// ErrAlreadyLiked signals a duplicate like.
	ErrAlreadyLiked = errors.New("song already liked")
	// ErrNotLiked indicates the song is not currently liked.
	ErrNotLiked = errors.New("song not liked")
	// ErrChartNotFound indicates the chart selection yields no rows.
	ErrChartNotFound = errors.New("chart not found")
)

// SongRef identifies a song by its natural key. The same triple travels on
// the wire; no surrogate IDs exist anywhere.
type SongRef struct {
	Title  string `json:"songTitle"`
	Artist string `json:"artistName"`
	Album  string `json:"albumTitle"`
}

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
