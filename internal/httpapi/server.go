package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"tracknest/internal/auth"
	"tracknest/internal/store"
)

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Register(ctx context.Context, username, email, password, bio string) error
	Login(ctx context.Context, email, password string) (store.User, error)
	Profile(ctx context.Context, username string) (store.User, error)
	UpdateBio(ctx context.Context, username, bio string) error
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, username string) error
}

// CatalogService exposes catalog search.
type CatalogService interface {
	Search(ctx context.Context, filter store.SongFilter) ([]store.Song, error)
}

// PlaylistService coordinates playlist-related operations.
type PlaylistService interface {
	Create(ctx context.Context, username, name string) (store.Playlist, error)
	ListMine(ctx context.Context, username string) ([]store.Playlist, error)
	ListAll(ctx context.Context) ([]store.Playlist, error)
	Delete(ctx context.Context, username, name string) error
	AddSong(ctx context.Context, username, name string, ref store.SongRef) error
	RemoveSong(ctx context.Context, username, name string, ref store.SongRef) error
	Songs(ctx context.Context, username, name string) ([]store.Song, error)
}

// LikeService coordinates like/unlike workflows.
type LikeService interface {
	Like(ctx context.Context, username string, ref store.SongRef) error
	Unlike(ctx context.Context, username string, ref store.SongRef) error
	List(ctx context.Context, username string) ([]store.LikedSong, error)
}

// ChartService exposes the top-chart drill-down.
type ChartService interface {
	Names(ctx context.Context) ([]string, error)
	Dates(ctx context.Context, chartName string) ([]string, error)
	Songs(ctx context.Context, chartName, chartDate string) ([]store.Song, error)
}

// RecommendationService exposes the per-user recommender.
type RecommendationService interface {
	ForUser(ctx context.Context, username string) ([]store.RecommendedSong, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users           UserService
	catalog         CatalogService
	playlists       PlaylistService
	likes           LikeService
	charts          ChartService
	recommendations RecommendationService
	tokens          *auth.Manager
	log             zerolog.Logger
}

// New configures a Server with the given services and token manager.
func New(
	users UserService,
	catalog CatalogService,
	playlists PlaylistService,
	likes LikeService,
	charts ChartService,
	recommendations RecommendationService,
	tokens *auth.Manager,
	log zerolog.Logger,
) *Server {
	return &Server{
		users:           users,
		catalog:         catalog,
		playlists:       playlists,
		likes:           likes,
		charts:          charts,
		recommendations: recommendations,
		tokens:          tokens,
		log:             log,
	}
}

// Routes exposes the HTTP handlers for the REST API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)

	mux.Handle("GET /search", s.optionalAuth(s.handleSearch))

	mux.Handle("GET /profile", s.requireAuth(s.handleProfile))
	mux.Handle("PUT /profile/bio", s.requireAuth(s.handleUpdateBio))
	mux.Handle("PUT /profile/password", s.requireAuth(s.handleChangePassword))
	mux.Handle("DELETE /profile", s.requireAuth(s.handleDeleteAccount))
	mux.HandleFunc("GET /users/{username}/profile", s.handlePublicProfile)

	mux.Handle("POST /playlists", s.requireAuth(s.handleCreatePlaylist))
	mux.Handle("GET /playlists", s.requireAuth(s.handleListPlaylists))
	mux.HandleFunc("GET /playlists/all", s.handleListAllPlaylists)
	mux.Handle("DELETE /playlists/{name}", s.requireAuth(s.handleDeletePlaylist))
	mux.Handle("POST /playlists/{name}/songs", s.requireAuth(s.handleAddPlaylistSong))
	mux.Handle("DELETE /playlists/{name}/songs", s.requireAuth(s.handleRemovePlaylistSong))
	mux.Handle("GET /playlists/{name}/songs", s.requireAuth(s.handleListPlaylistSongs))
	mux.HandleFunc("GET /playlists/{username}/{name}/songs", s.handleListPublicPlaylistSongs)

	mux.Handle("GET /likes", s.requireAuth(s.handleListLikes))
	mux.Handle("POST /likes", s.requireAuth(s.handleLike))
	mux.Handle("DELETE /likes", s.requireAuth(s.handleUnlike))

	mux.HandleFunc("GET /top-charts", s.handleChartNames)
	mux.HandleFunc("GET /top-charts/{name}/dates", s.handleChartDates)
	mux.HandleFunc("GET /top-charts/{name}/{date}/songs", s.handleChartSongs)

	mux.Handle("GET /recommendations", s.requireAuth(s.handleRecommendations))

	return mux
}

// errorResponse and messageResponse share the {message} wire shape. The
// distinct types keep failure and acknowledgement call sites from mixing.
type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// serverError logs the underlying failure and writes a generic 500. Store
// details never reach the client.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "something went wrong"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON payload"})
		return false
	}
	return true
}
