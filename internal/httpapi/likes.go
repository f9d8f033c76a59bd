package httpapi

import (
	"errors"
	"net/http"

	"tracknest/internal/store"
)

func (s *Server) handleListLikes(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	likes, err := s.likes.List(r.Context(), identity.Username)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, likes)
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	var req playlistSongRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "songTitle, artistName and albumTitle are required"})
		return
	}

	if err := s.likes.Like(r.Context(), identity.Username, req.ref()); err != nil {
		switch {
		case errors.Is(err, store.ErrSongNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "song not found"})
		case errors.Is(err, store.ErrAlreadyLiked):
			writeJSON(w, http.StatusConflict, errorResponse{Message: "song already liked"})
		default:
			s.serverError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "song liked"})
}

func (s *Server) handleUnlike(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	var req playlistSongRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "songTitle, artistName and albumTitle are required"})
		return
	}

	if err := s.likes.Unlike(r.Context(), identity.Username, req.ref()); err != nil {
		if errors.Is(err, store.ErrNotLiked) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "song not liked"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "song unliked"})
}
