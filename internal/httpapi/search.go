package httpapi

import (
	"net/http"
	"strings"

	"tracknest/internal/store"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.SongFilter{
		Title:     query.Get("songTitle"),
		Artist:    query.Get("artistName"),
		Album:     query.Get("albumTitle"),
		Genre:     query.Get("genreName"),
		SortOrder: query.Get("sortOrder"),
	}

	if strings.EqualFold(query.Get("liked"), "true") {
		identity, ok := identityFrom(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "authentication required for liked filter"})
			return
		}
		filter.LikedBy = identity.Username
	}

	songs, err := s.catalog.Search(r.Context(), filter)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songs)
}
