package httpapi

import (
	"errors"
	"net/http"

	"tracknest/internal/store"
)

type createPlaylistRequest struct {
	Name string `json:"name"`
}

type playlistSongRequest struct {
	SongTitle  string `json:"songTitle"`
	ArtistName string `json:"artistName"`
	AlbumTitle string `json:"albumTitle"`
}

func (req playlistSongRequest) ref() store.SongRef {
	return store.SongRef{Title: req.SongTitle, Artist: req.ArtistName, Album: req.AlbumTitle}
}

func (req playlistSongRequest) valid() bool {
	return req.SongTitle != "" && req.ArtistName != "" && req.AlbumTitle != ""
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	var req createPlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "playlist name is required"})
		return
	}

	playlist, err := s.playlists.Create(r.Context(), identity.Username, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrPlaylistExists) {
			writeJSON(w, http.StatusConflict, errorResponse{Message: "playlist already exists"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	playlists, err := s.playlists.ListMine(r.Context(), identity.Username)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleListAllPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.playlists.ListAll(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	if err := s.playlists.Delete(r.Context(), identity.Username, r.PathValue("name")); err != nil {
		if errors.Is(err, store.ErrPlaylistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "playlist not found"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "playlist deleted"})
}

func (s *Server) handleAddPlaylistSong(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	var req playlistSongRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "songTitle, artistName and albumTitle are required"})
		return
	}

	if err := s.playlists.AddSong(r.Context(), identity.Username, r.PathValue("name"), req.ref()); err != nil {
		switch {
		case errors.Is(err, store.ErrPlaylistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "playlist not found"})
		case errors.Is(err, store.ErrSongNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "song not found"})
		case errors.Is(err, store.ErrSongAlreadyInPlaylist):
			writeJSON(w, http.StatusConflict, errorResponse{Message: "song already in playlist"})
		default:
			s.serverError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "song added to playlist"})
}

func (s *Server) handleRemovePlaylistSong(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	var req playlistSongRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "songTitle, artistName and albumTitle are required"})
		return
	}

	if err := s.playlists.RemoveSong(r.Context(), identity.Username, r.PathValue("name"), req.ref()); err != nil {
		switch {
		case errors.Is(err, store.ErrPlaylistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "playlist not found"})
		case errors.Is(err, store.ErrSongNotInPlaylist):
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "song not in playlist"})
		default:
			s.serverError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "song removed from playlist"})
}

func (s *Server) handleListPlaylistSongs(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())
	s.writePlaylistSongs(w, r, identity.Username, r.PathValue("name"))
}

func (s *Server) handleListPublicPlaylistSongs(w http.ResponseWriter, r *http.Request) {
	s.writePlaylistSongs(w, r, r.PathValue("username"), r.PathValue("name"))
}

func (s *Server) writePlaylistSongs(w http.ResponseWriter, r *http.Request, username, name string) {
	songs, err := s.playlists.Songs(r.Context(), username, name)
	if err != nil {
		if errors.Is(err, store.ErrPlaylistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "playlist not found"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songs)
}
