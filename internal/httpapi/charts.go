package httpapi

import (
	"errors"
	"net/http"
	"time"

	"tracknest/internal/store"
)

type chartNameEntry struct {
	ChartName string `json:"chartName"`
}

type chartDateEntry struct {
	ChartDate string `json:"chartDate"`
}

func (s *Server) handleChartNames(w http.ResponseWriter, r *http.Request) {
	names, err := s.charts.Names(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	entries := make([]chartNameEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, chartNameEntry{ChartName: name})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleChartDates(w http.ResponseWriter, r *http.Request) {
	dates, err := s.charts.Dates(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, store.ErrChartNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "chart not found"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	entries := make([]chartDateEntry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, chartDateEntry{ChartDate: date})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleChartSongs(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid chart date"})
		return
	}

	songs, err := s.charts.Songs(r.Context(), r.PathValue("name"), date)
	if err != nil {
		if errors.Is(err, store.ErrChartNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "chart not found"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songs)
}
