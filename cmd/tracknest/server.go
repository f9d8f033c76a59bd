package main

import (
	"net/http"

	"github.com/rs/zerolog"

	"tracknest/internal/app/catalog"
	"tracknest/internal/app/charts"
	"tracknest/internal/app/likes"
	"tracknest/internal/app/playlists"
	"tracknest/internal/app/recommendations"
	"tracknest/internal/app/users"
	"tracknest/internal/auth"
	"tracknest/internal/httpapi"
	"tracknest/internal/httpapi/middleware"
	"tracknest/internal/store"
)

func newHTTPHandler(cfg Config, log zerolog.Logger, dataStore *store.Store) http.Handler {
	tokens := auth.NewManager(cfg.TokenSecret)

	userSvc := users.New(dataStore)
	catalogSvc := catalog.New(dataStore)
	playlistSvc := playlists.New(dataStore)
	likeSvc := likes.New(dataStore)
	chartSvc := charts.New(dataStore)
	recSvc := recommendations.New(dataStore)

	api := httpapi.New(userSvc, catalogSvc, playlistSvc, likeSvc, chartSvc, recSvc, tokens, log)

	handler := api.Routes()
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = middleware.RequestLogging(log)(handler)
	handler = middleware.Recovery(log)(handler)
	return handler
}
