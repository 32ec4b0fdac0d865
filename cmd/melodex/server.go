package main

import (
	"net/http"

	"github.com/rs/zerolog"

	"melodex/internal/app/accounts"
	"melodex/internal/app/artists"
	"melodex/internal/app/songs"
	"melodex/internal/auth"
	"melodex/internal/http/middleware"
	"melodex/internal/httpapi"
	"melodex/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store, logger zerolog.Logger) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	accountSvc := accounts.New(dataStore, tokens)
	artistSvc := artists.New(dataStore)
	songSvc := songs.New(dataStore)

	api := httpapi.New(accountSvc, artistSvc, songSvc, tokens, logger)

	handler := middleware.CORS(cfg.AllowedOrigins)(api.Routes())
	handler = middleware.RequestLogging(logger)(handler)
	return handler
}
