package main

import (
	"net/http"

	"github.com/rs/zerolog"

	"spotify/internal/app/albums"
	"spotify/internal/app/artists"
	"spotify/internal/app/playlists"
	"spotify/internal/app/songs"
	"spotify/internal/app/users"
	"spotify/internal/catalog"
	"spotify/internal/config"
	"spotify/internal/http/middleware"
	"spotify/internal/httpapi"
	"spotify/internal/search"
)

func newHTTPHandler(cfg *config.Config, logger zerolog.Logger, store *catalog.Store) http.Handler {
	router := httpapi.New(
		users.New(store),
		artists.New(store),
		albums.New(store),
		songs.New(store),
		playlists.New(store),
	).Routes()
	router.Handle("/api/v1/search", search.NewHandler(search.NewCatalogStore(store))).Methods(http.MethodGet)

	// CORS wraps the router rather than using router.Use so preflight
	// requests are answered even though no route accepts OPTIONS.
	var handler http.Handler = router
	handler = middleware.CORS(cfg.CORS.AllowedOrigins)(handler)
	handler = middleware.Recovery()(handler)
	handler = middleware.RequestLogging(logger)(handler)
	return handler
}
