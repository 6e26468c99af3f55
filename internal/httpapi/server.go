package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"spotify/internal/app/artists"
	"spotify/internal/catalog"
	"spotify/internal/validation"
)

// UserService captures the user operations needed by the HTTP handlers.
type UserService interface {
	Create(ctx context.Context, name, mobile string) (catalog.User, error)
	List(ctx context.Context) ([]catalog.User, error)
	CreatedPlaylists(ctx context.Context, mobile string) ([]catalog.Playlist, error)
	Playlists(ctx context.Context, mobile string) ([]catalog.Playlist, error)
}

// ArtistService describes artist catalogue workflows.
type ArtistService interface {
	Create(ctx context.Context, name string) (catalog.Artist, error)
	List(ctx context.Context, filter artists.Filter) ([]catalog.Artist, error)
	Albums(ctx context.Context, name string) ([]catalog.Album, error)
	MostPopular(ctx context.Context) (string, error)
}

// AlbumService exposes album-specific workflows.
type AlbumService interface {
	Create(ctx context.Context, title, artistName string) (catalog.Album, error)
	List(ctx context.Context) ([]catalog.Album, error)
	Songs(ctx context.Context, title string) ([]catalog.Song, error)
}

// SongService coordinates track-level operations.
type SongService interface {
	Create(ctx context.Context, title, albumName string, length int) (catalog.Song, error)
	List(ctx context.Context) ([]catalog.Song, error)
	Like(ctx context.Context, mobile, title string) (catalog.Song, error)
	Likers(ctx context.Context, title string) ([]catalog.User, error)
	MostPopular(ctx context.Context) (string, error)
}

// PlaylistService coordinates playlist-related operations.
type PlaylistService interface {
	CreateOnLength(ctx context.Context, mobile, title string, length int) (catalog.Playlist, error)
	CreateOnName(ctx context.Context, mobile, title string, songTitles []string) (catalog.Playlist, error)
	Find(ctx context.Context, mobile, title string) (catalog.Playlist, error)
	List(ctx context.Context) ([]catalog.Playlist, error)
	Songs(ctx context.Context, title string) ([]catalog.Song, error)
	Listeners(ctx context.Context, title string) ([]catalog.User, error)
}

const apiPrefix = "/api/v1"

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	artists   ArtistService
	albums    AlbumService
	songs     SongService
	playlists PlaylistService
}

// New configures a Server with the given services.
func New(
	users UserService,
	artists ArtistService,
	albums AlbumService,
	songs SongService,
	playlists PlaylistService,
) *Server {
	return &Server{
		users:     users,
		artists:   artists,
		albums:    albums,
		songs:     songs,
		playlists: playlists,
	}
}

// Routes exposes the HTTP handlers for the catalog. Path variables are
// matched in their escaped form so names containing "/" stay addressable.
func (s *Server) Routes() *mux.Router {
	router := mux.NewRouter()
	router.UseEncodedPath()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.HandleFunc(apiPrefix+"/users", s.handleCreateUser).Methods(http.MethodPost)
	router.HandleFunc(apiPrefix+"/users", s.handleListUsers).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/users/{mobile}/playlists", s.handleUserPlaylists).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/users/{mobile}/playlists/created", s.handleCreatedPlaylists).Methods(http.MethodGet)

	router.HandleFunc(apiPrefix+"/artists", s.handleCreateArtist).Methods(http.MethodPost)
	router.HandleFunc(apiPrefix+"/artists", s.handleListArtists).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/artists/popular", s.handlePopularArtist).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/artists/{name}/albums", s.handleArtistAlbums).Methods(http.MethodGet)

	router.HandleFunc(apiPrefix+"/albums", s.handleCreateAlbum).Methods(http.MethodPost)
	router.HandleFunc(apiPrefix+"/albums", s.handleListAlbums).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/albums/{title}/songs", s.handleAlbumSongs).Methods(http.MethodGet)

	router.HandleFunc(apiPrefix+"/songs", s.handleCreateSong).Methods(http.MethodPost)
	router.HandleFunc(apiPrefix+"/songs", s.handleListSongs).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/songs/popular", s.handlePopularSong).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/songs/like", s.handleLikeSong).Methods(http.MethodPost)
	router.HandleFunc(apiPrefix+"/songs/{title}/likers", s.handleSongLikers).Methods(http.MethodGet)

	router.HandleFunc(apiPrefix+"/playlists", s.handleListPlaylists).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/playlists/by-length", s.handleCreatePlaylistOnLength).Methods(http.MethodPost)
	router.HandleFunc(apiPrefix+"/playlists/by-name", s.handleCreatePlaylistOnName).Methods(http.MethodPost)
	router.HandleFunc(apiPrefix+"/playlists/find", s.handleFindPlaylist).Methods(http.MethodPost)
	router.HandleFunc(apiPrefix+"/playlists/{title}/songs", s.handlePlaylistSongs).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/playlists/{title}/listeners", s.handlePlaylistListeners).Methods(http.MethodGet)

	return router
}

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// decodeJSON reads the request body into dst and validates it.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload", catalog.ErrInvalidArgument)
	}
	if err := validation.Struct(dst); err != nil {
		return fmt.Errorf("%w: %w", catalog.ErrInvalidArgument, err)
	}
	return nil
}

// pathVar returns the unescaped value of the route variable key.
func pathVar(r *http.Request, key string) (string, error) {
	v, err := url.PathUnescape(mux.Vars(r)[key])
	if err != nil {
		return "", fmt.Errorf("%w: malformed %s in path", catalog.ErrInvalidArgument, key)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps catalog error kinds onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}
	var fieldErrors validation.FieldErrors
	if errors.As(err, &fieldErrors) {
		resp.Fields = fieldErrors
	}

	switch {
	case errors.Is(err, catalog.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, resp)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "request cancelled"})
	default:
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("unhandled catalog error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}
