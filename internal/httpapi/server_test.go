package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"spotify/internal/app/albums"
	"spotify/internal/app/artists"
	"spotify/internal/app/playlists"
	"spotify/internal/app/songs"
	"spotify/internal/app/users"
	"spotify/internal/catalog"
)

func newTestServer() (*Server, *catalog.Store) {
	store := catalog.New()
	return New(
		users.New(store),
		artists.New(store),
		albums.New(store),
		songs.New(store),
		playlists.New(store),
	), store
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer()
	rec := doJSON(t, srv.Routes(), http.MethodGet, "/health", nil)
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != "OK" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestCatalogFlow(t *testing.T) {
	srv, store := newTestServer()
	handler := srv.Routes()

	expectStatus(t, doJSON(t, handler, http.MethodPost, "/api/v1/users", map[string]string{"name": "Alice", "mobile": "999"}), http.StatusCreated)
	expectStatus(t, doJSON(t, handler, http.MethodPost, "/api/v1/albums", map[string]string{"title": "Hits", "artist": "A1"}), http.StatusCreated)
	expectStatus(t, doJSON(t, handler, http.MethodPost, "/api/v1/songs", map[string]any{"title": "S1", "album": "Hits", "length": 200}), http.StatusCreated)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/playlists/by-length", map[string]any{"mobile": "999", "title": "Faves", "length": 200})
	expectStatus(t, rec, http.StatusCreated)
	var playlist catalog.Playlist
	if err := json.NewDecoder(rec.Body).Decode(&playlist); err != nil {
		t.Fatalf("decode playlist: %v", err)
	}
	if playlist.Title != "Faves" {
		t.Fatalf("unexpected playlist %+v", playlist)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/playlists/Faves/songs", nil)
	expectStatus(t, rec, http.StatusOK)
	var songsResp struct {
		Songs []catalog.Song `json:"songs"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&songsResp); err != nil {
		t.Fatalf("decode songs: %v", err)
	}
	if len(songsResp.Songs) != 1 || songsResp.Songs[0].Title != "S1" {
		t.Fatalf("unexpected playlist songs %+v", songsResp.Songs)
	}

	for i := 0; i < 2; i++ {
		rec = doJSON(t, handler, http.MethodPost, "/api/v1/songs/like", map[string]string{"mobile": "999", "title": "S1"})
		expectStatus(t, rec, http.StatusOK)
	}
	var liked catalog.Song
	if err := json.NewDecoder(rec.Body).Decode(&liked); err != nil {
		t.Fatalf("decode song: %v", err)
	}
	if liked.Likes != 1 {
		t.Fatalf("expected 1 like, got %d", liked.Likes)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/songs/popular", nil)
	expectStatus(t, rec, http.StatusOK)
	var popular popularResponse
	if err := json.NewDecoder(rec.Body).Decode(&popular); err != nil {
		t.Fatalf("decode popular: %v", err)
	}
	if popular.Name != "S1" {
		t.Fatalf("expected S1, got %q", popular.Name)
	}

	if got := store.Stats(context.Background()); got.Artists != 1 || got.Playlists != 1 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestPathParametersAreUnescaped(t *testing.T) {
	srv, _ := newTestServer()
	handler := srv.Routes()

	expectStatus(t, doJSON(t, handler, http.MethodPost, "/api/v1/albums", map[string]string{"title": "OK Computer", "artist": "Radiohead"}), http.StatusCreated)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/albums/"+url.PathEscape("ok computer")+"/songs", nil)
	expectStatus(t, rec, http.StatusOK)
}

func TestPathParametersMayContainSlash(t *testing.T) {
	srv, _ := newTestServer()
	handler := srv.Routes()

	expectStatus(t, doJSON(t, handler, http.MethodPost, "/api/v1/albums", map[string]string{"title": "Back in Black", "artist": "AC/DC"}), http.StatusCreated)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/artists/"+url.PathEscape("AC/DC")+"/albums", nil)
	expectStatus(t, rec, http.StatusOK)

	var resp struct {
		Albums []catalog.Album `json:"albums"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode albums: %v", err)
	}
	if len(resp.Albums) != 1 || resp.Albums[0].Title != "Back in Black" {
		t.Fatalf("unexpected albums %+v", resp.Albums)
	}
}

func TestErrorMapping(t *testing.T) {
	srv, _ := newTestServer()
	handler := srv.Routes()

	expectStatus(t, doJSON(t, handler, http.MethodPost, "/api/v1/albums", map[string]string{"title": "Dummy", "artist": "Portishead"}), http.StatusCreated)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{name: "missing user fields", method: http.MethodPost, path: "/api/v1/users", body: map[string]string{"name": "Alice"}, want: http.StatusBadRequest},
		{name: "duplicate album", method: http.MethodPost, path: "/api/v1/albums", body: map[string]string{"title": "DUMMY", "artist": "Someone"}, want: http.StatusBadRequest},
		{name: "non-positive length", method: http.MethodPost, path: "/api/v1/songs", body: map[string]any{"title": "S", "album": "Dummy", "length": 0}, want: http.StatusBadRequest},
		{name: "unknown album", method: http.MethodPost, path: "/api/v1/songs", body: map[string]any{"title": "S2", "album": "NoSuchAlbum", "length": 100}, want: http.StatusNotFound},
		{name: "unknown user", method: http.MethodPost, path: "/api/v1/playlists/find", body: map[string]string{"mobile": "000", "title": "x"}, want: http.StatusNotFound},
		{name: "unknown artist albums", method: http.MethodGet, path: "/api/v1/artists/Nobody/albums", want: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/api/v1/songs", want: http.StatusMethodNotAllowed},
		{name: "wrong method on path variable", method: http.MethodPost, path: "/api/v1/albums/Dummy/songs", want: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nothing", want: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, handler, tc.method, tc.path, tc.body)
			expectStatus(t, rec, tc.want)
		})
	}
}

func TestValidationFieldsInResponse(t *testing.T) {
	srv, _ := newTestServer()
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/songs", map[string]any{"title": "S"})
	expectStatus(t, rec, http.StatusBadRequest)

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if len(resp.Fields) != 2 || resp.Fields[0].Field != "album" || resp.Fields[1].Field != "length" {
		t.Fatalf("unexpected field errors %+v", resp.Fields)
	}
}

type failingSongService struct {
	songs.Service
	err error
}

func (f failingSongService) List(context.Context) ([]catalog.Song, error) {
	return nil, f.err
}

func TestUnexpectedErrorIsInternal(t *testing.T) {
	store := catalog.New()
	srv := New(
		users.New(store),
		artists.New(store),
		albums.New(store),
		failingSongService{Service: songs.New(store), err: errors.New("boom")},
		playlists.New(store),
	)

	rec := doJSON(t, srv.Routes(), http.MethodGet, "/api/v1/songs", nil)
	expectStatus(t, rec, http.StatusInternalServerError)

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Error != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected generic message, got %q", resp.Error)
	}
}

func TestPopularOnEmptyCatalog(t *testing.T) {
	srv, _ := newTestServer()
	handler := srv.Routes()

	for path, want := range map[string]string{
		"/api/v1/artists/popular": catalog.NoArtistFound,
		"/api/v1/songs/popular":   catalog.NoSongFound,
	} {
		rec := doJSON(t, handler, http.MethodGet, path, nil)
		expectStatus(t, rec, http.StatusOK)
		var resp popularResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if resp.Name != want {
			t.Fatalf("%s: expected %q, got %q", path, want, resp.Name)
		}
	}
}
