package httpapi

import (
	"net/http"

	"spotify/internal/app/artists"
	"spotify/internal/catalog"
)

type createArtistRequest struct {
	Name string `json:"name" validate:"required"`
}

type popularResponse struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var req createArtistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	artist, err := s.artists.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, artist)
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	list, err := s.artists.List(r.Context(), artists.Filter{Name: r.URL.Query().Get("name")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Artists []catalog.Artist `json:"artists"`
	}{Artists: list})
}

func (s *Server) handlePopularArtist(w http.ResponseWriter, r *http.Request) {
	name, err := s.artists.MostPopular(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, popularResponse{Name: name})
}

func (s *Server) handleArtistAlbums(w http.ResponseWriter, r *http.Request) {
	name, err := pathVar(r, "name")
	if err != nil {
		writeError(w, r, err)
		return
	}

	albums, err := s.artists.Albums(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Albums []catalog.Album `json:"albums"`
	}{Albums: albums})
}
