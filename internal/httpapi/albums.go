package httpapi

import (
	"net/http"

	"spotify/internal/catalog"
)

type createAlbumRequest struct {
	Title  string `json:"title" validate:"required"`
	Artist string `json:"artist" validate:"required"`
}

func (s *Server) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req createAlbumRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	album, err := s.albums.Create(r.Context(), req.Title, req.Artist)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, album)
}

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := s.albums.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Albums []catalog.Album `json:"albums"`
	}{Albums: albums})
}

func (s *Server) handleAlbumSongs(w http.ResponseWriter, r *http.Request) {
	title, err := pathVar(r, "title")
	if err != nil {
		writeError(w, r, err)
		return
	}

	songs, err := s.albums.Songs(r.Context(), title)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Songs []catalog.Song `json:"songs"`
	}{Songs: songs})
}
