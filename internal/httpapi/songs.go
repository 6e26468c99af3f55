package httpapi

import (
	"net/http"

	"spotify/internal/catalog"
)

type createSongRequest struct {
	Title  string `json:"title" validate:"required"`
	Album  string `json:"album" validate:"required"`
	Length int    `json:"length" validate:"gt=0"`
}

type likeSongRequest struct {
	Mobile string `json:"mobile"`
	Title  string `json:"title"`
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	var req createSongRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	song, err := s.songs.Create(r.Context(), req.Title, req.Album, req.Length)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, song)
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.songs.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Songs []catalog.Song `json:"songs"`
	}{Songs: songs})
}

// handleLikeSong is idempotent per user; repeat likes return the song unchanged.
func (s *Server) handleLikeSong(w http.ResponseWriter, r *http.Request) {
	var req likeSongRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	song, err := s.songs.Like(r.Context(), req.Mobile, req.Title)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleSongLikers(w http.ResponseWriter, r *http.Request) {
	title, err := pathVar(r, "title")
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := s.songs.Likers(r.Context(), title)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Users []catalog.User `json:"users"`
	}{Users: users})
}

func (s *Server) handlePopularSong(w http.ResponseWriter, r *http.Request) {
	title, err := s.songs.MostPopular(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, popularResponse{Name: title})
}
