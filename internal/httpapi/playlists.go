package httpapi

import (
	"net/http"

	"spotify/internal/catalog"
)

type playlistOnLengthRequest struct {
	Mobile string `json:"mobile"`
	Title  string `json:"title"`
	Length int    `json:"length"`
}

type playlistOnNameRequest struct {
	Mobile string   `json:"mobile"`
	Title  string   `json:"title"`
	Songs  []string `json:"songs"`
}

type findPlaylistRequest struct {
	Mobile string `json:"mobile"`
	Title  string `json:"title"`
}

func (s *Server) handleCreatePlaylistOnLength(w http.ResponseWriter, r *http.Request) {
	var req playlistOnLengthRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	playlist, err := s.playlists.CreateOnLength(r.Context(), req.Mobile, req.Title, req.Length)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, playlist)
}

func (s *Server) handleCreatePlaylistOnName(w http.ResponseWriter, r *http.Request) {
	var req playlistOnNameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	playlist, err := s.playlists.CreateOnName(r.Context(), req.Mobile, req.Title, req.Songs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, playlist)
}

// handleFindPlaylist opens a playlist, registering the caller as a listener.
func (s *Server) handleFindPlaylist(w http.ResponseWriter, r *http.Request) {
	var req findPlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	playlist, err := s.playlists.Find(r.Context(), req.Mobile, req.Title)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.playlists.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Playlists []catalog.Playlist `json:"playlists"`
	}{Playlists: playlists})
}

func (s *Server) handlePlaylistSongs(w http.ResponseWriter, r *http.Request) {
	title, err := pathVar(r, "title")
	if err != nil {
		writeError(w, r, err)
		return
	}

	songs, err := s.playlists.Songs(r.Context(), title)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Songs []catalog.Song `json:"songs"`
	}{Songs: songs})
}

func (s *Server) handlePlaylistListeners(w http.ResponseWriter, r *http.Request) {
	title, err := pathVar(r, "title")
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := s.playlists.Listeners(r.Context(), title)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Users []catalog.User `json:"users"`
	}{Users: users})
}
