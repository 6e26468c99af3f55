package httpapi

import (
	"net/http"

	"spotify/internal/catalog"
)

type createUserRequest struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := s.users.Create(r.Context(), req.Name, req.Mobile)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Users []catalog.User `json:"users"`
	}{Users: users})
}

// handleUserPlaylists lists every playlist the user created or opened.
func (s *Server) handleUserPlaylists(w http.ResponseWriter, r *http.Request) {
	mobile, err := pathVar(r, "mobile")
	if err != nil {
		writeError(w, r, err)
		return
	}

	playlists, err := s.users.Playlists(r.Context(), mobile)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Playlists []catalog.Playlist `json:"playlists"`
	}{Playlists: playlists})
}

func (s *Server) handleCreatedPlaylists(w http.ResponseWriter, r *http.Request) {
	mobile, err := pathVar(r, "mobile")
	if err != nil {
		writeError(w, r, err)
		return
	}

	playlists, err := s.users.CreatedPlaylists(r.Context(), mobile)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Playlists []catalog.Playlist `json:"playlists"`
	}{Playlists: playlists})
}
