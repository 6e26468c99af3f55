package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// CreatePlaylistOnLength creates a playlist holding every song whose length
// equals length. The creator becomes its first listener. Playlist titles are
// not required to be unique.
func (s *Store) CreatePlaylistOnLength(_ context.Context, mobile, title string, length int) (Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userByMobile(mobile)
	if err != nil {
		return Playlist{}, err
	}

	var songIDs []uuid.UUID
	for _, song := range s.songs {
		if song.Length == length {
			songIDs = append(songIDs, song.ID)
		}
	}
	return s.addPlaylist(user, title, songIDs), nil
}

// CreatePlaylistOnName creates a playlist holding every song whose title is
// in songTitles. Titles are compared exactly, case included, and titles that
// match no song are ignored.
func (s *Store) CreatePlaylistOnName(_ context.Context, mobile, title string, songTitles []string) (Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userByMobile(mobile)
	if err != nil {
		return Playlist{}, err
	}

	var songIDs []uuid.UUID
	for _, song := range s.songs {
		if slices.Contains(songTitles, song.Title) {
			songIDs = append(songIDs, song.ID)
		}
	}
	return s.addPlaylist(user, title, songIDs), nil
}

func (s *Store) addPlaylist(creator *User, title string, songIDs []uuid.UUID) Playlist {
	playlist := &Playlist{ID: s.newID(), Title: title, CreatorID: creator.ID}
	s.playlists = append(s.playlists, playlist)
	s.playlistsByID[playlist.ID] = playlist
	s.playlistSongs[playlist.ID] = songIDs
	s.playlistListeners[playlist.ID] = []uuid.UUID{creator.ID}
	s.creatorPlaylists[creator.ID] = append(s.creatorPlaylists[creator.ID], playlist.ID)
	s.userPlaylists[creator.ID] = append(s.userPlaylists[creator.ID], playlist.ID)
	return *playlist
}

// FindPlaylist opens the playlist titled playlistTitle for the user with
// mobile, adding the user to its listeners if they are not there yet.
func (s *Store) FindPlaylist(_ context.Context, mobile, playlistTitle string) (Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userByMobile(mobile)
	if err != nil {
		return Playlist{}, err
	}
	playlist := s.playlistByTitle(playlistTitle)
	if playlist == nil {
		return Playlist{}, fmt.Errorf("%w: playlist %q", ErrNotFound, playlistTitle)
	}

	listeners := s.playlistListeners[playlist.ID]
	if !slices.Contains(listeners, user.ID) {
		s.playlistListeners[playlist.ID] = append(listeners, user.ID)
	}
	if !slices.Contains(s.userPlaylists[user.ID], playlist.ID) {
		s.userPlaylists[user.ID] = append(s.userPlaylists[user.ID], playlist.ID)
	}
	return *playlist, nil
}

// Playlists returns every playlist in creation order.
func (s *Store) Playlists(_ context.Context) []Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Playlist, 0, len(s.playlists))
	for _, p := range s.playlists {
		out = append(out, *p)
	}
	return out
}

// PlaylistSongs returns the songs of the playlist titled title.
func (s *Store) PlaylistSongs(_ context.Context, title string) ([]Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlist := s.playlistByTitle(title)
	if playlist == nil {
		return nil, fmt.Errorf("%w: playlist %q", ErrNotFound, title)
	}
	return s.songsFor(s.playlistSongs[playlist.ID]), nil
}

// PlaylistListeners returns the listeners of the playlist titled title. The
// creator is always first.
func (s *Store) PlaylistListeners(_ context.Context, title string) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlist := s.playlistByTitle(title)
	if playlist == nil {
		return nil, fmt.Errorf("%w: playlist %q", ErrNotFound, title)
	}
	return s.usersFor(s.playlistListeners[playlist.ID]), nil
}
