// Package catalog holds the in-memory music catalog: users, artists, albums,
// songs and playlists together with the relationships between them.
//
// Entities are looked up by their business keys (mobile number, titles,
// names) with first-match semantics over creation order. Album, song and
// playlist titles match case-insensitively; song titles passed to
// CreatePlaylistOnName match exactly. Nothing is ever removed.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"spotify/internal/validation"
)

var (
	// ErrInvalidArgument marks malformed input or a duplicate album title.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks a reference to an entity that does not exist.
	ErrNotFound = errors.New("not found")
)

const (
	// NoArtistFound is returned by MostPopularArtist on an empty catalog.
	NoArtistFound = "No artist found"
	// NoSongFound is returned by MostPopularSong on an empty catalog.
	NoSongFound = "No song found"
)

// Store is the catalog. The zero value is not usable; construct with New.
type Store struct {
	mu sync.RWMutex

	users     []*User
	artists   []*Artist
	albums    []*Album
	songs     []*Song
	playlists []*Playlist

	usersByID     map[uuid.UUID]*User
	artistsByID   map[uuid.UUID]*Artist
	albumsByID    map[uuid.UUID]*Album
	songsByID     map[uuid.UUID]*Song
	playlistsByID map[uuid.UUID]*Playlist

	artistAlbums      map[uuid.UUID][]uuid.UUID
	albumSongs        map[uuid.UUID][]uuid.UUID
	playlistSongs     map[uuid.UUID][]uuid.UUID
	playlistListeners map[uuid.UUID][]uuid.UUID
	creatorPlaylists  map[uuid.UUID][]uuid.UUID
	userPlaylists     map[uuid.UUID][]uuid.UUID
	songLikers        map[uuid.UUID][]uuid.UUID

	newID func() uuid.UUID
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		usersByID:         make(map[uuid.UUID]*User),
		artistsByID:       make(map[uuid.UUID]*Artist),
		albumsByID:        make(map[uuid.UUID]*Album),
		songsByID:         make(map[uuid.UUID]*Song),
		playlistsByID:     make(map[uuid.UUID]*Playlist),
		artistAlbums:      make(map[uuid.UUID][]uuid.UUID),
		albumSongs:        make(map[uuid.UUID][]uuid.UUID),
		playlistSongs:     make(map[uuid.UUID][]uuid.UUID),
		playlistListeners: make(map[uuid.UUID][]uuid.UUID),
		creatorPlaylists:  make(map[uuid.UUID][]uuid.UUID),
		userPlaylists:     make(map[uuid.UUID][]uuid.UUID),
		songLikers:        make(map[uuid.UUID][]uuid.UUID),
		newID:             uuid.New,
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

func checkInput(v any) error {
	if err := validation.Struct(v); err != nil {
		return invalid(err)
	}
	return nil
}

// The helpers below expect s.mu to be held.

func (s *Store) userByMobile(mobile string) (*User, error) {
	for _, u := range s.users {
		if u.Mobile == mobile {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: user with mobile %q", ErrNotFound, mobile)
}

func (s *Store) artistByName(name string) *Artist {
	for _, a := range s.artists {
		if strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return nil
}

func (s *Store) albumByTitle(title string) *Album {
	for _, a := range s.albums {
		if strings.EqualFold(a.Title, title) {
			return a
		}
	}
	return nil
}

func (s *Store) songByTitle(title string) *Song {
	for _, song := range s.songs {
		if strings.EqualFold(song.Title, title) {
			return song
		}
	}
	return nil
}

func (s *Store) playlistByTitle(title string) *Playlist {
	for _, p := range s.playlists {
		if strings.EqualFold(p.Title, title) {
			return p
		}
	}
	return nil
}

func (s *Store) usersFor(ids []uuid.UUID) []User {
	out := make([]User, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.usersByID[id])
	}
	return out
}

func (s *Store) songsFor(ids []uuid.UUID) []Song {
	out := make([]Song, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.songsByID[id])
	}
	return out
}

func (s *Store) playlistsFor(ids []uuid.UUID) []Playlist {
	out := make([]Playlist, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.playlistsByID[id])
	}
	return out
}
