package catalog

import (
	"context"
	"fmt"
)

type createArtistInput struct {
	Name string `json:"name" validate:"required"`
}

type createAlbumInput struct {
	Title      string `json:"title" validate:"required"`
	ArtistName string `json:"artist" validate:"required"`
}

// CreateArtist adds an artist. Artist names are not required to be unique.
func (s *Store) CreateArtist(_ context.Context, name string) (Artist, error) {
	if err := checkInput(createArtistInput{Name: name}); err != nil {
		return Artist{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.addArtist(name), nil
}

func (s *Store) addArtist(name string) *Artist {
	artist := &Artist{ID: s.newID(), Name: name}
	s.artists = append(s.artists, artist)
	s.artistsByID[artist.ID] = artist
	return artist
}

// CreateAlbum adds an album owned by the artist named artistName. Album titles
// are unique ignoring case. If no artist matches artistName (ignoring case) a
// new artist with that name is created first.
func (s *Store) CreateAlbum(_ context.Context, title, artistName string) (Album, error) {
	if err := checkInput(createAlbumInput{Title: title, ArtistName: artistName}); err != nil {
		return Album{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.albumByTitle(title); existing != nil {
		return Album{}, fmt.Errorf("%w: album %q already exists", ErrInvalidArgument, existing.Title)
	}

	artist := s.artistByName(artistName)
	if artist == nil {
		artist = s.addArtist(artistName)
	}

	album := &Album{ID: s.newID(), Title: title, ArtistID: artist.ID}
	s.albums = append(s.albums, album)
	s.albumsByID[album.ID] = album
	s.artistAlbums[artist.ID] = append(s.artistAlbums[artist.ID], album.ID)
	return *album, nil
}

// Artists returns every artist in creation order.
func (s *Store) Artists(_ context.Context) []Artist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Artist, 0, len(s.artists))
	for _, a := range s.artists {
		out = append(out, *a)
	}
	return out
}

// Albums returns every album in creation order.
func (s *Store) Albums(_ context.Context) []Album {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Album, 0, len(s.albums))
	for _, a := range s.albums {
		out = append(out, *a)
	}
	return out
}

// AlbumsByArtist returns the albums of the first artist matching name.
func (s *Store) AlbumsByArtist(_ context.Context, name string) ([]Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artist := s.artistByName(name)
	if artist == nil {
		return nil, fmt.Errorf("%w: artist %q", ErrNotFound, name)
	}

	ids := s.artistAlbums[artist.ID]
	out := make([]Album, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.albumsByID[id])
	}
	return out, nil
}
