package catalog

import (
	"context"
	"fmt"
	"slices"
)

type createSongInput struct {
	Title     string `json:"title" validate:"required"`
	AlbumName string `json:"album" validate:"required"`
	Length    int    `json:"length" validate:"gt=0"`
}

// CreateSong adds a song of the given length (seconds) to the album whose
// title matches albumName ignoring case.
func (s *Store) CreateSong(_ context.Context, title, albumName string, length int) (Song, error) {
	if err := checkInput(createSongInput{Title: title, AlbumName: albumName, Length: length}); err != nil {
		return Song{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	album := s.albumByTitle(albumName)
	if album == nil {
		return Song{}, fmt.Errorf("%w: album %q", ErrNotFound, albumName)
	}

	song := &Song{ID: s.newID(), Title: title, Length: length, AlbumID: album.ID}
	s.songs = append(s.songs, song)
	s.songsByID[song.ID] = song
	s.albumSongs[album.ID] = append(s.albumSongs[album.ID], song.ID)
	return *song, nil
}

// LikeSong records that the user with mobile likes the song titled songTitle.
// Only the first like from a user counts: it bumps the like counter of the
// song and of the artist that owns the song's album. Later likes from the
// same user leave the counters untouched.
func (s *Store) LikeSong(_ context.Context, mobile, songTitle string) (Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userByMobile(mobile)
	if err != nil {
		return Song{}, err
	}
	song := s.songByTitle(songTitle)
	if song == nil {
		return Song{}, fmt.Errorf("%w: song %q", ErrNotFound, songTitle)
	}

	likers := s.songLikers[song.ID]
	if slices.Contains(likers, user.ID) {
		return *song, nil
	}

	s.songLikers[song.ID] = append(likers, user.ID)
	song.Likes = len(s.songLikers[song.ID])
	if album, ok := s.albumsByID[song.AlbumID]; ok {
		if artist, ok := s.artistsByID[album.ArtistID]; ok {
			artist.Likes++
		}
	}
	return *song, nil
}

// Songs returns every song in creation order.
func (s *Store) Songs(_ context.Context) []Song {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Song, 0, len(s.songs))
	for _, song := range s.songs {
		out = append(out, *song)
	}
	return out
}

// SongsByAlbum returns the songs of the album titled albumTitle.
func (s *Store) SongsByAlbum(_ context.Context, albumTitle string) ([]Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	album := s.albumByTitle(albumTitle)
	if album == nil {
		return nil, fmt.Errorf("%w: album %q", ErrNotFound, albumTitle)
	}
	return s.songsFor(s.albumSongs[album.ID]), nil
}

// SongLikers returns the users who liked the song titled songTitle, in the
// order they first liked it.
func (s *Store) SongLikers(_ context.Context, songTitle string) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	song := s.songByTitle(songTitle)
	if song == nil {
		return nil, fmt.Errorf("%w: song %q", ErrNotFound, songTitle)
	}
	return s.usersFor(s.songLikers[song.ID]), nil
}
