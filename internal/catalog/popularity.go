package catalog

import "context"

// MostPopularArtist returns the name of the artist with the most likes. Ties
// go to the artist created first. NoArtistFound is returned when there are
// no artists.
func (s *Store) MostPopularArtist(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *Artist
	for _, a := range s.artists {
		if best == nil || a.Likes > best.Likes {
			best = a
		}
	}
	if best == nil {
		return NoArtistFound
	}
	return best.Name
}

// MostPopularSong returns the title of the song with the most likes, with
// the same tie-breaking as MostPopularArtist. NoSongFound is returned when
// there are no songs.
func (s *Store) MostPopularSong(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *Song
	for _, song := range s.songs {
		if best == nil || song.Likes > best.Likes {
			best = song
		}
	}
	if best == nil {
		return NoSongFound
	}
	return best.Title
}

// Stats reports how many entities of each kind the catalog holds.
func (s *Store) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Users:     len(s.users),
		Artists:   len(s.artists),
		Albums:    len(s.albums),
		Songs:     len(s.songs),
		Playlists: len(s.playlists),
	}
}
