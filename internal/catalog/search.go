package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// ArtistMatch is an artist hit with the number of albums it owns.
type ArtistMatch struct {
	Artist
	AlbumCount int
}

// AlbumMatch is an album hit annotated with its artist.
type AlbumMatch struct {
	Album
	ArtistName string
	SongCount  int
}

// SongMatch is a song hit annotated with its album and artist.
type SongMatch struct {
	Song
	AlbumTitle string
	ArtistName string
}

// SearchResults groups matches by entity kind, each in creation order.
type SearchResults struct {
	Artists []ArtistMatch
	Albums  []AlbumMatch
	Songs   []SongMatch
}

// Search returns artists, albums and songs whose name or title contains
// query, ignoring case. At most limit hits are returned per kind; a
// non-positive limit means no cap. An empty query matches nothing.
func (s *Store) Search(_ context.Context, query string, limit int) SearchResults {
	var res SearchResults
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return res
	}
	matches := func(v string) bool {
		return strings.Contains(strings.ToLower(v), needle)
	}
	full := func(n int) bool {
		return limit > 0 && n >= limit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.artists {
		if full(len(res.Artists)) {
			break
		}
		if matches(a.Name) {
			res.Artists = append(res.Artists, ArtistMatch{Artist: *a, AlbumCount: len(s.artistAlbums[a.ID])})
		}
	}

	for _, al := range s.albums {
		if full(len(res.Albums)) {
			break
		}
		if matches(al.Title) {
			res.Albums = append(res.Albums, AlbumMatch{
				Album:      *al,
				ArtistName: s.artistName(al.ArtistID),
				SongCount:  len(s.albumSongs[al.ID]),
			})
		}
	}

	for _, song := range s.songs {
		if full(len(res.Songs)) {
			break
		}
		if !matches(song.Title) {
			continue
		}
		m := SongMatch{Song: *song}
		if al, ok := s.albumsByID[song.AlbumID]; ok {
			m.AlbumTitle = al.Title
			m.ArtistName = s.artistName(al.ArtistID)
		}
		res.Songs = append(res.Songs, m)
	}

	return res
}

func (s *Store) artistName(id uuid.UUID) string {
	if a, ok := s.artistsByID[id]; ok {
		return a.Name
	}
	return ""
}
