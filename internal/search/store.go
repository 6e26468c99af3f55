package search

import (
	"context"
	"net/url"

	"spotify/internal/catalog"
)

// Store defines the lookup required by the search handler.
type Store interface {
	Search(ctx context.Context, query string, limit int) (Results, error)
}

// Results captures the different result buckets surfaced by the handler.
type Results struct {
	Artists []ArtistResult
	Albums  []AlbumResult
	Songs   []SongResult
}

// ArtistResult summarises an artist match.
type ArtistResult struct {
	ID         string
	Name       string
	AlbumCount int
	Likes      int
	Href       string
}

// AlbumResult summarises an album match.
type AlbumResult struct {
	ID        string
	Title     string
	Artist    string
	SongCount int
	Href      string
}

// SongResult summarises a song match.
type SongResult struct {
	ID     string
	Title  string
	Artist string
	Album  string
	Length int
	Likes  int
	Href   string
}

// Searcher is the catalog query backing CatalogStore.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) catalog.SearchResults
}

// CatalogStore adapts the in-memory catalog to Store.
type CatalogStore struct {
	catalog Searcher
}

// NewCatalogStore wraps c for use by the handler.
func NewCatalogStore(c Searcher) *CatalogStore {
	return &CatalogStore{catalog: c}
}

// Search implements Store.
func (s *CatalogStore) Search(ctx context.Context, query string, limit int) (Results, error) {
	if err := ctx.Err(); err != nil {
		return Results{}, err
	}

	found := s.catalog.Search(ctx, query, limit)

	var results Results
	for _, a := range found.Artists {
		results.Artists = append(results.Artists, ArtistResult{
			ID:         a.ID.String(),
			Name:       a.Name,
			AlbumCount: a.AlbumCount,
			Likes:      a.Likes,
			Href:       "/api/v1/artists/" + url.PathEscape(a.Name) + "/albums",
		})
	}
	for _, al := range found.Albums {
		results.Albums = append(results.Albums, AlbumResult{
			ID:        al.ID.String(),
			Title:     al.Title,
			Artist:    al.ArtistName,
			SongCount: al.SongCount,
			Href:      "/api/v1/albums/" + url.PathEscape(al.Title) + "/songs",
		})
	}
	for _, song := range found.Songs {
		results.Songs = append(results.Songs, SongResult{
			ID:     song.ID.String(),
			Title:  song.Title,
			Artist: song.ArtistName,
			Album:  song.AlbumTitle,
			Length: song.Length,
			Likes:  song.Likes,
			Href:   "/api/v1/songs/" + url.PathEscape(song.Title) + "/likers",
		})
	}
	return results, nil
}
