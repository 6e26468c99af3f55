package artists

import (
	"context"
	"strings"

	"spotify/internal/catalog"
)

// Filter narrows the list of returned artists. Name matches as a
// case-insensitive substring, the same way catalog search does.
type Filter struct {
	Name string
}

// Store captures the catalog operations needed for artist workflows.
type Store interface {
	CreateArtist(ctx context.Context, name string) (catalog.Artist, error)
	Artists(ctx context.Context) []catalog.Artist
	AlbumsByArtist(ctx context.Context, name string) ([]catalog.Album, error)
	MostPopularArtist(ctx context.Context) string
	Search(ctx context.Context, query string, limit int) catalog.SearchResults
}

// Service provides artist-centric operations.
type Service interface {
	Create(ctx context.Context, name string) (catalog.Artist, error)
	List(ctx context.Context, filter Filter) ([]catalog.Artist, error)
	Albums(ctx context.Context, name string) ([]catalog.Album, error)
	MostPopular(ctx context.Context) (string, error)
}

type service struct {
	store Store
}

// New constructs an artist Service backed by the supplied store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, name string) (catalog.Artist, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Artist{}, err
	}
	return s.store.CreateArtist(ctx, name)
}

func (s *service) List(ctx context.Context, filter Filter) ([]catalog.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(filter.Name) == "" {
		return s.store.Artists(ctx), nil
	}

	matches := s.store.Search(ctx, filter.Name, 0).Artists
	artists := make([]catalog.Artist, 0, len(matches))
	for _, m := range matches {
		artists = append(artists, m.Artist)
	}
	return artists, nil
}

func (s *service) Albums(ctx context.Context, name string) ([]catalog.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.AlbumsByArtist(ctx, name)
}

func (s *service) MostPopular(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.MostPopularArtist(ctx), nil
}
