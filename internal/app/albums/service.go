package albums

import (
	"context"

	"spotify/internal/catalog"
)

// Store captures the catalog operations needed for album workflows.
type Store interface {
	CreateAlbum(ctx context.Context, title, artistName string) (catalog.Album, error)
	Albums(ctx context.Context) []catalog.Album
	SongsByAlbum(ctx context.Context, title string) ([]catalog.Song, error)
}

// Service coordinates album-related operations.
type Service interface {
	Create(ctx context.Context, title, artistName string) (catalog.Album, error)
	List(ctx context.Context) ([]catalog.Album, error)
	Songs(ctx context.Context, title string) ([]catalog.Song, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, title, artistName string) (catalog.Album, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Album{}, err
	}
	return s.store.CreateAlbum(ctx, title, artistName)
}

func (s *service) List(ctx context.Context) ([]catalog.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Albums(ctx), nil
}

func (s *service) Songs(ctx context.Context, title string) ([]catalog.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SongsByAlbum(ctx, title)
}
