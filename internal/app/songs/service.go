package songs

import (
	"context"

	"spotify/internal/catalog"
)

// Store captures the catalog operations needed for song workflows.
type Store interface {
	CreateSong(ctx context.Context, title, albumName string, length int) (catalog.Song, error)
	Songs(ctx context.Context) []catalog.Song
	LikeSong(ctx context.Context, mobile, songTitle string) (catalog.Song, error)
	SongLikers(ctx context.Context, songTitle string) ([]catalog.User, error)
	MostPopularSong(ctx context.Context) string
}

// Service exposes song-centric operations.
type Service interface {
	Create(ctx context.Context, title, albumName string, length int) (catalog.Song, error)
	List(ctx context.Context) ([]catalog.Song, error)
	Like(ctx context.Context, mobile, title string) (catalog.Song, error)
	Likers(ctx context.Context, title string) ([]catalog.User, error)
	MostPopular(ctx context.Context) (string, error)
}

type service struct {
	store Store
}

// New constructs a song Service backed by the provided store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, title, albumName string, length int) (catalog.Song, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Song{}, err
	}
	return s.store.CreateSong(ctx, title, albumName, length)
}

func (s *service) List(ctx context.Context) ([]catalog.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Songs(ctx), nil
}

func (s *service) Like(ctx context.Context, mobile, title string) (catalog.Song, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Song{}, err
	}
	return s.store.LikeSong(ctx, mobile, title)
}

func (s *service) Likers(ctx context.Context, title string) ([]catalog.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SongLikers(ctx, title)
}

func (s *service) MostPopular(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.MostPopularSong(ctx), nil
}
