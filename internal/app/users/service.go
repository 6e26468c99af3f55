package users

import (
	"context"

	"spotify/internal/catalog"
)

// Store describes the catalog operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, name, mobile string) (catalog.User, error)
	Users(ctx context.Context) []catalog.User
	PlaylistsByCreator(ctx context.Context, mobile string) ([]catalog.Playlist, error)
	PlaylistsByUser(ctx context.Context, mobile string) ([]catalog.Playlist, error)
}

// Service exposes user-related workflows.
type Service interface {
	Create(ctx context.Context, name, mobile string) (catalog.User, error)
	List(ctx context.Context) ([]catalog.User, error)
	CreatedPlaylists(ctx context.Context, mobile string) ([]catalog.Playlist, error)
	Playlists(ctx context.Context, mobile string) ([]catalog.Playlist, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, name, mobile string) (catalog.User, error) {
	if err := ctx.Err(); err != nil {
		return catalog.User{}, err
	}
	return s.store.CreateUser(ctx, name, mobile)
}

func (s *service) List(ctx context.Context) ([]catalog.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Users(ctx), nil
}

func (s *service) CreatedPlaylists(ctx context.Context, mobile string) ([]catalog.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.PlaylistsByCreator(ctx, mobile)
}

func (s *service) Playlists(ctx context.Context, mobile string) ([]catalog.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.PlaylistsByUser(ctx, mobile)
}
