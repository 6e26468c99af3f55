package playlists

import (
	"context"

	"spotify/internal/catalog"
)

// Store captures the catalog operations needed for playlist workflows.
type Store interface {
	CreatePlaylistOnLength(ctx context.Context, mobile, title string, length int) (catalog.Playlist, error)
	CreatePlaylistOnName(ctx context.Context, mobile, title string, songTitles []string) (catalog.Playlist, error)
	FindPlaylist(ctx context.Context, mobile, title string) (catalog.Playlist, error)
	Playlists(ctx context.Context) []catalog.Playlist
	PlaylistSongs(ctx context.Context, title string) ([]catalog.Song, error)
	PlaylistListeners(ctx context.Context, title string) ([]catalog.User, error)
}

// Service coordinates playlist-related operations.
type Service interface {
	CreateOnLength(ctx context.Context, mobile, title string, length int) (catalog.Playlist, error)
	CreateOnName(ctx context.Context, mobile, title string, songTitles []string) (catalog.Playlist, error)
	Find(ctx context.Context, mobile, title string) (catalog.Playlist, error)
	List(ctx context.Context) ([]catalog.Playlist, error)
	Songs(ctx context.Context, title string) ([]catalog.Song, error)
	Listeners(ctx context.Context, title string) ([]catalog.User, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) CreateOnLength(ctx context.Context, mobile, title string, length int) (catalog.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Playlist{}, err
	}
	return s.store.CreatePlaylistOnLength(ctx, mobile, title, length)
}

func (s *service) CreateOnName(ctx context.Context, mobile, title string, songTitles []string) (catalog.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Playlist{}, err
	}
	return s.store.CreatePlaylistOnName(ctx, mobile, title, songTitles)
}

func (s *service) Find(ctx context.Context, mobile, title string) (catalog.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Playlist{}, err
	}
	return s.store.FindPlaylist(ctx, mobile, title)
}

func (s *service) List(ctx context.Context) ([]catalog.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Playlists(ctx), nil
}

func (s *service) Songs(ctx context.Context, title string) ([]catalog.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.PlaylistSongs(ctx, title)
}

func (s *service) Listeners(ctx context.Context, title string) ([]catalog.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.PlaylistListeners(ctx, title)
}
