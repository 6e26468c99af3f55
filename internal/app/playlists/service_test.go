package playlists

import (
	"context"
	"errors"
	"testing"

	"spotify/internal/catalog"
)

type stubStore struct {
	Store
	calls    int
	playlist catalog.Playlist
	err      error
}

func (s *stubStore) CreatePlaylistOnLength(context.Context, string, string, int) (catalog.Playlist, error) {
	s.calls++
	return s.playlist, s.err
}

func (s *stubStore) FindPlaylist(context.Context, string, string) (catalog.Playlist, error) {
	s.calls++
	return s.playlist, s.err
}

func TestServiceDelegates(t *testing.T) {
	store := &stubStore{playlist: catalog.Playlist{Title: "Faves"}}
	svc := New(store)

	got, err := svc.CreateOnLength(context.Background(), "999", "Faves", 200)
	if err != nil {
		t.Fatalf("CreateOnLength: %v", err)
	}
	if got.Title != "Faves" || store.calls != 1 {
		t.Fatalf("unexpected result %+v after %d calls", got, store.calls)
	}

	store.err = catalog.ErrNotFound
	if _, err := svc.Find(context.Background(), "000", "Faves"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceSkipsStoreOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &stubStore{}
	svc := New(store)

	if _, err := svc.CreateOnLength(ctx, "999", "Faves", 200); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := svc.Find(ctx, "999", "Faves"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("expected store to be untouched, got %d calls", store.calls)
	}
}
