package artists

import (
	"context"
	"errors"
	"testing"

	"spotify/internal/catalog"
)

func TestListFiltersByName(t *testing.T) {
	ctx := context.Background()
	store := catalog.New()
	for _, name := range []string{"Massive Attack", "Portishead", "Attack Attack!"} {
		if _, err := store.CreateArtist(ctx, name); err != nil {
			t.Fatalf("CreateArtist(%q): %v", name, err)
		}
	}

	svc := New(store)

	got, err := svc.List(ctx, Filter{Name: " attack "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Massive Attack" || got[1].Name != "Attack Attack!" {
		t.Fatalf("unexpected artists %+v", got)
	}

	all, err := svc.List(ctx, Filter{Name: "  "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 artists, got %d", len(all))
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := catalog.New()
	svc := New(store)

	if _, err := svc.Create(ctx, "Bonobo"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := len(store.Artists(context.Background())); got != 0 {
		t.Fatalf("expected no artists, got %d", got)
	}
	if _, err := svc.MostPopular(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestListFilterAgreesWithSearch(t *testing.T) {
	ctx := context.Background()
	store := catalog.New()
	for _, name := range []string{"Bonobo", "Boards of Canada", "Thundercat"} {
		if _, err := store.CreateArtist(ctx, name); err != nil {
			t.Fatalf("CreateArtist(%q): %v", name, err)
		}
	}

	svc := New(store)

	for _, query := range []string{"BO", "cat", "zzz"} {
		got, err := svc.List(ctx, Filter{Name: query})
		if err != nil {
			t.Fatalf("List(%q): %v", query, err)
		}
		want := store.Search(ctx, query, 0).Artists
		if len(got) != len(want) {
			t.Fatalf("%q: expected %d artists, got %d", query, len(want), len(got))
		}
		for i := range got {
			if got[i].ID != want[i].ID {
				t.Fatalf("%q: artist %d differs: %+v vs %+v", query, i, got[i], want[i].Artist)
			}
		}
	}
}
