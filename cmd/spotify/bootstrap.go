package main

import (
	"context"
	"fmt"

	"spotify/internal/catalog"
)

const (
	demoUserName   = "demo"
	demoUserMobile = "0000000000"
	demoPlaylist   = "Late Night"
)

type seedAlbum struct {
	Artist string
	Title  string
	Tracks []seedTrack
}

type seedTrack struct {
	Title  string
	Length int
}

var demoAlbums = []seedAlbum{
	{
		Artist: "Boards of Canada",
		Title:  "Music Has the Right to Children",
		Tracks: []seedTrack{{"Turquoise Hexagon Sun", 307}, {"Roygbiv", 151}, {"Aquarius", 359}},
	},
	{
		Artist: "Massive Attack",
		Title:  "Mezzanine",
		Tracks: []seedTrack{{"Angel", 379}, {"Teardrop", 330}, {"Inertia Creeps", 356}},
	},
	{
		Artist: "Portishead",
		Title:  "Dummy",
		Tracks: []seedTrack{{"Mysterons", 302}, {"Sour Times", 251}, {"Glory Box", 301}},
	},
	{
		Artist: "Radiohead",
		Title:  "OK Computer",
		Tracks: []seedTrack{{"Airbag", 284}, {"Paranoid Android", 383}, {"No Surprises", 229}},
	},
	{
		Artist: "Nightmares on Wax",
		Title:  "Carboot Soul",
		Tracks: []seedTrack{{"Les Nuits", 402}, {"Morse", 257}, {"Finer", 271}},
	},
	{
		Artist: "Bonobo",
		Title:  "Migration",
		Tracks: []seedTrack{{"Migration", 317}, {"Break Apart", 273}, {"Kerala", 250}},
	},
	{
		Artist: "Nils Frahm",
		Title:  "Spaces",
		Tracks: []seedTrack{{"An Aborted Beginning", 139}, {"Says", 497}, {"Hammers", 314}},
	},
	{
		Artist: "Thundercat",
		Title:  "Drunk",
		Tracks: []seedTrack{{"Uh Uh", 183}, {"Them Changes", 188}, {"Show You The Way", 205}},
	},
}

// bootstrapDemoData loads a small catalog into an empty store.
func bootstrapDemoData(ctx context.Context, store *catalog.Store) error {
	if _, err := store.CreateUser(ctx, demoUserName, demoUserMobile); err != nil {
		return fmt.Errorf("bootstrap demo user: %w", err)
	}

	for _, album := range demoAlbums {
		if _, err := store.CreateAlbum(ctx, album.Title, album.Artist); err != nil {
			return fmt.Errorf("insert demo album %q: %w", album.Title, err)
		}
		for _, track := range album.Tracks {
			if _, err := store.CreateSong(ctx, track.Title, album.Title, track.Length); err != nil {
				return fmt.Errorf("insert demo song %q: %w", track.Title, err)
			}
		}
	}

	if _, err := store.CreatePlaylistOnName(ctx, demoUserMobile, demoPlaylist, []string{
		"Teardrop", "Glory Box", "Kerala", "Says",
	}); err != nil {
		return fmt.Errorf("bootstrap demo playlist: %w", err)
	}
	if _, err := store.LikeSong(ctx, demoUserMobile, "Teardrop"); err != nil {
		return fmt.Errorf("bootstrap demo like: %w", err)
	}

	return nil
}
