package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const defaultLimit = 10

// Response is the search payload: one section per kind that had hits, in
// the order artists, albums, songs.
type Response struct {
	Sections []Section `json:"sections"`
}

type Section struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Href     string `json:"href,omitempty"`
}

// NewHandler serves GET ?q=&limit= against store.
func NewHandler(store Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		resp := Response{Sections: []Section{}}
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query != "" {
			results, err := store.Search(r.Context(), query, parseLimit(r.URL.Query().Get("limit")))
			if err != nil {
				zerolog.Ctx(r.Context()).Error().Err(err).Str("query", query).Msg("search failed")
				http.Error(w, "search failed", http.StatusInternalServerError)
				return
			}
			resp.Sections = sections(results)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
}

// parseLimit falls back to defaultLimit for anything but a positive integer.
func parseLimit(raw string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
		return n
	}
	return defaultLimit
}

func sections(results Results) []Section {
	out := []Section{}
	add := func(name string, items []Item) {
		if len(items) > 0 {
			out = append(out, Section{Name: name, Items: items})
		}
	}

	var artists []Item
	for _, a := range results.Artists {
		artists = append(artists, Item{
			ID:       a.ID,
			Title:    a.Name,
			Subtitle: joinParts(count(a.AlbumCount, "album"), count(a.Likes, "like")),
			Href:     a.Href,
		})
	}
	add("artists", artists)

	var albums []Item
	for _, al := range results.Albums {
		albums = append(albums, Item{
			ID:       al.ID,
			Title:    al.Title,
			Subtitle: joinParts(al.Artist, count(al.SongCount, "song")),
			Href:     al.Href,
		})
	}
	add("albums", albums)

	var songs []Item
	for _, song := range results.Songs {
		songs = append(songs, Item{
			ID:       song.ID,
			Title:    song.Title,
			Subtitle: joinParts(song.Artist, song.Album, clock(song.Length), count(song.Likes, "like")),
			Href:     song.Href,
		})
	}
	add("songs", songs)

	return out
}

// joinParts joins the non-empty parts with a middle dot.
func joinParts(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}

// count renders n with noun, or nothing when n is zero.
func count(n int, noun string) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 " + noun
	default:
		return fmt.Sprintf("%d %ss", n, noun)
	}
}

// clock renders a length in seconds as m:ss.
func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
