package catalog

import "github.com/google/uuid"

// User is a listener identified by a mobile number.
type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Mobile string    `json:"mobile"`
}

// Artist owns albums and accumulates likes from its songs.
type Artist struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Likes int       `json:"likes"`
}

// Album belongs to exactly one artist.
type Album struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ArtistID uuid.UUID `json:"artist_id"`
}

// Song belongs to exactly one album. Length is in seconds.
type Song struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Length  int       `json:"length"`
	Likes   int       `json:"likes"`
	AlbumID uuid.UUID `json:"album_id"`
}

// Playlist is a fixed selection of songs created by one user.
type Playlist struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatorID uuid.UUID `json:"creator_id"`
}

// Stats summarises the size of the catalog.
type Stats struct {
	Users     int `json:"users"`
	Artists   int `json:"artists"`
	Albums    int `json:"albums"`
	Songs     int `json:"songs"`
	Playlists int `json:"playlists"`
}
