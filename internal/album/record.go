// Package album defines the album pick record and loads the picks dataset.
package album

import "strings"

// Record is one album pick. Records are values; nothing in this module
// modifies a Record after decoding.
type Record struct {
	ID         string // Spotify album id, stable across reloads
	PickNumber int    // 1-based pick order, 0 if missing
	Artist     string
	Title      string
	Year       int    // Release year, 0 if missing or invalid
	PickedAt   string // ISO date of the pick (YYYY-MM-DD), may be empty
	Picker     string

	ArtworkURL    string
	SpotifyURL    string
	AppleMusicURL string

	Label       string
	Genres      string
	TotalTracks int
}

// HasYear reports whether the record carries a usable release year.
func (r *Record) HasYear() bool {
	return r.Year > 0
}

// PickYear returns the year the album was picked, taken from the first four
// characters of PickedAt. Returns false if PickedAt is missing or malformed.
func (r *Record) PickYear() (int, bool) {
	return yearPrefix(strings.TrimSpace(r.PickedAt))
}
