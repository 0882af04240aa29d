package album

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNotArray is returned when the dataset document is not a JSON array.
var ErrNotArray = errors.New("dataset is not a JSON array")

// Decode reads a JSON array of picks from r.
//
// Field values are decoded leniently: numbers may be given as strings,
// the year may be a full date, and wrong-typed or missing fields fall back
// to their zero value. Array elements that are not objects are skipped.
// Only a document that is not a JSON array is an error.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	records := make([]Record, 0, len(elems))
	for _, elem := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
			continue
		}
		records = append(records, recordFromFields(fields))
	}
	return records, nil
}

func recordFromFields(f map[string]json.RawMessage) Record {
	r := Record{
		ID:            textField(f, "spotify_album_id"),
		PickNumber:    intField(f, "pick_number"),
		Artist:        textField(f, "artist"),
		Title:         textField(f, "album"),
		Year:          yearField(f, "year"),
		PickedAt:      textField(f, "picked_at"),
		Picker:        textField(f, "picker"),
		ArtworkURL:    textField(f, "artwork_url"),
		SpotifyURL:    textField(f, "spotify_url"),
		AppleMusicURL: textField(f, "apple_music_url"),
		Label:         textField(f, "label"),
		Genres:        textField(f, "genres"),
		TotalTracks:   intField(f, "total_tracks"),
	}
	if r.ID == "" {
		r.ID = SpotifyAlbumID(r.SpotifyURL)
	}
	return r
}

// textField returns a string field, or the literal text of a number.
// Anything else (null, bool, object, array) yields "".
func textField(f map[string]json.RawMessage, key string) string {
	raw, ok := f[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// intField returns a non-negative integer from a number or numeric string.
// Fractional values are truncated ("12.0" -> 12). Invalid values yield 0.
func intField(f map[string]json.RawMessage, key string) int {
	return parseInt(textField(f, key))
}

// yearField is like intField but also accepts dates ("1998-06-01" -> 1998).
// A date with an impossible month or day still yields its year.
func yearField(f map[string]json.RawMessage, key string) int {
	s := textField(f, key)
	if y := parseInt(s); y > 0 {
		return y
	}
	if t, precision := ParseDate(s); precision != PrecisionNone {
		return t.Year()
	}
	if isDateShaped(s) {
		if y, ok := yearPrefix(s); ok {
			return y
		}
	}
	return 0
}

// isDateShaped reports whether s has the layout of YYYY-MM or YYYY-MM-DD,
// without checking that the month and day exist.
func isDateShaped(s string) bool {
	switch ParseDatePrecision(s) {
	case PrecisionMonth:
		return s[4] == '-'
	case PrecisionDay:
		return s[4] == '-' && s[7] == '-'
	case PrecisionNone, PrecisionYear:
	}
	return false
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return max(n, 0)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > math.MaxInt32 {
		return 0
	}
	return int(v)
}
