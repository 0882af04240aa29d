// Package query evaluates search, filter, sort and grouping parameters over
// a picks dataset. Every function is pure: inputs are never modified and the
// same inputs always produce the same arrangement.
package query

import (
	"strings"

	"golang.org/x/text/language"
)

// Field names a record field that can be filtered on or enumerated.
type Field string

const (
	FieldYear   Field = "year"
	FieldArtist Field = "artist"
	FieldTitle  Field = "title"
	FieldPicker Field = "picker"
	FieldDecade Field = "decade" // matches years in [decade, decade+10)
)

// ParseField maps a parameter name to a Field. "album" is accepted as an
// alias for the title. Returns false for unknown names.
func ParseField(s string) (Field, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year":
		return FieldYear, true
	case "artist":
		return FieldArtist, true
	case "title", "album":
		return FieldTitle, true
	case "picker":
		return FieldPicker, true
	case "decade":
		return FieldDecade, true
	}
	return "", false
}

// SortKey selects the record field used for ordering.
type SortKey int

const (
	SortByPickNumber SortKey = iota // default
	SortByArtist
	SortByTitle
	SortByYear
)

// SortKeyCount is the number of sort keys.
const SortKeyCount = 4

// ParseSortKey parses a sort key name. Unknown names fall back to pick order.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "artist":
		return SortByArtist
	case "album", "title":
		return SortByTitle
	case "year":
		return SortByYear
	}
	return SortByPickNumber
}

func (k SortKey) String() string {
	switch k {
	case SortByArtist:
		return "artist"
	case SortByTitle:
		return "album"
	case SortByYear:
		return "year"
	case SortByPickNumber:
		return "pick_number"
	}
	return "pick_number"
}

// Label returns a display name for the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortByArtist:
		return "Artist"
	case SortByTitle:
		return "Album"
	case SortByYear:
		return "Year"
	case SortByPickNumber:
		return "Pick #"
	}
	return "Pick #"
}

// Next cycles to the following sort key.
func (k SortKey) Next() SortKey {
	return (k + 1) % SortKeyCount
}

// Direction specifies ascending or descending order.
type Direction int

const (
	Asc  Direction = iota // default
	Desc                  // reverse of the ascending result
)

// ParseDirection parses "asc" or "desc". Anything else is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// GroupBy specifies how the result is bucketed for display.
type GroupBy int

const (
	GroupByNone     GroupBy = iota // default
	GroupByPickYear                // year prefix of picked_at
)

// ParseGroupBy parses a grouping name. Unknown names mean no grouping.
func ParseGroupBy(s string) GroupBy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pick_year", "year", "picked_at":
		return GroupByPickYear
	}
	return GroupByNone
}

func (g GroupBy) String() string {
	if g == GroupByPickYear {
		return "pick_year"
	}
	return "none"
}

// Query holds the parameters of one display request.
type Query struct {
	SearchTerm string
	Filters    map[Field]string
	SortKey    SortKey
	Direction  Direction
	GroupBy    GroupBy
	Locale     language.Tag // collation locale for text sorts; zero means root
}

// IdentityQuery returns the query that keeps every record in pick order.
func IdentityQuery() Query {
	return Query{}
}

// FromParams builds a Query from the UI parameter surface: a free-text term
// plus a {year, artist, picker, decade, sortBy, sortDir, groupBy} map.
// Unrecognized keys are ignored and empty values impose no constraint.
func FromParams(searchTerm string, params map[string]string) Query {
	q := Query{SearchTerm: searchTerm}
	for key, value := range params {
		switch key {
		case "sortBy":
			q.SortKey = ParseSortKey(value)
		case "sortDir":
			q.Direction = ParseDirection(value)
		case "groupBy":
			q.GroupBy = ParseGroupBy(value)
		default:
			q = q.WithFilter(key, value)
		}
	}
	return q
}

// WithFilter returns a copy of q with the named filter set to value. An empty
// value removes the filter. Unknown names leave q unchanged.
func (q Query) WithFilter(name, value string) Query {
	field, ok := ParseField(name)
	if !ok {
		return q
	}

	filters := make(map[Field]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	value = strings.TrimSpace(value)
	if value == "" {
		delete(filters, field)
	} else {
		filters[field] = value
	}
	q.Filters = filters
	return q
}

// Filter returns the active value for field, or "".
func (q Query) Filter(field Field) string {
	return q.Filters[field]
}
