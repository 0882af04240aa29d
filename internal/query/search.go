package query

import (
	"strings"

	"github.com/llehouerou/aotw/internal/album"
)

// Search keeps records whose artist or title contains term, ignoring case
// and surrounding whitespace in term. An empty term keeps every record.
func Search(records []album.Record, term string) []album.Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return clone(records)
	}

	result := make([]album.Record, 0, len(records))
	for i := range records {
		if matchesTerm(&records[i], term) {
			result = append(result, records[i])
		}
	}
	return result
}

// matchesTerm expects term to be lower-cased already. Empty fields never match.
func matchesTerm(r *album.Record, term string) bool {
	return strings.Contains(strings.ToLower(r.Artist), term) ||
		strings.Contains(strings.ToLower(r.Title), term)
}

func clone(records []album.Record) []album.Record {
	result := make([]album.Record, len(records))
	copy(result, records)
	return result
}
