// Package metadata derives filter choices and summary counts from a picks
// dataset.
package metadata

import (
	"slices"
	"strconv"

	"github.com/llehouerou/aotw/internal/album"
	"github.com/llehouerou/aotw/internal/query"
)

// DistinctValues returns the distinct non-empty values of field, sorted
// ascending. Years are rendered as decimal text. FieldDecade returns the
// decades newest first, matching DistinctDecades. Unknown fields yield an
// empty slice.
func DistinctValues(records []album.Record, field query.Field) []string {
	if field == query.FieldDecade {
		decades := DistinctDecades(records)
		result := make([]string, len(decades))
		for i, d := range decades {
			result[i] = strconv.Itoa(d)
		}
		return result
	}

	get := accessor(field)
	if get == nil {
		return []string{}
	}

	seen := make(map[string]struct{})
	result := []string{}
	for i := range records {
		v := get(&records[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	slices.Sort(result)
	return result
}

func accessor(field query.Field) func(r *album.Record) string {
	switch field {
	case query.FieldArtist:
		return func(r *album.Record) string { return r.Artist }
	case query.FieldTitle:
		return func(r *album.Record) string { return r.Title }
	case query.FieldPicker:
		return func(r *album.Record) string { return r.Picker }
	case query.FieldYear:
		return func(r *album.Record) string {
			if !r.HasYear() {
				return ""
			}
			return strconv.Itoa(r.Year)
		}
	default:
		return nil
	}
}

// DistinctDecades returns the release decades present in records, newest
// first. Records without a year are skipped.
func DistinctDecades(records []album.Record) []int {
	seen := make(map[int]struct{})
	result := []int{}
	for i := range records {
		if !records[i].HasYear() {
			continue
		}
		d := query.Decade(records[i].Year)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	slices.Sort(result)
	slices.Reverse(result)
	return result
}

// DecadeCount is the number of picks released in one decade.
type DecadeCount struct {
	Decade int
	Count  int
}

// DecadeCounts returns pick counts per release decade, oldest decade first.
// Decades without picks are omitted.
func DecadeCounts(records []album.Record) []DecadeCount {
	counts := make(map[int]int)
	for i := range records {
		if records[i].HasYear() {
			counts[query.Decade(records[i].Year)]++
		}
	}

	result := make([]DecadeCount, 0, len(counts))
	for d, n := range counts {
		result = append(result, DecadeCount{Decade: d, Count: n})
	}
	slices.SortFunc(result, func(a, b DecadeCount) int {
		return a.Decade - b.Decade
	})
	return result
}
