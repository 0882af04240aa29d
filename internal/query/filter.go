package query

import (
	"strconv"
	"strings"

	"github.com/llehouerou/aotw/internal/album"
)

// predicate reports whether a record passes one field filter.
type predicate func(r *album.Record) bool

// FilterFields keeps records that satisfy every non-empty filter.
// Text fields compare case-insensitively for equality; the decade filter
// matches release years in [decade, decade+10). Unknown fields and decade
// values that are not integers impose no constraint.
func FilterFields(records []album.Record, filters map[Field]string) []album.Record {
	preds := make([]predicate, 0, len(filters))
	for field, value := range filters {
		if p := newPredicate(field, strings.TrimSpace(value)); p != nil {
			preds = append(preds, p)
		}
	}
	if len(preds) == 0 {
		return clone(records)
	}

	result := make([]album.Record, 0, len(records))
	for i := range records {
		if matchesAll(&records[i], preds) {
			result = append(result, records[i])
		}
	}
	return result
}

func matchesAll(r *album.Record, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// newPredicate returns nil when the filter imposes no constraint.
func newPredicate(field Field, value string) predicate {
	if value == "" {
		return nil
	}

	switch field {
	case FieldArtist:
		return textEquals(value, func(r *album.Record) string { return r.Artist })
	case FieldTitle:
		return textEquals(value, func(r *album.Record) string { return r.Title })
	case FieldPicker:
		return textEquals(value, func(r *album.Record) string { return r.Picker })
	case FieldYear:
		return textEquals(value, yearText)
	case FieldDecade:
		decade, err := strconv.Atoi(value)
		if err != nil {
			return nil
		}
		return func(r *album.Record) bool {
			return r.HasYear() && r.Year >= decade && r.Year < decade+10
		}
	}
	return nil
}

func textEquals(value string, get func(r *album.Record) string) predicate {
	return func(r *album.Record) bool {
		v := get(r)
		return v != "" && strings.EqualFold(v, value)
	}
}

// yearText renders the release year as text, "" when missing.
func yearText(r *album.Record) string {
	if !r.HasYear() {
		return ""
	}
	return strconv.Itoa(r.Year)
}

// Decade returns the start of the decade containing year.
func Decade(year int) int {
	return year / 10 * 10
}
