package query

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/llehouerou/aotw/internal/album"
)

// Sort returns records ordered by key. The sort is stable. Desc reverses the
// ascending result, so records with equal keys appear in reverse input order.
// Artist and title use locale-aware collation; a missing year sorts lowest.
func Sort(records []album.Record, key SortKey, dir Direction, locale language.Tag) []album.Record {
	result := clone(records)
	slices.SortStableFunc(result, comparator(key, locale))
	if dir == Desc {
		slices.Reverse(result)
	}
	return result
}

func comparator(key SortKey, locale language.Tag) func(a, b album.Record) int {
	switch key {
	case SortByArtist:
		c := collate.New(locale)
		return func(a, b album.Record) int {
			return c.CompareString(a.Artist, b.Artist)
		}
	case SortByTitle:
		c := collate.New(locale)
		return func(a, b album.Record) int {
			return c.CompareString(a.Title, b.Title)
		}
	case SortByYear:
		// Year 0 means missing and compares below any real year.
		return func(a, b album.Record) int {
			return cmp.Compare(a.Year, b.Year)
		}
	default:
		return func(a, b album.Record) int {
			return cmp.Compare(a.PickNumber, b.PickNumber)
		}
	}
}
