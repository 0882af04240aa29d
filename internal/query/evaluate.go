package query

import "github.com/llehouerou/aotw/internal/album"

// Evaluate applies the search, field filters and sort of q, in that order.
// The input slice is not modified. The result is never nil.
func Evaluate(records []album.Record, q Query) []album.Record {
	result := Search(records, q.SearchTerm)
	result = FilterFields(result, q.Filters)
	return Sort(result, q.SortKey, q.Direction, q.Locale)
}

// Arrange evaluates q and buckets the result according to q.GroupBy.
// Without grouping the whole result is returned as a single bucket with an
// empty key.
func Arrange(records []album.Record, q Query) []Bucket {
	result := Evaluate(records, q)
	if q.GroupBy == GroupByPickYear {
		return Group(result)
	}
	return []Bucket{{Records: result}}
}

// Flatten concatenates bucket contents in bucket order.
func Flatten(buckets []Bucket) []album.Record {
	n := 0
	for i := range buckets {
		n += len(buckets[i].Records)
	}
	result := make([]album.Record, 0, n)
	for i := range buckets {
		result = append(result, buckets[i].Records...)
	}
	return result
}
