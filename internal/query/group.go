package query

import (
	"slices"
	"strconv"

	"github.com/llehouerou/aotw/internal/album"
)

// UnknownBucket holds records without a usable pick date.
const UnknownBucket = "Unknown"

// Bucket is a group of records sharing a pick year.
type Bucket struct {
	Key     string // "2025", UnknownBucket, or "" for the ungrouped bucket
	Records []album.Record
}

// Group buckets records by pick year. Buckets are ordered newest year first
// with UnknownBucket last; records keep their input order within a bucket.
func Group(records []album.Record) []Bucket {
	groups := make(map[int]*Bucket)
	var years []int
	var unknown *Bucket

	for i := range records {
		r := records[i]
		year, ok := r.PickYear()
		if !ok {
			if unknown == nil {
				unknown = &Bucket{Key: UnknownBucket}
			}
			unknown.Records = append(unknown.Records, r)
			continue
		}

		if _, exists := groups[year]; !exists {
			groups[year] = &Bucket{Key: strconv.Itoa(year)}
			years = append(years, year)
		}
		groups[year].Records = append(groups[year].Records, r)
	}

	// Newest pick year first
	slices.Sort(years)
	slices.Reverse(years)

	result := make([]Bucket, 0, len(years)+1)
	for _, year := range years {
		result = append(result, *groups[year])
	}
	if unknown != nil {
		result = append(result, *unknown)
	}
	return result
}
