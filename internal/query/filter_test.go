package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/aotw/internal/album"
)

func TestFilterFields(t *testing.T) {
	tests := []struct {
		name    string
		filters map[Field]string
		want    []string
	}{
		{"nil filters keep all", nil, []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}},
		{"empty values keep all", map[Field]string{FieldArtist: "", FieldYear: " "}, []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}},
		{"artist exact", map[Field]string{FieldArtist: "can"}, []string{"c3"}},
		{"artist is not substring", map[Field]string{FieldArtist: "Ca"}, []string{}},
		{"title exact", map[Field]string{FieldTitle: "DISCOVERY"}, []string{"d4"}},
		{"picker case insensitive", map[Field]string{FieldPicker: "alex"}, []string{"b2", "d4"}},
		{"year as text", map[Field]string{FieldYear: "2002"}, []string{"b2"}},
		{"decade", map[Field]string{FieldDecade: "2000"}, []string{"b2", "d4", "e5"}},
		{"decade excludes missing year", map[Field]string{FieldDecade: "0"}, []string{}},
		{"non numeric decade ignored", map[Field]string{FieldDecade: "nineties"}, []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}},
		{"unknown field ignored", map[Field]string{Field("label"): "Virgin"}, []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}},
		{"and of two filters", map[Field]string{FieldPicker: "sam", FieldDecade: "1990"}, []string{"a1"}},
		{"picker and decade", map[Field]string{FieldPicker: "jo", FieldDecade: "2020"}, []string{"g7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFields(testPicks(), tt.filters)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("FilterFields(%v) mismatch (-want +got):\n%s", tt.filters, diff)
			}
		})
	}
}

func TestFilterFields_DecadeIsHalfOpen(t *testing.T) {
	records := []album.Record{
		{ID: "2019", Year: 2019},
		{ID: "2020", Year: 2020},
		{ID: "2029", Year: 2029},
		{ID: "2030", Year: 2030},
	}

	got := FilterFields(records, map[Field]string{FieldDecade: "2020"})
	assert.Equal(t, []string{"2020", "2029"}, ids(got))
}

func TestFilterFields_YearFilterSkipsMissingYear(t *testing.T) {
	records := []album.Record{{ID: "none"}, {ID: "y", Year: 1998}}

	assert.Empty(t, FilterFields(records, map[Field]string{FieldYear: "0"}))
	assert.Equal(t, []string{"y"}, ids(FilterFields(records, map[Field]string{FieldYear: "1998"})))
}

func TestFilterFields_AndIsIntersection(t *testing.T) {
	pairs := []map[Field]string{
		{FieldPicker: "Sam", FieldDecade: "1990"},
		{FieldPicker: "jo", FieldYear: "2023"},
		{FieldArtist: "Air", FieldDecade: "2000"},
		{FieldDecade: "2000", FieldYear: "2001"},
	}

	for _, pair := range pairs {
		var singles [][]string
		for field, value := range pair {
			singles = append(singles, ids(FilterFields(testPicks(), map[Field]string{field: value})))
		}
		want := intersect(singles[0], singles[1])
		got := ids(FilterFields(testPicks(), pair))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FilterFields(%v) is not the intersection (-want +got):\n%s", pair, diff)
		}
	}
}

// intersect keeps the elements of a that are also in b, in a's order.
func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	result := []string{}
	for _, s := range a {
		if inB[s] {
			result = append(result, s)
		}
	}
	return result
}

func TestDecade(t *testing.T) {
	assert.Equal(t, 1990, Decade(1998))
	assert.Equal(t, 2020, Decade(2020))
	assert.Equal(t, 2020, Decade(2029))
	assert.Equal(t, 2030, Decade(2030))
}
