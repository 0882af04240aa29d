package query

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/aotw/internal/album"
)

func TestEvaluate_DecadeExample(t *testing.T) {
	records := []album.Record{
		{PickNumber: 1, Artist: "Air", Title: "Moon Safari", Year: 1998, PickedAt: "2025-01-05"},
		{PickNumber: 2, Artist: "Boards of Canada", Title: "Geogaddi", Year: 2002, PickedAt: "2025-06-10"},
	}
	q := Query{
		Filters:   map[Field]string{FieldDecade: "1990"},
		SortKey:   SortByYear,
		Direction: Asc,
	}

	got := Evaluate(records, q)
	assert.Equal(t, []album.Record{records[0]}, got)
}

func TestEvaluate_StagesCompose(t *testing.T) {
	q := Query{
		SearchTerm: "a",
		Filters:    map[Field]string{FieldDecade: "2000"},
		SortKey:    SortByArtist,
		Direction:  Desc,
	}

	// Every pick but g7 contains an "a"; the decade keeps 2000-2009.
	got := Evaluate(testPicks(), q)
	assert.Equal(t, []string{"e5", "d4", "b2"}, ids(got))
}

func TestEvaluate_Idempotent(t *testing.T) {
	queries := []Query{
		IdentityQuery(),
		{SearchTerm: "o"},
		{Filters: map[Field]string{FieldPicker: "sam"}},
		{SortKey: SortByTitle, Direction: Desc},
		{SearchTerm: "e", SortKey: SortByYear},
	}

	for _, q := range queries {
		once := Evaluate(testPicks(), q)
		twice := Evaluate(once, IdentityQuery())
		if q.SortKey == SortByPickNumber && q.Direction == Asc {
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("Evaluate not idempotent for %+v (-once +twice):\n%s", q, diff)
			}
		}
		assert.ElementsMatch(t, ids(once), ids(twice))

		if q.Direction == Asc {
			again := Evaluate(once, q)
			assert.Equal(t, ids(once), ids(again), "re-applying %+v changed the result", q)
		}
	}
}

func TestEvaluate_IdentityKeepsPickOrder(t *testing.T) {
	input := testPicks()
	slices.Reverse(input)

	got := Evaluate(input, IdentityQuery())
	assert.Equal(t, []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}, ids(got))
}

func TestEvaluate_EmptyInput(t *testing.T) {
	got := Evaluate(nil, Query{SearchTerm: "air", SortKey: SortByArtist})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	buckets := Arrange([]album.Record{}, Query{GroupBy: GroupByPickYear})
	assert.Empty(t, buckets)
}

func TestEvaluate_PreservesRecords(t *testing.T) {
	input := testPicks()
	input[0].ArtworkURL = "https://i.scdn.co/image/air"
	input[0].AppleMusicURL = "https://music.apple.com/album/1"
	before := slices.Clone(input)

	got := Evaluate(input, Query{SearchTerm: "moon"})
	require.Len(t, got, 1)
	assert.Equal(t, before[0], got[0])
	assert.Equal(t, before, input)
}

func TestArrange(t *testing.T) {
	t.Run("ungrouped", func(t *testing.T) {
		buckets := Arrange(testPicks(), Query{SortKey: SortByYear})
		require.Len(t, buckets, 1)
		assert.Empty(t, buckets[0].Key)
		assert.Equal(t, ids(Evaluate(testPicks(), Query{SortKey: SortByYear})), ids(buckets[0].Records))
	})

	t.Run("by pick year keeps sort within buckets", func(t *testing.T) {
		q := Query{SortKey: SortByArtist, Direction: Desc, GroupBy: GroupByPickYear}
		buckets := Arrange(testPicks(), q)

		assert.Equal(t, []string{"2026", "2025", "2024", UnknownBucket}, bucketKeys(buckets))
		assert.Equal(t, []string{"g7", "d4"}, ids(buckets[0].Records))
		assert.Equal(t, []string{"f6", "b2", "a1"}, ids(buckets[1].Records))
	})
}
