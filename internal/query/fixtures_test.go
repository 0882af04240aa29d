package query

import "github.com/llehouerou/aotw/internal/album"

// testPicks returns a small dataset covering the common edge cases:
// shared years, a missing year, a missing pick date and mixed-case names.
func testPicks() []album.Record {
	return []album.Record{
		{ID: "a1", PickNumber: 1, Artist: "Air", Title: "Moon Safari", Year: 1998, PickedAt: "2025-01-05", Picker: "Sam"},
		{ID: "b2", PickNumber: 2, Artist: "Boards of Canada", Title: "Geogaddi", Year: 2002, PickedAt: "2025-06-10", Picker: "alex"},
		{ID: "c3", PickNumber: 3, Artist: "Can", Title: "Tago Mago", Year: 1971, PickedAt: "2024-11-02", Picker: "Sam"},
		{ID: "d4", PickNumber: 4, Artist: "Daft Punk", Title: "Discovery", Year: 2001, PickedAt: "2026-02-01", Picker: "Alex"},
		{ID: "e5", PickNumber: 5, Artist: "Erykah Badu", Title: "Mama's Gun", Year: 2000, PickedAt: "", Picker: ""},
		{ID: "f6", PickNumber: 6, Artist: "Fishmans", Title: "Long Season", Year: 0, PickedAt: "2025-03-09", Picker: "Jo"},
		{ID: "g7", PickNumber: 7, Artist: "Geese", Title: "3D Country", Year: 2023, PickedAt: "2026-01-04", Picker: "jo"},
	}
}

func ids(records []album.Record) []string {
	result := make([]string, len(records))
	for i := range records {
		result[i] = records[i].ID
	}
	return result
}
