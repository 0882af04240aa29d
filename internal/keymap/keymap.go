package keymap

import "strings"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "picks"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionNextPage, []string{"tab"}, "Next page", "global"},
	{ActionPrevPage, []string{"shift+tab"}, "Previous page", "global"},
	{ActionPagePicks, []string{"f1"}, "Picks page", "global"},
	{ActionPageAnalytics, []string{"f2"}, "Analytics page", "global"},
	{ActionPageAbout, []string{"f3"}, "About page", "global"},

	// Shown only when the dataset failed to load
	{ActionRetry, []string{"r"}, "Retry loading", "error"},

	// Picks list
	{ActionMoveDown, []string{"j", "down"}, "Move down", "picks"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "picks"},
	{ActionJumpStart, []string{"home"}, "First pick", "picks"},
	{ActionJumpEnd, []string{"end"}, "Last pick", "picks"},
	{ActionPageDown, []string{"ctrl+d"}, "Half page down", "picks"},
	{ActionPageUp, []string{"ctrl+u"}, "Half page up", "picks"},
	{ActionSearch, []string{"/"}, "Search", "picks"},
	{ActionCycleSort, []string{"s"}, "Sort", "picks"},
	{ActionToggleDirection, []string{"r"}, "Reverse", "picks"},
	{ActionToggleGroup, []string{"g"}, "Group by pick year", "picks"},
	{ActionCycleDecade, []string{"d"}, "Decade filter", "picks"},
	{ActionCycleYear, []string{"y"}, "Year filter", "picks"},
	{ActionCyclePicker, []string{"p"}, "Picker filter", "picks"},
	{ActionCycleArtist, []string{"a"}, "Artist filter", "picks"},
	{ActionClearFilters, []string{"x"}, "Clear", "picks"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Hint renders the first key and a short description of each action, for
// one-line help footers: "/ search  s sort".
func Hint(bindings []Binding, actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		for _, b := range bindings {
			if b.Action == action && len(b.Keys) > 0 {
				parts = append(parts, b.Keys[0]+" "+strings.ToLower(b.Description))
				break
			}
		}
	}
	return strings.Join(parts, "  ")
}
