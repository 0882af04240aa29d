// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit     Action = "quit"
	ActionNextPage Action = "next_page"
	ActionPrevPage Action = "prev_page"
	ActionRetry    Action = "retry"

	// Page switching
	ActionPagePicks     Action = "page_picks"
	ActionPageAnalytics Action = "page_analytics"
	ActionPageAbout     Action = "page_about"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Query actions
	ActionSearch          Action = "search"
	ActionCycleSort       Action = "cycle_sort"
	ActionToggleDirection Action = "toggle_direction"
	ActionToggleGroup     Action = "toggle_group"
	ActionCycleDecade     Action = "cycle_decade"
	ActionCycleYear       Action = "cycle_year"
	ActionCyclePicker     Action = "cycle_picker"
	ActionCycleArtist     Action = "cycle_artist"
	ActionClearFilters    Action = "clear_filters"
)
