package settings

import "strings"

// Tab identifies the active info pane tab in the shell.
type Tab string

const (
	TabContacts       Tab = "contacts"
	TabActivities     Tab = "activities"
	TabAccommodations Tab = "accommodations"
	TabHelp           Tab = "help"
	TabInfo           Tab = "info"
)

// IsValid returns whether the tab is one of the supported values.
func (t Tab) IsValid() bool {
	switch t {
	case TabContacts, TabActivities, TabAccommodations, TabHelp, TabInfo:
		return true
	default:
		return false
	}
}

// DefaultTab returns the default tab used when value is missing or invalid.
func DefaultTab() Tab {
	return TabHelp
}

// NormalizeTab converts arbitrary persisted input to a valid tab value.
// Missing or invalid values always resolve to the default tab.
func NormalizeTab(raw string) Tab {
	tab := Tab(strings.ToLower(strings.TrimSpace(raw)))
	if tab.IsValid() {
		return tab
	}
	return DefaultTab()
}
