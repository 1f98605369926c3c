package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/cristianoliveira/trip-planner/internal/errors"
)

func TestTabNavigationWraps(t *testing.T) {
	assert.Equal(t, TabActivities, TabContacts.Next())
	assert.Equal(t, TabContacts, TabInfo.Next())
	assert.Equal(t, TabInfo, TabContacts.Prev())
	assert.Equal(t, "Accommodations", TabAccommodations.String())
}

func TestTabBarNamesEveryTab(t *testing.T) {
	bar := TabBar(TabHelp)
	for _, tab := range Tabs {
		assert.Contains(t, bar, tab.String())
	}
}

func TestPaneKeepsSize(t *testing.T) {
	body := strings.Repeat("a very long line that does not fit\n", 20)
	out := Pane("Title", body, 20, 6, true)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 20)
	}
	assert.Contains(t, out, "Title")
}

func TestStatusLineShowsFirstLine(t *testing.T) {
	msg := errors.Message{Text: "Invalid command format! \nadd: usage", Type: errors.MessageTypeError}
	out := StatusLine(msg, true, 80)
	assert.Contains(t, out, "Invalid command format!")
	assert.NotContains(t, out, "usage")
}

func TestStatusLineHintWhenEmpty(t *testing.T) {
	assert.Contains(t, StatusLine(errors.Message{}, false, 80), "esc/ctrl+c: quit")
}

func TestClipTruncatesWidthAndHeight(t *testing.T) {
	assert.Equal(t, "abc\ndef", clip("abcdef\ndefghi\nxyz", 3, 2))
}
