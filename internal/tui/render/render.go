// Package render draws the planner shell panes with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cristianoliveira/trip-planner/internal/errors"
)

const (
	colorAccent  = lipgloss.Color("12")
	colorMuted   = lipgloss.Color("8")
	colorError   = lipgloss.Color("9")
	colorWarning = lipgloss.Color("11")
	colorSuccess = lipgloss.Color("10")
	colorInfo    = lipgloss.Color("14")
)

// Tab is one page of the info pane.
type Tab int

const (
	TabContacts Tab = iota
	TabActivities
	TabAccommodations
	TabHelp
	TabInfo
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabContacts, TabActivities, TabAccommodations, TabHelp, TabInfo}

func (t Tab) String() string {
	switch t {
	case TabContacts:
		return "Contacts"
	case TabActivities:
		return "Activities"
	case TabAccommodations:
		return "Accommodations"
	case TabHelp:
		return "Help"
	case TabInfo:
		return "Info"
	default:
		return "?"
	}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)]
}

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
)

// TabBar renders the tab titles with active highlighted.
func TabBar(active Tab) string {
	parts := make([]string, 0, len(Tabs))
	for _, t := range Tabs {
		style := inactiveTabStyle
		if t == active {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Pane renders body in a bordered box of the given outer size. Body lines
// beyond the box are cut.
func Pane(title, body string, width, height int, highlighted bool) string {
	border := colorMuted
	if highlighted {
		border = colorAccent
	}
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)

	content := clip(title+"\n"+body, innerW, innerH)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(innerW).
		Height(innerH).
		Render(content)
}

// StatusLine renders the latest handler message. An empty message renders a
// key hint instead.
func StatusLine(msg errors.Message, ok bool, width int) string {
	if !ok || msg.Text == "" {
		return lipgloss.NewStyle().Foreground(colorMuted).
			Render(clip("enter: run  tab/shift+tab: switch tab  esc/ctrl+c: quit", width, 1))
	}
	style := lipgloss.NewStyle()
	switch msg.Type {
	case errors.MessageTypeError:
		style = style.Foreground(colorError)
	case errors.MessageTypeWarning:
		style = style.Foreground(colorWarning)
	case errors.MessageTypeSuccess:
		style = style.Foreground(colorSuccess)
	default:
		style = style.Foreground(colorInfo)
	}
	// Parse errors carry their usage on following lines; the status line shows the first.
	first, _, _ := strings.Cut(msg.Text, "\n")
	return style.Render(clip(strings.TrimSpace(first), width, 1))
}

func clip(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}
