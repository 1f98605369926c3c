// Package state holds the bubbletea model of the planner shell.
package state

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/core"
	"github.com/cristianoliveira/trip-planner/internal/errors"
	"github.com/cristianoliveira/trip-planner/internal/format"
	"github.com/cristianoliveira/trip-planner/internal/settings"
	"github.com/cristianoliveira/trip-planner/internal/tui/render"
)

const (
	defaultWidth        = 100
	defaultHeight       = 30
	inputLines          = 1
	statusLines         = 1
	tabBarLines         = 1
	statusClearDuration = 5 * time.Second
	prompt              = "> "
)

// clearStatusMsg clears the status line unless a newer message replaced it.
type clearStatusMsg struct {
	seq int
}

// Model is the shell: a command prompt, an agenda pane and a tabbed info pane.
type Model struct {
	core         *core.Core
	input        textinput.Model
	errorHandler *errors.TUIHandler

	status    errors.Message
	hasStatus bool
	statusSeq int

	activeTab       render.Tab
	agendaHighlight bool
	lastResult      *command.Result

	agendaWidthPercent int

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithSettings restores the tab and layout saved by a previous session.
func WithSettings(s *settings.Settings) Option {
	return func(m *Model) {
		if s == nil {
			return
		}
		m.activeTab = tabFromSetting(s.ActiveTab)
		if s.AgendaWidthPercent > 0 {
			m.agendaWidthPercent = s.AgendaWidthPercent
		}
	}
}

// NewModel creates a shell running lines through c.
func NewModel(c *core.Core, opts ...Option) *Model {
	if c == nil {
		panic("state.NewModel: core must not be nil")
	}
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "type a command, e.g. help"
	input.Focus()

	m := &Model{
		core:               c,
		input:              input,
		activeTab:          render.TabHelp,
		agendaWidthPercent: settings.DefaultAgendaWidthPercent,
		width:              defaultWidth,
		height:             defaultHeight,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg
		m.hasStatus = msg.Text != ""
	})
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-len(prompt)-1, 1)
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.hasStatus = false
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyTab:
		m.activeTab = m.activeTab.Next()
		return m, nil
	case tea.KeyShiftTab:
		m.activeTab = m.activeTab.Prev()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.input.SetValue("")

	res, err := m.core.Execute(context.Background(), line)
	errors.Report(m.errorHandler, res, err)
	if res != nil {
		m.applyResult(res)
		if res.Exit {
			return m, tea.Quit
		}
	}

	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusClearDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// applyResult switches to the first tab the result focuses and highlights
// the agenda when it is focused.
func (m *Model) applyResult(res *command.Result) {
	m.lastResult = res
	m.agendaHighlight = res.HasFocus(command.FocusAgenda)
	for _, f := range res.Focus {
		if tab, ok := tabFor(f); ok {
			m.activeTab = tab
			return
		}
	}
}

func tabFor(f command.UIFocus) (render.Tab, bool) {
	switch f {
	case command.FocusContact:
		return render.TabContacts, true
	case command.FocusActivity:
		return render.TabActivities, true
	case command.FocusAccommodation:
		return render.TabAccommodations, true
	case command.FocusHelp:
		return render.TabHelp, true
	case command.FocusInfo:
		return render.TabInfo, true
	default:
		return 0, false
	}
}

var tabSettings = map[render.Tab]settings.Tab{
	render.TabContacts:       settings.TabContacts,
	render.TabActivities:     settings.TabActivities,
	render.TabAccommodations: settings.TabAccommodations,
	render.TabHelp:           settings.TabHelp,
	render.TabInfo:           settings.TabInfo,
}

func tabFromSetting(t settings.Tab) render.Tab {
	t = settings.NormalizeTab(string(t))
	for tab, name := range tabSettings {
		if name == t {
			return tab
		}
	}
	return render.TabHelp
}

// View renders the model.
func (m *Model) View() string {
	paneHeight := max(m.height-inputLines-statusLines-tabBarLines, 3)
	agendaWidth := max(m.width*m.agendaWidthPercent/100, 10)
	infoWidth := max(m.width-agendaWidth, 10)

	var agenda strings.Builder
	_ = format.Agenda(&agenda, m.core.Model().Days())
	agendaPane := render.Pane("Itinerary", agenda.String(), agendaWidth, paneHeight+tabBarLines, m.agendaHighlight)

	infoPane := lipgloss.JoinVertical(lipgloss.Left,
		render.TabBar(m.activeTab),
		render.Pane(m.activeTab.String(), m.tabBody(), infoWidth, paneHeight, false),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, agendaPane, infoPane),
		m.input.View(),
		render.StatusLine(m.status, m.hasStatus, m.width),
	)
}

func (m *Model) tabBody() string {
	planner := m.core.Model()
	var b strings.Builder
	switch m.activeTab {
	case render.TabContacts:
		_ = format.Contacts(&b, planner.Contacts())
	case render.TabActivities:
		_ = format.Activities(&b, planner.Activities())
	case render.TabAccommodations:
		_ = format.Accommodations(&b, planner.Accommodations())
	case render.TabHelp:
		b.WriteString(command.HelpText())
	case render.TabInfo:
		if m.lastResult != nil {
			b.WriteString(m.lastResult.Message)
			if m.lastResult.Info != nil {
				b.WriteString("\n\n" + m.lastResult.Info.Description)
			}
		}
	}
	return b.String()
}

// ActiveTab returns the tab shown in the info pane.
func (m *Model) ActiveTab() render.Tab {
	return m.activeTab
}

// AgendaHighlighted reports whether the last result focused the agenda.
func (m *Model) AgendaHighlighted() bool {
	return m.agendaHighlight
}

// Status returns the message shown in the status line.
func (m *Model) Status() (errors.Message, bool) {
	return m.status, m.hasStatus
}

// Settings returns the preferences to persist for the next session.
func (m *Model) Settings() *settings.Settings {
	return &settings.Settings{
		ActiveTab:          tabSettings[m.activeTab],
		AgendaWidthPercent: m.agendaWidthPercent,
	}
}

// ErrorHandler returns the handler that feeds the status line.
func (m *Model) ErrorHandler() *errors.TUIHandler {
	return m.errorHandler
}
