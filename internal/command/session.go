package command

import (
	"strings"
)

const (
	MessageClearSuccess = "Planner has been cleared!"
	MessageUndoSuccess  = "Undo success!"
	MessageRedoSuccess  = "Redo success!"
	MessageUndoFailure  = "No more commands to undo!"
	MessageRedoFailure  = "No more commands to redo!"
	MessageHelp         = "Opened help window."
	MessageExit         = "Exiting planner as requested ..."
)

// ClearCommand empties every list and the itinerary.
type ClearCommand struct{}

func NewClearCommand() *ClearCommand { return &ClearCommand{} }

func (c *ClearCommand) Word() (string, SecondWord) { return WordClear, "" }
func (c *ClearCommand) Kind() Kind                 { return KindMutating }

func (c *ClearCommand) Execute(m Model) (*Result, error) {
	m.Clear()
	return NewResult(MessageClearSuccess, FocusAgenda), nil
}

func (c *ClearCommand) Equal(other Command) bool {
	_, ok := other.(*ClearCommand)
	return ok
}

// UndoCommand restores the state before the last committed change.
type UndoCommand struct{}

func NewUndoCommand() *UndoCommand { return &UndoCommand{} }

func (c *UndoCommand) Word() (string, SecondWord) { return WordUndo, "" }
func (c *UndoCommand) Kind() Kind                 { return KindHistory }

func (c *UndoCommand) Execute(m Model) (*Result, error) {
	if err := m.Undo(); err != nil {
		return nil, newError(err, MessageUndoFailure)
	}
	return NewResult(MessageUndoSuccess, FocusAgenda), nil
}

func (c *UndoCommand) Equal(other Command) bool {
	_, ok := other.(*UndoCommand)
	return ok
}

// RedoCommand reapplies the last undone change.
type RedoCommand struct{}

func NewRedoCommand() *RedoCommand { return &RedoCommand{} }

func (c *RedoCommand) Word() (string, SecondWord) { return WordRedo, "" }
func (c *RedoCommand) Kind() Kind                 { return KindHistory }

func (c *RedoCommand) Execute(m Model) (*Result, error) {
	if err := m.Redo(); err != nil {
		return nil, newError(err, MessageRedoFailure)
	}
	return NewResult(MessageRedoSuccess, FocusAgenda), nil
}

func (c *RedoCommand) Equal(other Command) bool {
	_, ok := other.(*RedoCommand)
	return ok
}

// HelpUsage describes the "help" command word.
var HelpUsage = WordHelp + ": Shows program usage instructions.\n" +
	"Example: " + WordHelp

// HelpCommand shows the usage of every command word.
type HelpCommand struct{}

func NewHelpCommand() *HelpCommand { return &HelpCommand{} }

func (c *HelpCommand) Word() (string, SecondWord) { return WordHelp, "" }
func (c *HelpCommand) Kind() Kind                 { return KindReadOnly }

func (c *HelpCommand) Execute(Model) (*Result, error) {
	return NewResult(MessageHelp, FocusHelp), nil
}

func (c *HelpCommand) Equal(other Command) bool {
	_, ok := other.(*HelpCommand)
	return ok
}

// HelpText joins every usage string in display order.
func HelpText() string {
	return strings.Join([]string{
		AddContactUsage,
		AddActivityUsage,
		AddAccommodationUsage,
		AddDayUsage,
		DeleteUsage,
		ScheduleUsage,
		UnscheduleUsage,
		ListUsage,
		FindUsage,
		WordClear + ": Removes every contact, activity, accommodation and day.",
		WordUndo + ": Reverts the last change.",
		WordRedo + ": Reapplies the last reverted change.",
		HelpUsage,
		WordExit + ": Leaves the shell.",
	}, "\n\n")
}

// ExitCommand ends the interactive session.
type ExitCommand struct{}

func NewExitCommand() *ExitCommand { return &ExitCommand{} }

func (c *ExitCommand) Word() (string, SecondWord) { return WordExit, "" }
func (c *ExitCommand) Kind() Kind                 { return KindReadOnly }

func (c *ExitCommand) Execute(Model) (*Result, error) {
	r := NewResult(MessageExit)
	r.Exit = true
	return r, nil
}

func (c *ExitCommand) Equal(other Command) bool {
	_, ok := other.(*ExitCommand)
	return ok
}
