// Package command holds the validated instructions produced by the parser and
// their execution against the planner model.
package command

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
)

// Command words of the input language.
const (
	WordAdd        = "add"
	WordDelete     = "delete"
	WordSchedule   = "schedule"
	WordUnschedule = "unschedule"
	WordList       = "list"
	WordFind       = "find"
	WordClear      = "clear"
	WordUndo       = "undo"
	WordRedo       = "redo"
	WordHelp       = "help"
	WordExit       = "exit"
)

// SecondWord selects the entity kind a command word acts on.
type SecondWord string

const (
	SecondContact       SecondWord = "contact"
	SecondActivity      SecondWord = "activity"
	SecondAccommodation SecondWord = "accommodation"
	SecondDay           SecondWord = "day"
	SecondTime          SecondWord = "time"
)

// Kind tells the caller what a command does to the model.
type Kind int

const (
	// KindReadOnly commands leave the model contents unchanged.
	KindReadOnly Kind = iota
	// KindMutating commands change the model and must be committed to history.
	KindMutating
	// KindHistory commands move through history; the model changes but nothing is committed.
	KindHistory
)

// Command is a validated instruction. It is created once by the parser and
// executed once.
type Command interface {
	// Execute runs the command. On error the model is left unchanged.
	Execute(m Model) (*Result, error)
	// Word returns the command word and, for two-word commands, the second word.
	Word() (string, SecondWord)
	Kind() Kind
	// Equal reports value equality with another command of the same concrete type.
	Equal(other Command) bool
}

// Messages shared by several commands.
const (
	MessageInvalidIndex = "The index provided is invalid"
)

var (
	// ErrInvalidIndex is returned when an index is outside the shown list.
	ErrInvalidIndex = errors.New("index out of range")
	// ErrDuplicateEntity is returned when an equal entity already exists.
	ErrDuplicateEntity = errors.New("duplicate entity")
)

// Error is a failure during Execute. Message is shown to the user as is.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Err: err}
}

func invalidIndex() *Error {
	return &Error{Message: MessageInvalidIndex, Err: ErrInvalidIndex}
}

func entityAt[T any](items []T, idx domain.Index) (T, error) {
	var zero T
	if idx.ZeroBased() >= len(items) {
		return zero, invalidIndex()
	}
	return items[idx.ZeroBased()], nil
}
