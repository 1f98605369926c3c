// Package parser turns a line of user input into a command.Command.
//
// Parsing is two-level: the first word selects a verb, and verbs that act on
// several entity kinds route on a second word through a fixed lookup table.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/trip-planner/internal/domain"
)

// Messages shown for malformed input.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
)

// MessageInvalidDayCount is shown when the day count is not a number in [0, domain.MaxDays].
var MessageInvalidDayCount = "Number of days should be a non-negative integer no greater than " +
	strconv.Itoa(domain.MaxDays) + "."

var (
	// ErrInvalidFormat is wrapped by every ParseError caused by structure:
	// an unknown second word, a missing prefix or stray text.
	ErrInvalidFormat = errors.New("invalid command format")
	// ErrUnknownCommand is wrapped when the first word is not a command word.
	ErrUnknownCommand = errors.New("unknown command")
)

// ParseError is a rejected input line. Message is shown to the user as is.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalidFormat(usage string) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(MessageInvalidCommandFormat, usage),
		Err:     ErrInvalidFormat,
	}
}

func unknownCommand() *ParseError {
	return &ParseError{Message: MessageUnknownCommand, Err: ErrUnknownCommand}
}

// constraints maps domain validation errors to the sentence shown to the user.
var constraints = []error{
	domain.ErrInvalidName,
	domain.ErrInvalidPhone,
	domain.ErrInvalidEmail,
	domain.ErrInvalidAddress,
	domain.ErrInvalidTag,
	domain.ErrInvalidDuration,
	domain.ErrNotInIntervalsOf30Min,
	domain.ErrInvalidTime,
	domain.ErrPastEndOfDay,
	domain.ErrInvalidIndex,
}

// invalidValue wraps a field conversion failure.
func invalidValue(err error) *ParseError {
	if errors.Is(err, domain.ErrInvalidIndex) {
		return &ParseError{Message: MessageInvalidIndex, Err: err}
	}
	for _, c := range constraints {
		if errors.Is(err, c) {
			return &ParseError{Message: sentence(c.Error()), Err: err}
		}
	}
	return &ParseError{Message: sentence(err.Error()), Err: err}
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
