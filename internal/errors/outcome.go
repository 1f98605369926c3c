package errors

import (
	stderrors "errors"

	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/core"
	"github.com/cristianoliveira/trip-planner/internal/parser"
)

// Severity classifies a failed command for display.
type Severity int

const (
	// SeverityRejected is a bad input line or a failed precondition. The model is unchanged.
	SeverityRejected Severity = iota
	// SeverityUnsaved means the change happened but could not be persisted.
	SeverityUnsaved
	// SeverityInternal is anything else.
	SeverityInternal
)

// Classify returns the severity of err.
func Classify(err error) Severity {
	var pe *parser.ParseError
	var ce *command.Error
	switch {
	case stderrors.Is(err, core.ErrPersistence):
		return SeverityUnsaved
	case stderrors.As(err, &pe), stderrors.As(err, &ce):
		return SeverityRejected
	default:
		return SeverityInternal
	}
}

// Report sends the outcome of one executed line to h.
// Rejected input is an error, an unsaved change is a success followed by a
// warning, and a result without error is a success.
func Report(h ErrorHandler, res *command.Result, err error) {
	if res != nil && res.Message != "" {
		h.Success(res.Message)
	}
	if err == nil {
		return
	}
	switch Classify(err) {
	case SeverityUnsaved:
		h.Warning(err.Error())
	default:
		h.Error(err.Error())
	}
}
