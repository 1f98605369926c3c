package command

import "github.com/cristianoliveira/trip-planner/internal/domain"

// UIFocus names a display panel that should be brought to attention.
type UIFocus int

const (
	FocusAgenda UIFocus = iota
	FocusAccommodation
	FocusActivity
	FocusContact
	FocusInfo
	FocusHelp
)

func (f UIFocus) String() string {
	switch f {
	case FocusAgenda:
		return "agenda"
	case FocusAccommodation:
		return "accommodation"
	case FocusActivity:
		return "activity"
	case FocusContact:
		return "contact"
	case FocusInfo:
		return "info"
	case FocusHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Information describes the entity a command changed and where it ended up.
type Information struct {
	// Entity is a domain.Contact, domain.Activity, domain.Accommodation or domain.ScheduledActivity.
	Entity any
	Index  domain.Index
	// Description is a human-readable summary of Entity.
	Description string
}

// Result is the outcome of one successful Execute call.
type Result struct {
	Message string
	Info    *Information
	Focus   []UIFocus
	// Exit asks the presentation layer to end the session.
	Exit bool
}

// NewResult creates a Result with a message and focus hints.
func NewResult(message string, focus ...UIFocus) *Result {
	return &Result{Message: message, Focus: focus}
}

// WithInfo attaches structured result information.
func (r *Result) WithInfo(entity any, idx domain.Index, description string) *Result {
	r.Info = &Information{Entity: entity, Index: idx, Description: description}
	return r
}

// HasFocus reports whether f is among the focus hints.
func (r *Result) HasFocus(f UIFocus) bool {
	for _, focus := range r.Focus {
		if focus == f {
			return true
		}
	}
	return false
}
