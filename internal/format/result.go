package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/trip-planner/internal/colors"
	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/domain"
)

// View is the read side of the planner that results are rendered against.
type View interface {
	Contacts() []domain.Contact
	Activities() []domain.Activity
	Accommodations() []domain.Accommodation
	Days() []domain.Day
}

// Panel renders one focus panel.
func Panel(w io.Writer, v View, res *command.Result, f command.UIFocus) error {
	switch f {
	case command.FocusContact:
		return Contacts(w, v.Contacts())
	case command.FocusActivity:
		return Activities(w, v.Activities())
	case command.FocusAccommodation:
		return Accommodations(w, v.Accommodations())
	case command.FocusAgenda:
		return Agenda(w, v.Days())
	case command.FocusHelp:
		_, err := fmt.Fprintln(w, command.HelpText())
		return err
	case command.FocusInfo:
		if res == nil || res.Info == nil {
			return nil
		}
		_, err := fmt.Fprintf(w, "%s %s\n", colors.Header("Details"), res.Info.Description)
		return err
	default:
		return fmt.Errorf("format: unknown focus %d", int(f))
	}
}

// Result writes every panel the result focuses, in focus order. The result
// message itself is reported separately through the error handler.
func Result(w io.Writer, v View, res *command.Result) error {
	if res == nil {
		return nil
	}
	for _, f := range res.Focus {
		if err := Panel(w, v, res, f); err != nil {
			return err
		}
	}
	return nil
}
