package command

import (
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
)

const (
	MessageDeleteContactSuccess       = "Deleted contact: %s"
	MessageDeleteActivitySuccess      = "Deleted activity: %s"
	MessageDeleteAccommodationSuccess = "Deleted accommodation: %s"
	MessageDeleteDaySuccess           = "Deleted day %d"
)

// DeleteUsage describes the "delete" command word.
var DeleteUsage = WordDelete + ": Deletes the entry at INDEX in the shown list.\n" +
	"Parameters: contact|activity|accommodation|day INDEX\n" +
	"Example: " + WordDelete + " " + string(SecondActivity) + " 2"

// DeleteCommand removes one contact, activity, accommodation or day.
type DeleteCommand struct {
	target SecondWord
	index  domain.Index
}

// NewDeleteCommand creates a delete command. target must be contact, activity, accommodation or day.
func NewDeleteCommand(target SecondWord, idx domain.Index) *DeleteCommand {
	return &DeleteCommand{target: target, index: idx}
}

func (c *DeleteCommand) Word() (string, SecondWord) { return WordDelete, c.target }
func (c *DeleteCommand) Kind() Kind                 { return KindMutating }

func (c *DeleteCommand) Execute(m Model) (*Result, error) {
	switch c.target {
	case SecondContact:
		contact, err := entityAt(m.Contacts(), c.index)
		if err != nil {
			return nil, err
		}
		if err := m.DeleteContact(contact); err != nil {
			return nil, &Error{Message: MessageInvalidIndex, Err: err}
		}
		return NewResult(fmt.Sprintf(MessageDeleteContactSuccess, contact), FocusContact).
			WithInfo(contact, c.index, contact.String()), nil

	case SecondActivity:
		activity, err := entityAt(m.Activities(), c.index)
		if err != nil {
			return nil, err
		}
		if err := m.DeleteActivity(activity); err != nil {
			return nil, &Error{Message: MessageInvalidIndex, Err: err}
		}
		return NewResult(fmt.Sprintf(MessageDeleteActivitySuccess, activity), FocusActivity, FocusAgenda).
			WithInfo(activity, c.index, activity.String()), nil

	case SecondAccommodation:
		accommodation, err := entityAt(m.Accommodations(), c.index)
		if err != nil {
			return nil, err
		}
		if err := m.DeleteAccommodation(accommodation); err != nil {
			return nil, &Error{Message: MessageInvalidIndex, Err: err}
		}
		return NewResult(fmt.Sprintf(MessageDeleteAccommodationSuccess, accommodation), FocusAccommodation).
			WithInfo(accommodation, c.index, accommodation.String()), nil

	case SecondDay:
		if err := m.DeleteDay(c.index); err != nil {
			return nil, &Error{Message: MessageInvalidIndex, Err: err}
		}
		return NewResult(fmt.Sprintf(MessageDeleteDaySuccess, c.index.OneBased()), FocusAgenda), nil

	default:
		return nil, fmt.Errorf("delete: unsupported target %q", c.target)
	}
}

func (c *DeleteCommand) Equal(other Command) bool {
	o, ok := other.(*DeleteCommand)
	return ok && c.target == o.target && c.index == o.index
}
