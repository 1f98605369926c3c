package command

import (
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/syntax"
)

const (
	MessageAddActivitySuccess      = "New activity added: %s"
	MessageDuplicateActivity       = "This activity already exists in the activity list"
	MessageAddAccommodationSuccess = "New accommodation added: %s"
	MessageDuplicateAccommodation  = "This accommodation already exists in the accommodation list"
)

// AddActivityUsage describes "add activity".
var AddActivityUsage = WordAdd + " " + string(SecondActivity) + ": Adds an activity to the activity list. " +
	"Parameters: " +
	syntax.PrefixName.String() + "NAME " +
	syntax.PrefixAddress.String() + "ADDRESS " +
	"[" + syntax.PrefixDuration.String() + "MINUTES] " +
	"[" + syntax.PrefixPhone.String() + "PHONE] " +
	"[" + syntax.PrefixTag.String() + "TAG]...\n" +
	"Example: " + WordAdd + " " + string(SecondActivity) + " " +
	syntax.PrefixName.String() + "Night Safari " +
	syntax.PrefixAddress.String() + "80 Mandai Lake Rd " +
	syntax.PrefixDuration.String() + "150 " +
	syntax.PrefixTag.String() + "zoo"

// AddAccommodationUsage describes "add accommodation".
var AddAccommodationUsage = WordAdd + " " + string(SecondAccommodation) + ": Adds an accommodation to the accommodation list. " +
	"Parameters: " +
	syntax.PrefixName.String() + "NAME " +
	syntax.PrefixAddress.String() + "ADDRESS " +
	"[" + syntax.PrefixPhone.String() + "PHONE] " +
	"[" + syntax.PrefixTag.String() + "TAG]...\n" +
	"Example: " + WordAdd + " " + string(SecondAccommodation) + " " +
	syntax.PrefixName.String() + "Marina Bay Sands " +
	syntax.PrefixAddress.String() + "10 Bayfront Ave " +
	syntax.PrefixPhone.String() + "66888868"

// AddActivityCommand appends an activity to the activity list.
type AddActivityCommand struct {
	activity domain.Activity
}

func NewAddActivityCommand(activity domain.Activity) *AddActivityCommand {
	return &AddActivityCommand{activity: activity}
}

func (c *AddActivityCommand) Word() (string, SecondWord) { return WordAdd, SecondActivity }
func (c *AddActivityCommand) Kind() Kind                 { return KindMutating }

func (c *AddActivityCommand) Execute(m Model) (*Result, error) {
	if m.HasActivity(c.activity) {
		return nil, newError(ErrDuplicateEntity, MessageDuplicateActivity)
	}
	m.AddActivity(c.activity)

	idx, ok := m.ActivityIndex(c.activity)
	if !ok {
		return nil, fmt.Errorf("add activity: %s missing after insert", c.activity.Name)
	}
	return NewResult(fmt.Sprintf(MessageAddActivitySuccess, c.activity), FocusActivity, FocusInfo).
		WithInfo(c.activity, idx, c.activity.String()), nil
}

func (c *AddActivityCommand) Equal(other Command) bool {
	o, ok := other.(*AddActivityCommand)
	return ok && c.activity.Equal(o.activity)
}

// AddAccommodationCommand appends an accommodation to the accommodation list.
type AddAccommodationCommand struct {
	accommodation domain.Accommodation
}

func NewAddAccommodationCommand(accommodation domain.Accommodation) *AddAccommodationCommand {
	return &AddAccommodationCommand{accommodation: accommodation}
}

func (c *AddAccommodationCommand) Word() (string, SecondWord) { return WordAdd, SecondAccommodation }
func (c *AddAccommodationCommand) Kind() Kind                 { return KindMutating }

func (c *AddAccommodationCommand) Execute(m Model) (*Result, error) {
	if m.HasAccommodation(c.accommodation) {
		return nil, newError(ErrDuplicateEntity, MessageDuplicateAccommodation)
	}
	m.AddAccommodation(c.accommodation)

	idx, ok := m.AccommodationIndex(c.accommodation)
	if !ok {
		return nil, fmt.Errorf("add accommodation: %s missing after insert", c.accommodation.Name)
	}
	return NewResult(fmt.Sprintf(MessageAddAccommodationSuccess, c.accommodation), FocusAccommodation, FocusInfo).
		WithInfo(c.accommodation, idx, c.accommodation.String()), nil
}

func (c *AddAccommodationCommand) Equal(other Command) bool {
	o, ok := other.(*AddAccommodationCommand)
	return ok && c.accommodation.Equal(o.accommodation)
}
