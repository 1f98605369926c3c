package command

import (
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
)

const (
	MessageAddDaySuccess = "%d day(s) added"
	MessageTooManyDays   = "The itinerary cannot be longer than %d days"
)

// AddDayUsage describes "add day".
var AddDayUsage = WordAdd + " " + string(SecondDay) + ": Adds the number of days specified to the itinerary. " +
	"Parameters: NUMBER_OF_DAYS\n" +
	"Example: " + WordAdd + " " + string(SecondDay) + " 3"

// AddDayCommand appends empty days to the itinerary.
type AddDayCommand struct {
	count int
}

// NewAddDayCommand creates a command adding count days. count must not be negative.
func NewAddDayCommand(count int) *AddDayCommand {
	return &AddDayCommand{count: count}
}

// Count returns the number of days to add.
func (c *AddDayCommand) Count() int {
	return c.count
}

func (c *AddDayCommand) Word() (string, SecondWord) { return WordAdd, SecondDay }
func (c *AddDayCommand) Kind() Kind                 { return KindMutating }

func (c *AddDayCommand) Execute(m Model) (*Result, error) {
	if c.count < 0 || len(m.Days())+c.count > domain.MaxDays {
		return nil, newError(domain.ErrTooManyDays, MessageTooManyDays, domain.MaxDays)
	}
	m.AddDays(c.count)
	return NewResult(fmt.Sprintf(MessageAddDaySuccess, c.count), FocusAgenda), nil
}

func (c *AddDayCommand) Equal(other Command) bool {
	o, ok := other.(*AddDayCommand)
	return ok && c.count == o.count
}
