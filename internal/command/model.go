package command

import "github.com/cristianoliveira/trip-planner/internal/domain"

// ContactModel is the contact capability commands need.
type ContactModel interface {
	HasContact(c domain.Contact) bool
	AddContact(c domain.Contact)
	AddContactAtIndex(idx domain.Index, c domain.Contact) error
	DeleteContact(c domain.Contact) error
	// ContactIndex returns the position of c in the shown contact list.
	ContactIndex(c domain.Contact) (domain.Index, bool)
	// Contacts returns the shown, possibly filtered, contact list.
	Contacts() []domain.Contact
	FilterContacts(keep func(domain.Contact) bool)
}

// ActivityModel is the activity capability commands need.
type ActivityModel interface {
	HasActivity(a domain.Activity) bool
	AddActivity(a domain.Activity)
	// DeleteActivity removes the activity and unschedules it from every day.
	DeleteActivity(a domain.Activity) error
	ActivityIndex(a domain.Activity) (domain.Index, bool)
	Activities() []domain.Activity
	FilterActivities(keep func(domain.Activity) bool)
}

// AccommodationModel is the accommodation capability commands need.
type AccommodationModel interface {
	HasAccommodation(a domain.Accommodation) bool
	AddAccommodation(a domain.Accommodation)
	DeleteAccommodation(a domain.Accommodation) error
	AccommodationIndex(a domain.Accommodation) (domain.Index, bool)
	Accommodations() []domain.Accommodation
	FilterAccommodations(keep func(domain.Accommodation) bool)
}

// ItineraryModel is the day and schedule capability commands need.
type ItineraryModel interface {
	AddDays(n int)
	DeleteDay(idx domain.Index) error
	Days() []domain.Day
	ScheduleActivity(day domain.Index, a domain.Activity, start domain.TimeInHalfHour) (domain.ScheduledActivity, error)
	UnscheduleTime(day domain.Index, t domain.TimeInHalfHour) (domain.ScheduledActivity, error)
	UnscheduleActivity(day domain.Index, a domain.Activity) ([]domain.ScheduledActivity, error)
}

// HistoryModel steps through committed model states.
type HistoryModel interface {
	Undo() error
	Redo() error
}

// Model is everything a command may touch. It is owned by the caller;
// commands keep no reference to it after Execute returns.
type Model interface {
	ContactModel
	ActivityModel
	AccommodationModel
	ItineraryModel
	HistoryModel
	Clear()
}
