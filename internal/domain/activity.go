package domain

import (
	"strconv"
	"strings"
)

// DefaultActivityDuration is used when an activity is added without a duration.
const DefaultActivityDuration = 60

// Activity is something to do during the trip. It can be scheduled on days.
type Activity struct {
	Name     string   `yaml:"name"`
	Address  string   `yaml:"address"`
	Phone    string   `yaml:"phone,omitempty"`
	Duration int      `yaml:"duration"`
	Tags     []string `yaml:"tags,omitempty"`
}

// NewActivity validates every field. A zero duration means DefaultActivityDuration.
func NewActivity(name, address, phone string, duration int, tags []string) (Activity, error) {
	if duration == 0 {
		duration = DefaultActivityDuration
	}
	a := Activity{
		Name:     strings.TrimSpace(name),
		Address:  strings.TrimSpace(address),
		Phone:    strings.TrimSpace(phone),
		Duration: duration,
		Tags:     tags,
	}
	if err := a.Validate(); err != nil {
		return Activity{}, err
	}
	a.Tags, _ = NormalizeTags(a.Tags)
	return a, nil
}

// Validate validates the activity and returns an error if invalid.
func (a Activity) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	if err := ValidateAddress(a.Address); err != nil {
		return err
	}
	if a.Phone != "" {
		if err := ValidatePhone(a.Phone); err != nil {
			return err
		}
	}
	if err := ValidateDuration(a.Duration); err != nil {
		return err
	}
	_, err := NormalizeTags(a.Tags)
	return err
}

// Equal reports value equality. Tags compare as a set.
func (a Activity) Equal(other Activity) bool {
	x, _ := NormalizeTags(a.Tags)
	y, _ := NormalizeTags(other.Tags)
	return a.Name == other.Name &&
		a.Address == other.Address &&
		a.Phone == other.Phone &&
		a.Duration == other.Duration &&
		sameTags(x, y)
}

// DisplayName returns the name used in lists and keyword search.
func (a Activity) DisplayName() string {
	return a.Name
}

func (a Activity) String() string {
	s := a.Name + " Address: " + a.Address + " Duration: " + strconv.Itoa(a.Duration) + "min"
	if a.Phone != "" {
		s += " Phone: " + a.Phone
	}
	return s + " Tags: " + formatTags(a.Tags)
}
