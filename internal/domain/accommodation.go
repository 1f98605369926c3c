package domain

import "strings"

// Accommodation is a place to stay during the trip.
type Accommodation struct {
	Name    string   `yaml:"name"`
	Address string   `yaml:"address"`
	Phone   string   `yaml:"phone,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
}

// NewAccommodation validates every field and returns an accommodation with normalized tags.
func NewAccommodation(name, address, phone string, tags []string) (Accommodation, error) {
	a := Accommodation{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Phone:   strings.TrimSpace(phone),
		Tags:    tags,
	}
	if err := a.Validate(); err != nil {
		return Accommodation{}, err
	}
	a.Tags, _ = NormalizeTags(a.Tags)
	return a, nil
}

// Validate validates the accommodation and returns an error if invalid.
func (a Accommodation) Validate() error {
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
	_, err := NormalizeTags(a.Tags)
	return err
}

// Equal reports value equality. Tags compare as a set.
func (a Accommodation) Equal(other Accommodation) bool {
	x, _ := NormalizeTags(a.Tags)
	y, _ := NormalizeTags(other.Tags)
	return a.Name == other.Name &&
		a.Address == other.Address &&
		a.Phone == other.Phone &&
		sameTags(x, y)
}

// DisplayName returns the name used in lists and keyword search.
func (a Accommodation) DisplayName() string {
	return a.Name
}

func (a Accommodation) String() string {
	s := a.Name + " Address: " + a.Address
	if a.Phone != "" {
		s += " Phone: " + a.Phone
	}
	return s + " Tags: " + formatTags(a.Tags)
}
