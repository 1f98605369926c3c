package domain

import (
	"strings"
)

// Contact is a person reachable during the trip.
type Contact struct {
	Name    string   `yaml:"name"`
	Phone   string   `yaml:"phone"`
	Email   string   `yaml:"email"`
	Address string   `yaml:"address"`
	Tags    []string `yaml:"tags,omitempty"`
}

// NewContact validates every field and returns a contact with normalized tags.
func NewContact(name, phone, email, address string, tags []string) (Contact, error) {
	c := Contact{
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
		Tags:    tags,
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	c.Tags, _ = NormalizeTags(c.Tags)
	return c, nil
}

// Validate validates the contact and returns an error if invalid.
func (c Contact) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if err := ValidatePhone(c.Phone); err != nil {
		return err
	}
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	if err := ValidateAddress(c.Address); err != nil {
		return err
	}
	_, err := NormalizeTags(c.Tags)
	return err
}

// Equal reports value equality. Tags compare as a set.
func (c Contact) Equal(other Contact) bool {
	a, _ := NormalizeTags(c.Tags)
	b, _ := NormalizeTags(other.Tags)
	return c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		c.Address == other.Address &&
		sameTags(a, b)
}

// DisplayName returns the name used in lists and keyword search.
func (c Contact) DisplayName() string {
	return c.Name
}

func (c Contact) String() string {
	return c.Name +
		" Phone: " + c.Phone +
		" Email: " + c.Email +
		" Address: " + c.Address +
		" Tags: " + formatTags(c.Tags)
}
