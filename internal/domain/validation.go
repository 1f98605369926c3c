package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	ErrInvalidName     = errors.New("names should only contain alphanumeric characters and spaces, and it should not be blank")
	ErrInvalidPhone    = errors.New("phone numbers should only contain digits, and it should be at least 3 digits long")
	ErrInvalidEmail    = errors.New("emails should be of the format local-part@domain")
	ErrInvalidAddress  = errors.New("addresses can take any values, and it should not be blank")
	ErrInvalidTag      = errors.New("tags names should be alphanumeric")
	ErrInvalidDuration = errors.New("duration should be a positive number of minutes in intervals of 30")
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phonePattern = regexp.MustCompile(`^\d{3,}$`)
	emailPattern = regexp.MustCompile(`^[\w+.\-]+@[\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])?(\.[\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])?)*$`)
	tagPattern   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// ValidateName checks a contact, activity or accommodation name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// ValidatePhone checks a phone number.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return nil
}

// ValidateEmail checks an email address. The last domain label must be at least two characters.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	labels := strings.Split(email[strings.LastIndex(email, "@")+1:], ".")
	if len([]rune(labels[len(labels)-1])) < 2 {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// ValidateAddress checks an address.
func ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrInvalidAddress
	}
	return nil
}

// ValidateDuration checks an activity duration in minutes.
func ValidateDuration(minutes int) error {
	if minutes <= 0 || minutes%SlotMinutes != 0 || minutes > MinutesPerDay {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, minutes)
	}
	return nil
}

// NormalizeTags validates tags and returns them sorted without duplicates.
func NormalizeTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !tagPattern.MatchString(tag) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out, nil
}

func sameTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatTags(tags []string) string {
	var b strings.Builder
	for _, tag := range tags {
		b.WriteString("[" + tag + "]")
	}
	return b.String()
}
