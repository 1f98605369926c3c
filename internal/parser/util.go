package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/syntax"
)

// ParseIndex parses a one-based index. Leading and trailing whitespace is ignored.
func ParseIndex(s string) (domain.Index, error) {
	n, ok := parseUnsigned(s)
	if !ok {
		return domain.Index{}, invalidValue(fmt.Errorf("%w: %q", domain.ErrInvalidIndex, s))
	}
	idx, err := domain.IndexFromOneBased(n)
	if err != nil {
		return domain.Index{}, invalidValue(err)
	}
	return idx, nil
}

// ParseTime parses a half-hour aligned time such as 0930 or 9:30.
func ParseTime(s string) (domain.TimeInHalfHour, error) {
	t, err := domain.ParseTimeInHalfHour(s)
	if err != nil {
		return domain.TimeInHalfHour{}, invalidValue(err)
	}
	return t, nil
}

// ParseDayCount parses a number of days between 0 and domain.MaxDays.
func ParseDayCount(s string) (int, error) {
	n, ok := parseUnsigned(s)
	if !ok || n > domain.MaxDays {
		return 0, &ParseError{Message: MessageInvalidDayCount, Err: fmt.Errorf("%w: %q", ErrInvalidFormat, s)}
	}
	return n, nil
}

// ParseDuration parses a duration in minutes.
func ParseDuration(s string) (int, error) {
	n, ok := parseUnsigned(s)
	if !ok || n == 0 {
		return 0, invalidValue(fmt.Errorf("%w: %q", domain.ErrInvalidDuration, s))
	}
	if err := domain.ValidateDuration(n); err != nil {
		return 0, invalidValue(err)
	}
	return n, nil
}

// parseUnsigned accepts only ASCII digits so that "+1" and "1e3" are rejected.
func parseUnsigned(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// requirePrefixes tokenizes args and checks that every required prefix is
// present and that nothing precedes the first prefix.
func requirePrefixes(args, usage string, required []syntax.Prefix, optional ...syntax.Prefix) (*syntax.ArgumentMultimap, error) {
	all := append(append([]syntax.Prefix(nil), required...), optional...)
	m := syntax.Tokenize(args, all...)
	if !m.Has(required...) || m.Preamble() != "" {
		return nil, invalidFormat(usage)
	}
	return m, nil
}

// requirePreambleOnly returns the trimmed args, which must be non-empty.
func requirePreambleOnly(args, usage string) (string, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "", invalidFormat(usage)
	}
	return args, nil
}
