// Package domain provides the domain layer for the trip planner.
// It contains value objects, entities and their validation rules.
package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidIndex is returned when an index is not a positive integer.
var ErrInvalidIndex = errors.New("index is not a non-zero unsigned integer")

// Index is a position in a list shown to the user.
// It is stored zero-based and presented one-based.
type Index struct {
	zeroBased int
}

// IndexFromOneBased creates an Index from a user-facing position.
func IndexFromOneBased(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, fmt.Errorf("%w: %d", ErrInvalidIndex, oneBased)
	}
	return Index{zeroBased: oneBased - 1}, nil
}

// IndexFromZeroBased creates an Index from an internal slice position.
func IndexFromZeroBased(zeroBased int) (Index, error) {
	if zeroBased < 0 {
		return Index{}, fmt.Errorf("%w: %d", ErrInvalidIndex, zeroBased+1)
	}
	return Index{zeroBased: zeroBased}, nil
}

// MustIndex is like IndexFromOneBased but panics on invalid input.
func MustIndex(oneBased int) Index {
	idx, err := IndexFromOneBased(oneBased)
	if err != nil {
		panic(err)
	}
	return idx
}

// OneBased returns the user-facing position.
func (i Index) OneBased() int {
	return i.zeroBased + 1
}

// ZeroBased returns the slice position.
func (i Index) ZeroBased() int {
	return i.zeroBased
}

// String returns the one-based position.
func (i Index) String() string {
	return strconv.Itoa(i.OneBased())
}
