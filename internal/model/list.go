package model

import (
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
)

// entityList is an ordered list of unique values with an optional view filter.
type entityList[T any] struct {
	items  []T
	equal  func(a, b T) bool
	filter func(T) bool
}

func newEntityList[T any](equal func(a, b T) bool) *entityList[T] {
	return &entityList[T]{equal: equal}
}

func (l *entityList[T]) has(v T) bool {
	return l.position(v) >= 0
}

func (l *entityList[T]) position(v T) int {
	for i, item := range l.items {
		if l.equal(item, v) {
			return i
		}
	}
	return -1
}

// add appends v and clears the filter so the new entry is visible.
func (l *entityList[T]) add(v T) {
	l.items = append(l.items, v)
	l.filter = nil
}

// insert places v before the entry at idx in the shown list. idx may equal
// the shown length, which appends.
func (l *entityList[T]) insert(idx domain.Index, v T) error {
	shown := l.shown()
	pos := idx.ZeroBased()
	if pos > len(shown) {
		return fmt.Errorf("%w: %s", ErrIndexOutOfRange, idx)
	}
	at := len(l.items)
	if pos < len(shown) {
		at = l.position(shown[pos])
	}
	items := make([]T, 0, len(l.items)+1)
	items = append(items, l.items[:at]...)
	items = append(items, v)
	l.items = append(items, l.items[at:]...)
	l.filter = nil
	return nil
}

func (l *entityList[T]) remove(v T) error {
	pos := l.position(v)
	if pos < 0 {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	items := make([]T, 0, len(l.items)-1)
	items = append(items, l.items[:pos]...)
	l.items = append(items, l.items[pos+1:]...)
	return nil
}

// shown returns the filtered view as a fresh slice.
func (l *entityList[T]) shown() []T {
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if l.filter == nil || l.filter(item) {
			out = append(out, item)
		}
	}
	return out
}

func (l *entityList[T]) shownIndex(v T) (domain.Index, bool) {
	for i, item := range l.shown() {
		if l.equal(item, v) {
			return domain.MustIndex(i + 1), true
		}
	}
	return domain.Index{}, false
}

func (l *entityList[T]) all() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *entityList[T]) reset(items []T) {
	l.items = append([]T(nil), items...)
	l.filter = nil
}
