package model

import (
	"errors"

	"github.com/cristianoliveira/trip-planner/internal/domain"
)

var (
	// ErrNothingToUndo is returned by Undo at the oldest kept state.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo at the newest state.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// state is one immutable history entry.
type state struct {
	contacts       []domain.Contact
	activities     []domain.Activity
	accommodations []domain.Accommodation
	days           []domain.Day
}

// history is a bounded list of states with a cursor at the current one.
type history struct {
	states  []state
	current int
	limit   int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

func (h *history) reset(s state) {
	h.states = []state{s}
	h.current = 0
}

func (h *history) push(s state) {
	h.states = append(h.states[:h.current+1:h.current+1], s)
	if over := len(h.states) - (h.limit + 1); over > 0 {
		h.states = h.states[over:]
	}
	h.current = len(h.states) - 1
}

func (h *history) canUndo() bool { return h.current > 0 }
func (h *history) canRedo() bool { return h.current < len(h.states)-1 }

func (h *history) undo() (state, error) {
	if !h.canUndo() {
		return state{}, ErrNothingToUndo
	}
	h.current--
	return h.states[h.current], nil
}

func (h *history) redo() (state, error) {
	if !h.canRedo() {
		return state{}, ErrNothingToRedo
	}
	h.current++
	return h.states[h.current], nil
}
