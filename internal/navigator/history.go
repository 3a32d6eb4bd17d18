package navigator

import (
	"errors"
	"strings"
)

var (
	// ErrNoSelection is returned when pushing a selection that has nothing
	// selected. The navigator never does this; it signals a caller bug.
	ErrNoSelection = errors.New("navigator: selection has no selected key")
	// ErrEmptyHistory is returned when popping an empty history.
	ErrEmptyHistory = errors.New("navigator: history is empty")
)

// History is the stack of selections the user drilled through, oldest
// first. Rendered, it is the breadcrumb from the root to the current node.
type History struct {
	frames []*Selection
}

// Push appends s. Only selections with a selected key may be pushed.
func (h *History) Push(s *Selection) error {
	if s == nil {
		return ErrNoSelection
	}
	if _, ok := s.Selected(); !ok {
		return ErrNoSelection
	}
	h.frames = append(h.frames, s)
	return nil
}

// Pop removes and returns the newest frame.
func (h *History) Pop() (*Selection, error) {
	n := len(h.frames)
	if n == 0 {
		return nil, ErrEmptyHistory
	}
	top := h.frames[n-1]
	h.frames[n-1] = nil
	h.frames = h.frames[:n-1]
	return top, nil
}

// Len returns the number of frames.
func (h *History) Len() int {
	return len(h.frames)
}

// Frames returns each frame's selected text, root first.
func (h *History) Frames() []string {
	out := make([]string, len(h.frames))
	for i, frame := range h.frames {
		out[i] = frame.DescribeSelectedKey()
	}
	return out
}

// Join renders the breadcrumb with a custom separator.
func (h *History) Join(sep string) string {
	return strings.Join(h.Frames(), sep)
}

// String renders the breadcrumb with frames separated by a single space.
func (h *History) String() string {
	return h.Join(" ")
}
