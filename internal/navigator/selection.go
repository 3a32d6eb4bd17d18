package navigator

import "github.com/atomicstack/treepick/internal/document"

// Selection binds one branch of the document to the filter typed against it
// and the cursor over the children that survive that filter.
type Selection struct {
	filter       string
	filterCursor int
	parent       *document.Node
	cursor       *Cursor
}

// NewSelection builds a selection over parent with an empty filter.
func NewSelection(parent *document.Node) *Selection {
	s := &Selection{parent: parent}
	s.rebuild()
	return s
}

// Filter returns the current filter text.
func (s *Selection) Filter() string {
	return s.filter
}

// Parent returns the node whose children are being filtered.
func (s *Selection) Parent() *document.Node {
	return s.parent
}

// Cursor returns the cursor, or nil when no child matches the filter.
func (s *Selection) Cursor() *Cursor {
	return s.cursor
}

// NodeType classifies the parent node.
func (s *Selection) NodeType() document.NodeType {
	return document.Classify(s.parent)
}

// SetFilter replaces the filter text and rebuilds the cursor from scratch.
// The previous selection is not carried over; the first match is selected.
func (s *Selection) SetFilter(text string) {
	s.setFilter(text, len([]rune(text)))
}

func (s *Selection) setFilter(text string, caret int) {
	s.filter = text
	runes := len([]rune(text))
	if caret < 0 {
		caret = 0
	}
	if caret > runes {
		caret = runes
	}
	s.filterCursor = caret
	s.rebuild()
}

func (s *Selection) rebuild() {
	s.cursor = NewCursor(Candidates(s.parent, s.filter))
}

// Selected returns the selected key, if any.
func (s *Selection) Selected() (document.Key, bool) {
	if s.cursor == nil {
		return document.Key{}, false
	}
	return s.cursor.Selected(), true
}

// DescribeSelectedKey renders the candidate text of the selection, or empty
// text when there is none.
func (s *Selection) DescribeSelectedKey() string {
	key, ok := s.Selected()
	if !ok {
		return ""
	}
	return document.CandidateText(s.parent, key)
}

// SelectNext moves the cursor right when one exists.
func (s *Selection) SelectNext() bool {
	if s.cursor == nil {
		return false
	}
	return s.cursor.SelectNext()
}

// SelectPrev moves the cursor left when one exists.
func (s *Selection) SelectPrev() bool {
	if s.cursor == nil {
		return false
	}
	return s.cursor.SelectPrev()
}

// SelectBy moves the cursor by delta, stopping at either end.
func (s *Selection) SelectBy(delta int) bool {
	if s.cursor == nil {
		return false
	}
	return s.cursor.SelectBy(delta)
}

// SelectFirst moves the cursor to the first candidate.
func (s *Selection) SelectFirst() bool {
	if s.cursor == nil {
		return false
	}
	return s.cursor.SelectFirst()
}

// SelectLast moves the cursor to the last candidate.
func (s *Selection) SelectLast() bool {
	if s.cursor == nil {
		return false
	}
	return s.cursor.SelectLast()
}

// Choices describes the candidates as display text split around the
// selection. It is the zero value with ok=false when nothing matches.
func (s *Selection) Choices() (Choices, bool) {
	if s.cursor == nil {
		return Choices{}, false
	}
	return Choices{
		Before:   s.describe(s.cursor.Left()),
		Selected: document.CandidateText(s.parent, s.cursor.Selected()),
		After:    s.describe(s.cursor.Right()),
	}, true
}

func (s *Selection) describe(keys []document.Key) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = document.CandidateText(s.parent, key)
	}
	return out
}

// Choices is the rendered candidate window: everything before the
// selection, the selection, and everything after it.
type Choices struct {
	Before   []string
	Selected string
	After    []string
}

// Index is the position of the selected entry in All.
func (c Choices) Index() int {
	return len(c.Before)
}

// Len returns the total number of entries.
func (c Choices) Len() int {
	return len(c.Before) + 1 + len(c.After)
}

// All returns every entry in display order.
func (c Choices) All() []string {
	all := make([]string, 0, c.Len())
	all = append(all, c.Before...)
	all = append(all, c.Selected)
	all = append(all, c.After...)
	return all
}

// Window returns at most size entries of All that keep the selection
// visible, together with the offset of the first returned entry. The
// previous offset is kept when the selection is still inside it.
func (c Choices) Window(offset, size int) ([]string, int) {
	all := c.All()
	if size <= 0 || len(all) <= size {
		return all, 0
	}
	idx := c.Index()
	if offset > len(all)-size {
		offset = len(all) - size
	}
	if offset < 0 {
		offset = 0
	}
	if idx < offset {
		offset = idx
	}
	if idx >= offset+size {
		offset = idx - size + 1
	}
	return all[offset : offset+size], offset
}
