package navigator

import "github.com/atomicstack/treepick/internal/document"

// Cursor partitions a non-empty candidate list into the keys before the
// selection, the selected key, and the keys after it. Movement never wraps.
type Cursor struct {
	keys []document.Key
	pos  int
}

// NewCursor selects the first key. It returns nil for an empty list since a
// cursor only exists while there is something to select.
func NewCursor(keys []document.Key) *Cursor {
	if len(keys) == 0 {
		return nil
	}
	return &Cursor{keys: keys}
}

// Left returns the keys before the selection.
func (c *Cursor) Left() []document.Key {
	return c.keys[:c.pos:c.pos]
}

// Selected returns the selected key.
func (c *Cursor) Selected() document.Key {
	return c.keys[c.pos]
}

// Right returns the keys after the selection.
func (c *Cursor) Right() []document.Key {
	return c.keys[c.pos+1 : len(c.keys) : len(c.keys)]
}

// Index returns the position of the selection within all candidates.
func (c *Cursor) Index() int {
	return c.pos
}

// Len returns the number of candidates.
func (c *Cursor) Len() int {
	return len(c.keys)
}

// SelectNext moves the selection one step right. It is a no-op at the end.
func (c *Cursor) SelectNext() bool {
	return c.SelectBy(1)
}

// SelectPrev moves the selection one step left. It is a no-op at the start.
func (c *Cursor) SelectPrev() bool {
	return c.SelectBy(-1)
}

// SelectFirst moves the selection to the first candidate.
func (c *Cursor) SelectFirst() bool {
	return c.SelectBy(-c.pos)
}

// SelectLast moves the selection to the last candidate.
func (c *Cursor) SelectLast() bool {
	return c.SelectBy(len(c.keys) - 1 - c.pos)
}

// SelectBy moves the selection by delta, clamped to the candidate range.
func (c *Cursor) SelectBy(delta int) bool {
	old := c.pos
	c.pos += delta
	if c.pos < 0 {
		c.pos = 0
	}
	if c.pos >= len(c.keys) {
		c.pos = len(c.keys) - 1
	}
	return c.pos != old
}
