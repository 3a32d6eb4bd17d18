// Package navigator implements the fuzzy drill-down engine: a filtered
// cursor over the children of the focused node, and a history stack that
// makes every descent reversible.
//
// A Navigator is not safe for concurrent use. It is meant to be driven by a
// single event loop that applies one intent at a time and re-reads Filter,
// History and Choices after each one.
package navigator

import "github.com/atomicstack/treepick/internal/document"

// Navigator owns the selection currently being filtered and the history of
// selections above it.
type Navigator struct {
	root    *document.Node
	history History
	current *Selection
}

// New starts a navigator at root.
func New(root *document.Node) *Navigator {
	return &Navigator{
		root:    root,
		current: NewSelection(root),
	}
}

// Root returns the document the navigator was built with.
func (n *Navigator) Root() *document.Node {
	return n.root
}

// Current returns the selection being filtered.
func (n *Navigator) Current() *Selection {
	return n.current
}

// Node returns the node whose children are being filtered.
func (n *Navigator) Node() *document.Node {
	return n.current.Parent()
}

// Depth returns the number of descents from the root.
func (n *Navigator) Depth() int {
	return n.history.Len()
}

// Filter returns the current filter text.
func (n *Navigator) Filter() string {
	return n.current.Filter()
}

// SetFilter replaces the current filter and rebuilds the candidates.
func (n *Navigator) SetFilter(text string) {
	n.current.SetFilter(text)
}

// SelectNext moves the cursor one candidate forward.
func (n *Navigator) SelectNext() bool {
	return n.current.SelectNext()
}

// SelectPrev moves the cursor one candidate back.
func (n *Navigator) SelectPrev() bool {
	return n.current.SelectPrev()
}

// Choices returns the candidate window, or ok=false when there are no
// candidates.
func (n *Navigator) Choices() (Choices, bool) {
	return n.current.Choices()
}

// PushSelection descends into the selected child and reports whether it is
// a branch or a leaf. A leaf ends the session: the history then holds the
// full breadcrumb including the leaf's key. Without a selection nothing
// changes and the current node's classification is returned.
func (n *Navigator) PushSelection() document.NodeType {
	key, ok := n.current.Selected()
	if !ok {
		return n.current.NodeType()
	}
	child, ok := n.current.Parent().Child(key)
	if !ok {
		// keys always come from the parent's own candidates
		return n.current.NodeType()
	}
	next := NewSelection(child)
	if err := n.history.Push(n.current); err != nil {
		return n.current.NodeType()
	}
	n.current = next
	return next.NodeType()
}

// PopSelection returns to the previous selection exactly as it was left,
// filter and cursor included. It reports false at the root.
func (n *Navigator) PopSelection() bool {
	prev, err := n.history.Pop()
	if err != nil {
		return false
	}
	n.current = prev
	return true
}

// History exposes the breadcrumb.
func (n *Navigator) History() *History {
	return &n.history
}

// Result renders the breadcrumb with sep between frames. After a push that
// reached a leaf it ends with the leaf's key.
func (n *Navigator) Result(sep string) string {
	return n.history.Join(sep)
}
