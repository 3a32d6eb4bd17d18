package ui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/treepick/internal/document"
	"github.com/atomicstack/treepick/internal/logging/events"
)

const defaultPageSize = 10

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if m.finished || m.aborted {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		return m.abort()
	case key.Matches(keyMsg, m.keys.Descend):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Next):
		m.moveCursor(m.nav.SelectNext())
		return nil
	case key.Matches(keyMsg, m.keys.Prev):
		m.moveCursor(m.nav.SelectPrev())
		return nil
	case key.Matches(keyMsg, m.keys.First):
		m.moveCursor(m.nav.Current().SelectFirst())
		return nil
	case key.Matches(keyMsg, m.keys.Last):
		m.moveCursor(m.nav.Current().SelectLast())
		return nil
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(m.nav.Current().SelectBy(-m.pageSize()))
		return nil
	case key.Matches(keyMsg, m.keys.PageDn):
		m.moveCursor(m.nav.Current().SelectBy(m.pageSize()))
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	return nil
}

// handleEnterKey descends into the selected child. Reaching a leaf ends the
// session with the breadcrumb as the result.
func (m *Model) handleEnterKey() tea.Cmd {
	current := m.nav.Current()
	selected, ok := current.Selected()
	if !ok {
		m.status = "nothing to select"
		return nil
	}
	path, filter := m.path(), current.Filter()
	label := document.CandidateText(current.Parent(), selected)
	kind := m.nav.PushSelection()
	events.Nav.Descend(path, label, filter)
	m.status = ""
	m.offset[m.nav.Depth()] = 0
	if kind == document.Leaf {
		m.result = m.nav.Result(m.separator)
		m.finished = true
		events.Nav.Leaf(m.result)
		return tea.Quit
	}
	return nil
}

// handleEscapeKey ascends one level, or aborts at the root.
func (m *Model) handleEscapeKey() tea.Cmd {
	if !m.ascend() {
		return m.abort()
	}
	return nil
}

func (m *Model) ascend() bool {
	depth := m.nav.Depth()
	if !m.nav.PopSelection() {
		return false
	}
	delete(m.offset, depth)
	m.status = ""
	events.Nav.Ascend(m.path(), m.nav.Filter())
	m.syncViewport()
	return true
}

func (m *Model) abort() tea.Cmd {
	m.aborted = true
	return tea.Quit
}

func (m *Model) moveCursor(moved bool) {
	if !moved {
		return
	}
	if choices, ok := m.nav.Choices(); ok {
		events.Nav.Cursor(m.path(), choices.Index())
	}
	m.syncViewport()
}

func (m *Model) pageSize() int {
	if n := m.maxVisibleItems(); n > 0 {
		return n
	}
	return defaultPageSize
}

// syncViewport keeps the selected row inside the visible window.
func (m *Model) syncViewport() {
	depth := m.nav.Depth()
	choices, ok := m.nav.Choices()
	if !ok {
		m.offset[depth] = 0
		return
	}
	_, offset := choices.Window(m.offset[depth], m.maxVisibleItems())
	m.offset[depth] = offset
}

// visibleChoices returns the rows to draw, the index of the selected row
// within them, and whether there are any candidates at all. It only reads
// the stored offset; syncViewport is what moves it.
func (m *Model) visibleChoices() ([]string, int, bool) {
	choices, ok := m.nav.Choices()
	if !ok {
		return nil, -1, false
	}
	rows, offset := choices.Window(m.offset[m.nav.Depth()], m.maxVisibleItems())
	return rows, choices.Index() - offset, true
}
