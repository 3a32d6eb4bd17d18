package ui

import (
	"unicode"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/treepick/internal/logging/events"
	"github.com/atomicstack/treepick/internal/navigator"
)

func (m *Model) handleTextInput(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	current := m.nav.Current()
	switch msg.String() {
	case "ctrl+u":
		if !current.ClearFilter() {
			return false, nil
		}
		events.Filter.Cleared(m.path())
		m.filterEdited()
		return true, nil
	case "ctrl+w":
		if current.Filter() == "" {
			return m.ascend(), nil
		}
		if !current.DeleteFilterWordBackward() {
			return false, nil
		}
		events.Filter.WordBackspace(m.path(), current.Filter())
		m.filterEdited()
		return true, nil
	case "backspace", "ctrl+h":
		if current.Filter() == "" {
			return m.ascend(), nil
		}
		if !current.DeleteFilterRuneBackward() {
			return false, nil
		}
		events.Filter.Backspace(m.path(), current.Filter())
		m.filterEdited()
		return true, nil
	case "ctrl+a":
		return m.moveCaret(current, current.MoveFilterCursorStart(), false), nil
	case "ctrl+e":
		return m.moveCaret(current, current.MoveFilterCursorEnd(), false), nil
	case "left":
		return m.moveCaret(current, current.MoveFilterCursorRuneBackward(), false), nil
	case "right":
		return m.moveCaret(current, current.MoveFilterCursorRuneForward(), false), nil
	case "alt+b":
		return m.moveCaret(current, current.MoveFilterCursorWordBackward(), true), nil
	case "alt+f":
		return m.moveCaret(current, current.MoveFilterCursorWordForward(), true), nil
	}
	if msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
		return false, nil
	}
	text := msg.Text
	if msg.Code == tea.KeySpace {
		text = " "
	}
	if !printable(text) {
		return false, nil
	}
	if !current.InsertFilterText(text) {
		return false, nil
	}
	events.Filter.Append(m.path(), current.Filter())
	m.filterEdited()
	return true, nil
}

func printable(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func (m *Model) moveCaret(current *navigator.Selection, moved, word bool) bool {
	if !moved {
		return false
	}
	if word {
		events.Filter.CursorWord(m.path(), current.FilterCursorPos())
	} else {
		events.Filter.Cursor(m.path(), current.FilterCursorPos())
	}
	return true
}

// filterEdited runs after any change to the filter text. The cursor has
// already been reset to the first match.
func (m *Model) filterEdited() {
	m.status = ""
	m.offset[m.nav.Depth()] = 0
	m.syncViewport()
}

// filterPrompt renders "» <breadcrumb> <filter>" with a caret at the edit
// position, or a placeholder while the filter is empty.
func (m *Model) filterPrompt() string {
	current := m.nav.Current()
	prompt := styles.FilterPrompt.Render("» ")
	if crumb := m.nav.History().Join(m.separator); crumb != "" {
		prompt += styles.Breadcrumb.Render(crumb) + " "
	}
	text := current.Filter()
	if text == "" {
		placeholder := []rune("(type to search)")
		return prompt + renderCaret(string(placeholder[0])) + styles.FilterPlaceholder.Render(string(placeholder[1:]))
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	before := styles.Filter.Render(string(runes[:pos]))
	if pos >= len(runes) {
		return prompt + before + renderCaret(" ")
	}
	return prompt + before + renderCaret(string(runes[pos])) + styles.Filter.Render(string(runes[pos+1:]))
}

func renderCaret(char string) string {
	return styles.Cursor.Inline(true).Render(char)
}
