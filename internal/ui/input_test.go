package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestTypingAppendsToFilter(t *testing.T) {
	h := NewHarness(NewModel(systemctlDoc(), Options{}))
	h.Type("sy s")
	current := h.Model().Navigator().Current()
	if current.Filter() != "sy s" {
		t.Fatalf("expected filter 'sy s', got %q", current.Filter())
	}
	if pos := current.FilterCursorPos(); pos != 4 {
		t.Fatalf("expected caret at end, got %d", pos)
	}
}

func TestModifiedRunesAreNotTyped(t *testing.T) {
	h := NewHarness(NewModel(systemctlDoc(), Options{}))
	h.Send(tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl})
	h.Send(tea.KeyPressMsg{Code: 'x', Mod: tea.ModAlt})
	if f := h.Model().Navigator().Filter(); f != "" {
		t.Fatalf("expected empty filter, got %q", f)
	}
}

func TestCaretMovement(t *testing.T) {
	h := NewHarness(NewModel(systemctlDoc(), Options{}))
	h.Type("abc")
	current := h.Model().Navigator().Current()

	h.Press(tea.KeyLeft, 0)
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected caret at 2 after left, got %d", pos)
	}
	h.Press('a', tea.ModCtrl)
	if pos := current.FilterCursorPos(); pos != 0 {
		t.Fatalf("expected caret at 0 after ctrl+a, got %d", pos)
	}
	h.Press(tea.KeyRight, 0)
	if pos := current.FilterCursorPos(); pos != 1 {
		t.Fatalf("expected caret at 1 after right, got %d", pos)
	}
	h.Type("x")
	if current.Filter() != "axbc" {
		t.Fatalf("expected insertion at caret, got %q", current.Filter())
	}
	h.Press('e', tea.ModCtrl)
	if pos := current.FilterCursorPos(); pos != 4 {
		t.Fatalf("expected caret at end after ctrl+e, got %d", pos)
	}
}

func TestEditingResetsCursorToFirstMatch(t *testing.T) {
	h := NewHarness(NewModel(longDoc(5), Options{}))
	h.Press(tea.KeyEnd, 0)
	h.Type("item")
	choices, ok := h.Model().Navigator().Choices()
	if !ok {
		t.Fatalf("expected matches")
	}
	if choices.Index() != 0 || choices.Selected != "item00" {
		t.Fatalf("expected first match selected, got %q at %d", choices.Selected, choices.Index())
	}
}

func TestCtrlUAndCtrlW(t *testing.T) {
	h := NewHarness(NewModel(systemctlDoc(), Options{}))
	h.Type("foo bar")
	h.Press('w', tea.ModCtrl)
	if f := h.Model().Navigator().Filter(); f != "foo " {
		t.Fatalf("expected 'foo ' after ctrl+w, got %q", f)
	}
	h.Press('u', tea.ModCtrl)
	if f := h.Model().Navigator().Filter(); f != "" {
		t.Fatalf("expected empty filter after ctrl+u, got %q", f)
	}
	if h.Model().Navigator().Depth() != 0 {
		t.Fatalf("ctrl+u must not ascend")
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := NewModel(systemctlDoc(), Options{})
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}

func TestFilterPromptShowsBreadcrumbAndFilter(t *testing.T) {
	h := NewHarness(NewModel(systemctlDoc(), Options{}))
	h.Press(tea.KeyEnter, 0)
	h.Type("use")
	prompt := h.Model().filterPrompt()
	for _, want := range []string{"»", "systemctl", "us", "e"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected %q in prompt, got %q", want, prompt)
		}
	}
}
