package ui

import tea "charm.land/bubbletea/v2"

// Harness drives the UI model programmatically for tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Type sends one key press per rune of text.
func (h *Harness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
			continue
		}
		h.Send(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// Press sends a non-printing key, optionally with modifiers.
func (h *Harness) Press(code rune, mod tea.KeyMod) {
	h.Send(tea.KeyPressMsg{Code: code, Mod: mod})
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current rendered view.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.Render()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
