package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/treepick/internal/testutil"
	"github.com/charmbracelet/x/ansi"
)

func TestGoldenRootView(t *testing.T) {
	h := NewHarness(NewModel(systemctlDoc(), Options{Width: 20, Height: 6}))
	testutil.AssertGolden(t, "view_root.golden", ansi.Strip(h.View()))
}

func TestGoldenNestedViewWithFooter(t *testing.T) {
	h := NewHarness(NewModel(systemctlDoc(), Options{Width: 24, Height: 8, ShowFooter: true}))
	h.Press(tea.KeyEnter, 0)
	testutil.AssertGolden(t, "view_nested_footer.golden", ansi.Strip(h.View()))
}
