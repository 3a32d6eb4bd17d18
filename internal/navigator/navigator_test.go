package navigator

import (
	"reflect"
	"testing"

	"github.com/atomicstack/treepick/internal/document"
)

func restartList() *document.Node {
	return document.Strings("signal", "firefox", "gmail")
}

func systemctlDoc() *document.Node {
	return document.Object(
		document.F("systemctl", document.Object(
			document.F("--system", document.Object(
				document.F("restart", restartList()),
			)),
			document.F("--user", document.Object(
				document.F("restart", restartList()),
			)),
		)),
	)
}

func mustChild(t *testing.T, n *document.Node, names ...string) *document.Node {
	t.Helper()
	for _, name := range names {
		next, ok := n.Field(name)
		if !ok {
			t.Fatalf("missing field %q", name)
		}
		n = next
	}
	return n
}

func TestNavigatorSystemctlScenario(t *testing.T) {
	doc := systemctlDoc()
	nav := New(doc)

	nav.SetFilter("sys")
	if choices, ok := nav.Choices(); !ok || !reflect.DeepEqual(choices.All(), []string{"systemctl"}) {
		t.Fatalf("expected [systemctl], got %#v", choices)
	}
	if got := nav.PushSelection(); got != document.Branch {
		t.Fatalf("expected branch, got %v", got)
	}
	if nav.Node() != mustChild(t, doc, "systemctl") {
		t.Fatal("expected current node to be the systemctl object")
	}

	nav.SetFilter("sys")
	if choices, ok := nav.Choices(); !ok || !reflect.DeepEqual(choices.All(), []string{"--system"}) {
		t.Fatalf("expected [--system], got %#v", choices)
	}
	if got := nav.PushSelection(); got != document.Branch {
		t.Fatalf("expected branch, got %v", got)
	}
	if nav.Node() != mustChild(t, doc, "systemctl", "--system") {
		t.Fatal("expected current node to be the --system object")
	}

	nav.SetFilter("res")
	if choices, ok := nav.Choices(); !ok || !reflect.DeepEqual(choices.All(), []string{"restart"}) {
		t.Fatalf("expected [restart], got %#v", choices)
	}
	if got := nav.PushSelection(); got != document.Branch {
		t.Fatalf("expected branch for the restart array, got %v", got)
	}
	if nav.Node() != mustChild(t, doc, "systemctl", "--system", "restart") {
		t.Fatal("expected current node to be the restart array")
	}

	if got := nav.History().String(); got != "systemctl --system restart" {
		t.Fatalf("unexpected breadcrumb %q", got)
	}

	if !nav.PopSelection() {
		t.Fatal("expected pop to succeed")
	}
	if nav.Filter() != "res" {
		t.Fatalf("expected filter res restored, got %q", nav.Filter())
	}
	if got := nav.Current().DescribeSelectedKey(); got != "restart" {
		t.Fatalf("expected restart selected, got %q", got)
	}
	if nav.Node() != mustChild(t, doc, "systemctl", "--system") {
		t.Fatal("expected to be back on the --system object")
	}
}

func TestNavigatorLeafEndsWithFullBreadcrumb(t *testing.T) {
	nav := New(systemctlDoc())
	for _, filter := range []string{"sys", "usr", "res"} {
		nav.SetFilter(filter)
		if got := nav.PushSelection(); got != document.Branch {
			t.Fatalf("expected branch after %q, got %v", filter, got)
		}
	}
	nav.SetFilter("gm")
	if got := nav.PushSelection(); got != document.Leaf {
		t.Fatalf("expected leaf, got %v", got)
	}
	if got := nav.History().String(); got != "systemctl --user restart gmail" {
		t.Fatalf("unexpected breadcrumb %q", got)
	}
	if _, ok := nav.Choices(); ok {
		t.Fatal("expected no candidates on a leaf")
	}
}

func TestNavigatorPushWithoutSelectionIsNoop(t *testing.T) {
	nav := New(systemctlDoc())
	nav.SetFilter("nothing-matches-this")
	if _, ok := nav.Choices(); ok {
		t.Fatal("expected no candidates")
	}
	if got := nav.PushSelection(); got != document.Branch {
		t.Fatalf("expected current classification branch, got %v", got)
	}
	if nav.Depth() != 0 {
		t.Fatalf("expected depth 0, got %d", nav.Depth())
	}
	if nav.Filter() != "nothing-matches-this" {
		t.Fatalf("expected filter untouched, got %q", nav.Filter())
	}
}

func TestNavigatorScalarRoot(t *testing.T) {
	nav := New(document.String("alone"))
	if got := nav.PushSelection(); got != document.Leaf {
		t.Fatalf("expected leaf for scalar root, got %v", got)
	}
	if nav.History().String() != "" {
		t.Fatalf("expected empty breadcrumb, got %q", nav.History().String())
	}
}

func TestNavigatorPopAtRootIsNoop(t *testing.T) {
	nav := New(systemctlDoc())
	nav.SetFilter("ctl")
	if nav.PopSelection() {
		t.Fatal("expected pop at root to report false")
	}
	if nav.Filter() != "ctl" {
		t.Fatalf("expected filter kept, got %q", nav.Filter())
	}
}

func TestNavigatorPushPopCounts(t *testing.T) {
	nav := New(systemctlDoc())
	nav.PushSelection()
	nav.PushSelection()
	if nav.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", nav.Depth())
	}
	nav.PopSelection()
	if nav.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", nav.Depth())
	}
}

func TestNavigatorPopRestoresCursorPosition(t *testing.T) {
	doc := document.Object(
		document.F("alpha", document.Object(document.F("x", document.Null()))),
		document.F("beta", document.Object(document.F("y", document.Null()))),
		document.F("gamma", document.Object(document.F("z", document.Null()))),
	)
	nav := New(doc)
	nav.SetFilter("a")
	nav.SelectNext()
	nav.SelectNext()
	if got := nav.Current().DescribeSelectedKey(); got != "gamma" {
		t.Fatalf("expected gamma, got %q", got)
	}
	nav.PushSelection()
	nav.SetFilter("z")
	nav.PopSelection()

	choices, ok := nav.Choices()
	if !ok {
		t.Fatal("expected candidates after pop")
	}
	if choices.Index() != 2 || choices.Selected != "gamma" {
		t.Fatalf("expected cursor restored on gamma at 2, got %#v", choices)
	}
	if !reflect.DeepEqual(choices.Before, []string{"alpha", "beta"}) {
		t.Fatalf("unexpected before list %v", choices.Before)
	}
}

func TestNavigatorSelectMovesDelegate(t *testing.T) {
	nav := New(document.Strings("one", "two"))
	if nav.SelectPrev() {
		t.Fatal("expected no movement at start")
	}
	if !nav.SelectNext() {
		t.Fatal("expected movement to two")
	}
	choices, _ := nav.Choices()
	if choices.Selected != "two" || !reflect.DeepEqual(choices.Before, []string{"one"}) || len(choices.After) != 0 {
		t.Fatalf("unexpected choices %#v", choices)
	}

	nav.SetFilter("zzz")
	if nav.SelectNext() || nav.SelectPrev() {
		t.Fatal("expected moves to be no-ops without a cursor")
	}
}

func TestNavigatorArrayNonStringsAreSkipped(t *testing.T) {
	doc := document.Array(document.Number("1"), document.String("b"), document.Bool(true))
	nav := New(doc)
	choices, ok := nav.Choices()
	if !ok || !reflect.DeepEqual(choices.All(), []string{"b"}) {
		t.Fatalf("expected only b, got %#v", choices)
	}
	if got := nav.PushSelection(); got != document.Leaf {
		t.Fatalf("expected leaf, got %v", got)
	}
	if got := nav.History().String(); got != "b" {
		t.Fatalf("unexpected breadcrumb %q", got)
	}
}

func TestNavigatorResultUsesSeparator(t *testing.T) {
	nav := New(systemctlDoc())
	nav.PushSelection()
	nav.PushSelection()
	if got := nav.Result("/"); got != "systemctl/--system" {
		t.Fatalf("unexpected result %q", got)
	}
}
