package ui

import (
	"reflect"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/treepick/internal/document"
	"github.com/atomicstack/treepick/internal/navigator"
	"github.com/atomicstack/treepick/internal/theme"
)

const (
	headerSeparator = " → "
	defaultTitle    = "root"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. Zero width or height follows the terminal.
type Options struct {
	Title       string
	Width       int
	Height      int
	ShowFooter  bool
	ShowPreview bool
	Separator   string
}

// Model implements the Bubble Tea model for the drill-down picker.
type Model struct {
	nav *navigator.Navigator

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	showPreview bool
	title       string
	separator   string

	// offset is the first visible candidate row, per depth.
	offset  map[int]int
	status  string
	preview previewCache

	result   string
	finished bool
	aborted  bool

	keys     keyMap
	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model over root.
func NewModel(root *document.Node, opts Options) *Model {
	if root == nil {
		root = document.Object()
	}
	m := &Model{
		nav:         navigator.New(root),
		showFooter:  opts.ShowFooter,
		showPreview: opts.ShowPreview,
		title:       opts.Title,
		separator:   opts.Separator,
		offset:      map[int]int{},
		keys:        defaultKeyMap(),
	}
	if m.separator == "" {
		m.separator = " "
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Result returns the picked breadcrumb and whether a leaf was reached.
func (m *Model) Result() (string, bool) {
	return m.result, m.finished
}

// Aborted reports whether the user quit without picking.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Navigator exposes the underlying navigation engine.
func (m *Model) Navigator() *navigator.Navigator {
	return m.nav
}

// path names the current position for trace events.
func (m *Model) path() string {
	return "/" + m.nav.History().Join("/")
}
