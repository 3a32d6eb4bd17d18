package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/treepick/internal/document"
	"github.com/atomicstack/treepick/internal/logging"
	"github.com/atomicstack/treepick/internal/logging/events"
	"github.com/atomicstack/treepick/internal/ui"
	"golang.org/x/term"
)

var (
	// ErrAborted is returned when the user quits without reaching a leaf.
	ErrAborted = errors.New("aborted")
	// ErrNoTerminal is returned when there is no terminal to draw on.
	ErrNoTerminal = errors.New("no terminal available")
)

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	ShowPreview bool
	Separator   string
}

// Terminal is where the picker reads keys and draws. It never includes
// stdout, which is reserved for the result.
type Terminal struct {
	In    io.Reader
	Out   io.Writer
	close func()
}

// Close releases any device opened for the terminal.
func (t *Terminal) Close() {
	if t != nil && t.close != nil {
		t.close()
	}
}

var (
	openTerminalIOFn = openTerminalIO
	isTerminal       = term.IsTerminal
)

// OpenTerminal opens the controlling terminal. When that fails it falls back
// to stdin for keys and stderr for drawing, provided stdin is a terminal.
func OpenTerminal() (*Terminal, error) {
	in, out, err := openTerminalIOFn()
	if err == nil {
		return &Terminal{
			In:  in,
			Out: out,
			close: func() {
				_ = in.Close()
				if out != in {
					_ = out.Close()
				}
			},
		}, nil
	}
	if !isTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("%w: %w", ErrNoTerminal, err)
	}
	return &Terminal{In: os.Stdin, Out: os.Stderr}, nil
}

func openTerminalIO() (*os.File, *os.File, error) {
	inName, outName := terminalDeviceNames(runtime.GOOS)
	in, err := os.OpenFile(inName, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, err
	}
	if outName == inName {
		return in, in, nil
	}
	out, err := os.OpenFile(outName, os.O_RDWR, 0)
	if err != nil {
		_ = in.Close()
		return nil, nil, err
	}
	return in, out, nil
}

func terminalDeviceNames(goos string) (string, string) {
	if goos == "windows" {
		return "CONIN$", "CONOUT$"
	}
	return "/dev/tty", "/dev/tty"
}

// Run opens the terminal and lets the user pick a leaf from root. It returns
// the breadcrumb of the picked leaf, or ErrAborted.
func Run(ctx context.Context, cfg Config, root *document.Node, title string) (string, error) {
	t, err := OpenTerminal()
	if err != nil {
		return "", err
	}
	defer t.Close()
	return RunWith(ctx, cfg, root, title, t.In, t.Out)
}

// RunWith runs the picker on the given input and output.
func RunWith(ctx context.Context, cfg Config, root *document.Node, title string, in io.Reader, out io.Writer, opts ...tea.ProgramOption) (string, error) {
	log := logging.FromContext(ctx)
	model := ui.NewModel(root, ui.Options{
		Title:       title,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		ShowPreview: cfg.ShowPreview,
		Separator:   cfg.Separator,
	})
	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}, opts...)
	log.V(1).Info("starting picker", "title", title, "children", root.Len())
	final, err := tea.NewProgram(model, options...).Run()
	if m, ok := final.(*ui.Model); ok && m != nil {
		model = m
	}
	result, err := outcome(model, err)
	events.App.Finish(result, errors.Is(err, ErrAborted))
	return result, err
}

func outcome(m *ui.Model, err error) (string, error) {
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	if m.Aborted() {
		return "", ErrAborted
	}
	result, ok := m.Result()
	if !ok {
		return "", ErrAborted
	}
	return result, nil
}
