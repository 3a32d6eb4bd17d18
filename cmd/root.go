// Package cmd wires the treepick command line: flags, logging, loading the
// document and running the picker.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atomicstack/treepick/internal/app"
	"github.com/atomicstack/treepick/internal/config"
	"github.com/atomicstack/treepick/internal/document"
	"github.com/atomicstack/treepick/internal/loader"
	"github.com/atomicstack/treepick/internal/logging"
	"github.com/atomicstack/treepick/internal/logging/events"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Exit statuses.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitUsage   = 2
	ExitAborted = 130
)

var runApp = app.Run

// Execute runs the command with the process arguments and streams and
// returns the exit status.
func Execute() int {
	defer logging.Sync()
	return run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Environ())
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, environ []string) int {
	root := NewRootCommand(stdin, stdout, environ)
	root.SetArgs(args)
	root.SetOut(stderr)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	code := exitCode(err)
	switch code {
	case ExitOK, ExitAborted:
	case ExitUsage:
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
	default:
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}

// NewRootCommand builds the treepick command. The picked breadcrumb is
// written to stdout; a document named "-" or no name at all is read from
// stdin.
func NewRootCommand(stdin io.Reader, stdout io.Writer, environ []string) *cobra.Command {
	var cfg config.Config
	cmd := &cobra.Command{
		Use:   "treepick [file]",
		Short: "Pick a path through a JSON, YAML or indented tree by fuzzy filtering",
		Long: "treepick shows the children of a document node, narrows them as you type, and descends\n" +
			"on enter. Reaching a leaf prints every key picked on the way, separated by --separator.",
		Example:       "  treepick commands.yaml\n  kubectl get pods -o json | treepick --format json\n  $(treepick -s ' ' commands.tree)",
		Args:          maxInputs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	binding := config.Bind(cmd.Flags(), environ)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	})
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		parsed, err := binding.Config(args)
		if err != nil {
			return err
		}
		cfg = parsed
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		lgr := logging.Logger().WithValues("command", cmd.Name())
		cmd.SetContext(logging.WithLogger(cmd.Context(), lgr))
		return nil
	}
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		events.App.Start(startupTracePayload(cfg))
		root, err := loadDocument(ctx, cfg.Input, stdin)
		if err != nil {
			return err
		}
		result, err := runApp(ctx, cfg.App, root, title(cfg.Input.Path))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, result)
		return err
	}
	return cmd
}

func maxInputs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	return nil
}

func loadDocument(ctx context.Context, in config.Input, stdin io.Reader) (*document.Node, error) {
	if in.Path == "-" {
		return loader.Load(ctx, stdin, in.Format, in.Path)
	}
	root, err := loader.LoadFile(ctx, in.Path, in.Format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", in.Path, err)
	}
	return root, nil
}

func title(path string) string {
	if path == "-" {
		return ""
	}
	return filepath.Base(path)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, app.ErrAborted):
		return ExitAborted
	case errors.Is(err, config.ErrInvalid):
		return ExitUsage
	case errors.Is(err, pflag.ErrHelp):
		return ExitOK
	default:
		return ExitError
	}
}
