package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/treepick/internal/app"
	"github.com/atomicstack/treepick/internal/loader"
	"github.com/spf13/pflag"
)

// ErrInvalid marks configuration errors. The command exits with status 2
// for them.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Input   Input
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Input struct {
	// Path is the document to read; "-" means stdin.
	Path   string
	Format loader.Format
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFormat      = "TREEPICK_FORMAT"
	envWidth       = "TREEPICK_WIDTH"
	envHeight      = "TREEPICK_HEIGHT"
	envShowFooter  = "TREEPICK_FOOTER"
	envShowPreview = "TREEPICK_PREVIEW"
	envSeparator   = "TREEPICK_SEPARATOR"
	envTrace       = "TREEPICK_TRACE"
	envLogFile     = "TREEPICK_LOG_FILE"
)

// Binding holds flag values registered on a flag set. Defaults come from the
// environment so explicit flags always win.
type Binding struct {
	format    *string
	width     *int
	height    *int
	footer    *bool
	preview   *bool
	separator *string
	trace     *bool
	logFile   *string
}

// Bind registers every flag on fs.
func Bind(fs *pflag.FlagSet, environ []string) *Binding {
	env := parseEnv(environ)
	return &Binding{
		format:    fs.StringP("format", "f", envOrDefault(env, envFormat, string(loader.Auto)), "input format: auto|json|yaml|tree"),
		width:     fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:    fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:    fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row"),
		preview:   fs.Bool("preview", envOrBool(env, envShowPreview, false), "show a preview of the selected child"),
		separator: fs.StringP("separator", "s", envOrDefault(env, envSeparator, " "), "separator placed between picked keys on output"),
		trace:     fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:   fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config builds and validates the configuration once the flag set has been
// parsed. args are the positional arguments left after flags.
func (b *Binding) Config(args []string) (Config, error) {
	if len(args) > 1 {
		return Config{}, fmt.Errorf("%w: expected at most one input file, got %d", ErrInvalid, len(args))
	}
	path := "-"
	if len(args) == 1 && args[0] != "" {
		path = args[0]
	}
	format, err := loader.ParseFormat(*b.format)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	cfg := Config{
		App: app.Config{
			Width:       *b.width,
			Height:      *b.height,
			ShowFooter:  *b.footer,
			ShowPreview: *b.preview,
			Separator:   *b.separator,
		},
		Input: Input{
			Path:   path,
			Format: format,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
		},
		Flags: map[string]string{
			"format":    string(format),
			"width":     strconv.Itoa(*b.width),
			"height":    strconv.Itoa(*b.height),
			"footer":    strconv.FormatBool(*b.footer),
			"preview":   strconv.FormatBool(*b.preview),
			"separator": *b.separator,
			"trace":     strconv.FormatBool(*b.trace),
			"logFile":   *b.logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadArgs parses args against a fresh flag set with environ supplying the
// defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("treepick", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	b := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return b.Config(fs.Args())
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures the configuration can drive a session.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalid, cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalid, cfg.App.Height)
	}
	if _, err := loader.ParseFormat(string(cfg.Input.Format)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if strings.TrimSpace(cfg.Input.Path) == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	return nil
}
