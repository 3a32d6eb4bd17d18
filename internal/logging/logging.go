package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "treepick.log"

type loggerContextKey struct{}

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	level        = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	sink         *lazyFile
	zl           *zap.Logger
)

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing. Nothing is
// written to disk until the first entry is logged.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	next := defaultLogFile
	if strings.TrimSpace(path) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		} else {
			next = path
		}
	}
	if zl != nil && next == logPath {
		return
	}
	closeLocked()
	logPath = next
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
	if enabled {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.ErrorLevel)
	}
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	fields := []zap.Field{}
	if payload != nil {
		fields = append(fields, zap.Any("payload", payload))
	}
	current().Info(event, fields...)
}

// Error writes err to the log regardless of the trace setting.
func Error(err error) {
	if err == nil {
		return
	}
	current().Error("error", zap.Error(err))
}

// Logger returns a logr view of the shared log. Info lines are only written
// while tracing is enabled.
func Logger() logr.Logger {
	return zapr.NewLogger(current())
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l logr.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// FromContext returns the logger attached to ctx, or the shared logger.
func FromContext(ctx context.Context) logr.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerContextKey{}).(logr.Logger); ok {
			return l
		}
	}
	return Logger()
}

// Sync flushes buffered entries and closes the log file.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func current() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if zl == nil {
		sink = &lazyFile{path: logPath}
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "time"
		encoderCfg.MessageKey = "event"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, level)
		zl = zap.New(core, zap.ErrorOutput(zapcore.AddSync(io.Discard)))
	}
	return zl
}

func closeLocked() {
	if zl == nil {
		return
	}
	if err := zl.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync log: %v\n", err)
	}
	_ = sink.Close()
	zl = nil
	sink = nil
}

func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF)
}

// lazyFile opens its path on the first write so a quiet session leaves no
// file behind.
type lazyFile struct {
	mu     sync.Mutex
	path   string
	f      *os.File
	failed bool
}

func (l *lazyFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		if l.failed {
			return 0, os.ErrClosed
		}
		f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			l.failed = true
			fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
			return 0, err
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	return l.f.Sync()
}

func (l *lazyFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
