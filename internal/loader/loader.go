// Package loader turns JSON, YAML and indent-tree text into a document.Node,
// keeping every object's fields in the order they appear in the source.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/treepick/internal/document"
	"github.com/atomicstack/treepick/internal/logging"
	"github.com/atomicstack/treepick/internal/logging/events"
)

// Format names an input syntax.
type Format string

const (
	Auto Format = "auto"
	JSON Format = "json"
	YAML Format = "yaml"
	Tree Format = "tree"
)

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrEmptyInput    = errors.New("empty input")
)

// Formats lists every accepted format name.
func Formats() []Format {
	return []Format{Auto, JSON, YAML, Tree}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return Auto, nil
	case Auto, JSON, YAML, Tree:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Detect picks a format from the file name, falling back to the content.
func Detect(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".ndjson":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".tree", ".txt":
		return Tree
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSON
	}
	return Auto
}

// Load reads r to the end and parses it. name is only used for format
// detection and messages; it may be empty.
func Load(ctx context.Context, r io.Reader, format Format, name string) (*document.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", displayName(name), err)
	}
	return Parse(ctx, data, format, name)
}

// LoadFile opens path and parses it.
func LoadFile(ctx context.Context, path string, format Format) (*document.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, data, format, path)
}

// Parse decodes data in the given format. Auto tries the file name first,
// then the content: JSON when it opens with a bracket, YAML when that yields
// an object or array, and the indent tree otherwise.
func Parse(ctx context.Context, data []byte, format Format, name string) (*document.Node, error) {
	log := logging.FromContext(ctx).WithValues("source", displayName(name))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	resolved := format
	if resolved == "" || resolved == Auto {
		resolved = Detect(name, data)
	}

	var (
		root *document.Node
		err  error
	)
	switch resolved {
	case JSON:
		root, err = parseJSON(data)
	case YAML:
		root, err = parseYAML(data)
	case Tree:
		root, err = parseTree(data)
	case Auto:
		root, resolved, err = sniff(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		log.V(1).Info("parse failed", "format", string(resolved), "error", err.Error())
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}

	log.V(1).Info("parsed document", "format", string(resolved), "children", root.Len())
	events.Load.Document(displayName(name), string(resolved), root.Len())
	return root, nil
}

func sniff(data []byte) (*document.Node, Format, error) {
	if root, err := parseYAML(data); err == nil && root.IsBranch() {
		return root, YAML, nil
	}
	root, err := parseTree(data)
	return root, Tree, err
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}
