package ui

import (
	"bytes"
	"strings"

	"github.com/atomicstack/treepick/internal/document"
	"gopkg.in/yaml.v3"
)

const (
	previewMaxLines = 8
	// previewMaxEntries bounds how many fields and items are encoded, so a
	// large subtree costs no more than a small one.
	previewMaxEntries = previewMaxLines * 4
)

type previewData struct {
	label string
	lines []string
	err   string
}

// previewCache remembers the preview of the last selected child. It is
// keyed by the parent node and the child's key, both stable for the
// lifetime of the document.
type previewCache struct {
	parent *document.Node
	key    document.Key
	data   *previewData
}

// activePreview describes the selected child, or nil when previews are off
// or nothing is selected.
func (m *Model) activePreview() *previewData {
	if !m.showPreview {
		return nil
	}
	current := m.nav.Current()
	selected, ok := current.Selected()
	if !ok {
		return nil
	}
	parent := current.Parent()
	if m.preview.data != nil && m.preview.parent == parent && m.preview.key == selected {
		return m.preview.data
	}
	child, ok := parent.Child(selected)
	if !ok {
		return nil
	}
	data := &previewData{label: document.CandidateText(parent, selected)}
	text, truncated, err := renderPreview(child)
	if err != nil {
		data.err = err.Error()
	} else {
		data.lines = previewLines(text, previewMaxLines, truncated)
	}
	m.preview = previewCache{parent: parent, key: selected, data: data}
	return data
}

// renderPreview encodes n as YAML. truncated reports that entries past
// previewMaxEntries were left out.
func renderPreview(n *document.Node) (string, bool, error) {
	if !n.IsBranch() {
		return n.String(), false, nil
	}
	conv := &previewConverter{budget: previewMaxEntries}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(conv.node(n)); err != nil {
		return "", false, err
	}
	if err := enc.Close(); err != nil {
		return "", false, err
	}
	return buf.String(), conv.truncated, nil
}

func previewLines(text string, limit int, truncated bool) []string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	overflow := limit > 0 && len(lines) > limit
	if !overflow && !truncated {
		return lines
	}
	if limit > 0 && len(lines) >= limit {
		return append(lines[:limit-1:limit-1], "…")
	}
	return append(lines, "…")
}

// previewConverter turns a document into a yaml.Node tree so field order
// survives encoding. It stops adding children once budget runs out.
type previewConverter struct {
	budget    int
	truncated bool
}

func (c *previewConverter) take() bool {
	if c.budget <= 0 {
		c.truncated = true
		return false
	}
	c.budget--
	return true
}

func (c *previewConverter) node(n *document.Node) *yaml.Node {
	if n == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	switch n.Kind {
	case document.KindObject:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if len(n.Fields) == 0 {
			out.Style = yaml.FlowStyle
		}
		for _, f := range n.Fields {
			if !c.take() {
				break
			}
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
				c.node(f.Value),
			)
		}
		return out
	case document.KindArray:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(n.Items) == 0 {
			out.Style = yaml.FlowStyle
		}
		for _, item := range n.Items {
			if !c.take() {
				break
			}
			out.Content = append(out.Content, c.node(item))
		}
		return out
	case document.KindNumber:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: numberTag(n.Str), Value: n.Str}
	case document.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: n.String()}
	case document.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Str}
	}
}

func numberTag(literal string) string {
	if strings.ContainsAny(literal, ".eE") {
		return "!!float"
	}
	return "!!int"
}
