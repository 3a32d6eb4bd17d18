package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/treepick/internal/document"
	"gopkg.in/yaml.v3"
)

var ErrAliasCycle = errors.New("alias refers to its own anchor")

// parseYAML walks yaml.v3 nodes rather than decoding into maps so mapping
// order survives. Several documents in one stream become an array.
func parseYAML(data []byte) (*document.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []*document.Node
	for {
		var n yaml.Node
		err := dec.Decode(&n)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		v, err := newYAMLConverter().convert(&n)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
	switch len(docs) {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		return docs[0], nil
	default:
		return document.Array(docs...), nil
	}
}

// yamlConverter turns one yaml.v3 document into a document.Node. Anchored
// nodes are converted once and the result is shared by every alias, so the
// work stays linear in the size of the source.
type yamlConverter struct {
	anchored map[*yaml.Node]*document.Node
	// active holds anchored nodes whose conversion is still in progress.
	active map[*yaml.Node]bool
}

func newYAMLConverter() *yamlConverter {
	return &yamlConverter{
		anchored: map[*yaml.Node]*document.Node{},
		active:   map[*yaml.Node]bool{},
	}
}

func (c *yamlConverter) convert(n *yaml.Node) (*document.Node, error) {
	if n.Kind == yaml.AliasNode {
		if n.Alias == nil {
			return document.Null(), nil
		}
		return c.convert(n.Alias)
	}
	if n.Anchor == "" {
		return c.build(n)
	}
	if v, ok := c.anchored[n]; ok {
		return v, nil
	}
	if c.active[n] {
		return nil, fmt.Errorf("line %d: %w: %q", n.Line, ErrAliasCycle, n.Anchor)
	}
	c.active[n] = true
	v, err := c.build(n)
	delete(c.active, n)
	if err != nil {
		return nil, err
	}
	c.anchored[n] = v
	return v, nil
}

func (c *yamlConverter) build(n *yaml.Node) (*document.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return document.Null(), nil
		}
		return c.convert(n.Content[0])
	case yaml.MappingNode:
		obj := document.Object()
		if err := c.addFields(obj, map[string]int{}, n); err != nil {
			return nil, err
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := document.Array()
		for _, item := range n.Content {
			v, err := c.convert(item)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %v", n.Line, n.Kind)
	}
}

func (c *yamlConverter) addFields(obj *document.Node, seen map[string]int, n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.ShortTag() == "!!merge" {
			if err := c.merge(obj, seen, valNode); err != nil {
				return err
			}
			continue
		}
		value, err := c.convert(valNode)
		if err != nil {
			return err
		}
		name := yamlKeyText(keyNode)
		if idx, dup := seen[name]; dup {
			obj.Fields[idx].Value = value
			continue
		}
		seen[name] = len(obj.Fields)
		obj.Fields = append(obj.Fields, document.F(name, value))
	}
	return nil
}

// merge applies a "<<" key. Merged fields never override ones that are
// already present.
func (c *yamlConverter) merge(obj *document.Node, seen map[string]int, src *yaml.Node) error {
	target := src
	if target.Kind == yaml.AliasNode && target.Alias != nil {
		target = target.Alias
	}
	switch target.Kind {
	case yaml.MappingNode:
		merged, err := c.convert(target)
		if err != nil {
			return err
		}
		for _, f := range merged.Fields {
			if _, dup := seen[f.Name]; dup {
				continue
			}
			seen[f.Name] = len(obj.Fields)
			obj.Fields = append(obj.Fields, f)
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range target.Content {
			if err := c.merge(obj, seen, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
	}
}

func yamlKeyText(n *yaml.Node) string {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return yamlKeyText(n.Alias)
	}
	return n.Value
}

func fromYAMLScalar(n *yaml.Node) (*document.Node, error) {
	switch n.ShortTag() {
	case "!!null":
		return document.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return document.Bool(b), nil
	case "!!int", "!!float":
		return document.Number(n.Value), nil
	default:
		return document.String(n.Value), nil
	}
}
