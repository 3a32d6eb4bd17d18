// Package document holds the immutable tree that treepick navigates. A
// document is built once by a loader and only read afterwards, so nodes are
// shared by pointer between every navigation frame.
package document

import "strconv"

// Kind identifies the variant stored in a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Field is one name/value pair of an object. Field order is significant.
type Field struct {
	Name  string
	Value *Node
}

// Node is one value in the document tree.
type Node struct {
	Kind   Kind
	Fields []Field
	Items  []*Node
	// Str holds the text of a string scalar, or the literal text of a number.
	Str  string
	Bool bool
}

// Object builds an object node from fields in the given order. Names are
// unique within an object: a repeated name keeps its first position and
// takes the last value.
func Object(fields ...Field) *Node {
	return &Node{Kind: KindObject, Fields: uniqueFields(fields)}
}

func uniqueFields(fields []Field) []Field {
	if len(fields) < 2 {
		return fields
	}
	seen := make(map[string]int, len(fields))
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if i, dup := seen[f.Name]; dup {
			out[i].Value = f.Value
			continue
		}
		seen[f.Name] = len(out)
		out = append(out, f)
	}
	return out
}

// Array builds an array node.
func Array(items ...*Node) *Node {
	return &Node{Kind: KindArray, Items: items}
}

// String builds a string scalar.
func String(s string) *Node {
	return &Node{Kind: KindString, Str: s}
}

// Number builds a number scalar from its literal text.
func Number(literal string) *Node {
	return &Node{Kind: KindNumber, Str: literal}
}

// Bool builds a boolean scalar.
func Bool(b bool) *Node {
	return &Node{Kind: KindBool, Bool: b}
}

// Null builds a null scalar.
func Null() *Node {
	return &Node{Kind: KindNull}
}

// F is shorthand for a Field literal.
func F(name string, value *Node) Field {
	return Field{Name: name, Value: value}
}

// Strings builds an array of string scalars.
func Strings(values ...string) *Node {
	items := make([]*Node, len(values))
	for i, v := range values {
		items[i] = String(v)
	}
	return Array(items...)
}

// IsBranch reports whether the node is an object or an array.
func (n *Node) IsBranch() bool {
	if n == nil {
		return false
	}
	return n.Kind == KindObject || n.Kind == KindArray
}

// Len returns the number of direct children. Scalars have none.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindObject:
		return len(n.Fields)
	case KindArray:
		return len(n.Items)
	default:
		return 0
	}
}

// Field returns the value stored under name in an object node.
func (n *Node) Field(name string) (*Node, bool) {
	if n == nil || n.Kind != KindObject {
		return nil, false
	}
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Child resolves a key against this node.
func (n *Node) Child(key Key) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	switch key.Kind {
	case FieldName:
		return n.Field(key.Name)
	case Index:
		if n.Kind != KindArray || key.Index < 0 || key.Index >= len(n.Items) {
			return nil, false
		}
		return n.Items[key.Index], true
	}
	return nil, false
}

// Keys lists the key of every child in native order.
func (n *Node) Keys() []Key {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindObject:
		keys := make([]Key, len(n.Fields))
		for i, f := range n.Fields {
			keys[i] = FieldKey(f.Name)
		}
		return keys
	case KindArray:
		keys := make([]Key, len(n.Items))
		for i := range n.Items {
			keys[i] = IndexKey(i)
		}
		return keys
	}
	return nil
}

// String returns display text for scalars. Branches render as a short
// summary since they have no single textual value.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(n.Bool)
	case KindNumber, KindString:
		return n.Str
	case KindArray:
		return "[" + strconv.Itoa(len(n.Items)) + " items]"
	case KindObject:
		return "{" + strconv.Itoa(len(n.Fields)) + " fields}"
	}
	return ""
}

// NodeType classifies a node for the navigator.
type NodeType int

const (
	// Branch is an object or array; more navigation is possible.
	Branch NodeType = iota
	// Leaf is a scalar; reaching one ends a session.
	Leaf
)

func (t NodeType) String() string {
	if t == Branch {
		return "branch"
	}
	return "leaf"
}

// Classify reports whether n is a Branch or a Leaf.
func Classify(n *Node) NodeType {
	if n.IsBranch() {
		return Branch
	}
	return Leaf
}
