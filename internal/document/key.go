package document

import "strconv"

// KeyKind distinguishes field names from array positions.
type KeyKind int

const (
	FieldName KeyKind = iota
	Index
)

// Key identifies one child of a specific branch. A key is never meaningful
// outside the parent it was taken from.
type Key struct {
	Kind  KeyKind
	Name  string
	Index int
}

// FieldKey returns the key for an object field.
func FieldKey(name string) Key {
	return Key{Kind: FieldName, Name: name}
}

// IndexKey returns the key for an array position.
func IndexKey(i int) Key {
	return Key{Kind: Index, Index: i}
}

// String renders the key itself, not its candidate text.
func (k Key) String() string {
	if k.Kind == Index {
		return "[" + strconv.Itoa(k.Index) + "]"
	}
	return k.Name
}

// CandidateText is the text used both for fuzzy matching and for display.
// Field keys use the field name. Index keys use the element's string value,
// or empty text when the element is not a string.
func CandidateText(parent *Node, key Key) string {
	switch key.Kind {
	case FieldName:
		return key.Name
	case Index:
		child, ok := parent.Child(key)
		if !ok || child.Kind != KindString {
			return ""
		}
		return child.Str
	}
	return ""
}

// Eligible reports whether the child at key can ever be a candidate. Every
// object field is eligible; array elements only when they are strings.
func Eligible(parent *Node, key Key) bool {
	switch key.Kind {
	case FieldName:
		_, ok := parent.Field(key.Name)
		return ok
	case Index:
		child, ok := parent.Child(key)
		return ok && child.Kind == KindString
	}
	return false
}
