package navigator

import (
	"unicode"

	"github.com/atomicstack/treepick/internal/document"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matches reports whether text contains the runes of filter in order. A
// filter containing an upper-case rune is matched case-sensitively,
// otherwise case is ignored. The empty filter matches everything.
func Matches(filter, text string) bool {
	if filter == "" {
		return true
	}
	if hasUpper(filter) {
		return fuzzy.Match(filter, text)
	}
	return fuzzy.MatchFold(filter, text)
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Candidates returns the keys of parent's eligible children whose candidate
// text matches filter, in the parent's native order. Leaves have no
// candidates. Non-string array elements are never eligible.
func Candidates(parent *document.Node, filter string) []document.Key {
	if !parent.IsBranch() {
		return nil
	}
	keys := make([]document.Key, 0, parent.Len())
	for _, key := range parent.Keys() {
		if !document.Eligible(parent, key) {
			continue
		}
		if Matches(filter, document.CandidateText(parent, key)) {
			keys = append(keys, key)
		}
	}
	return keys
}
