package navigator

import "unicode"

// FilterCursorPos returns the rune offset of the filter caret.
func (s *Selection) FilterCursorPos() int {
	runes := []rune(s.filter)
	if s.filterCursor < 0 {
		return 0
	}
	if s.filterCursor > len(runes) {
		return len(runes)
	}
	return s.filterCursor
}

// InsertFilterText inserts text into the filter at the caret.
func (s *Selection) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.filter)
	pos := s.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.setFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the caret.
func (s *Selection) DeleteFilterRuneBackward() bool {
	runes := []rune(s.filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	s.setFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word before the caret along with any
// whitespace between it and the caret. The space separating it from the
// previous word is kept.
func (s *Selection) DeleteFilterWordBackward() bool {
	runes := []rune(s.filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i:i], runes[pos:]...)
	s.setFilter(string(updated), i)
	return true
}

// ClearFilter empties the filter.
func (s *Selection) ClearFilter() bool {
	if s.filter == "" {
		return false
	}
	s.setFilter("", 0)
	return true
}

// MoveFilterCursorStart moves the caret to the start of the filter.
func (s *Selection) MoveFilterCursorStart() bool {
	if s.FilterCursorPos() == 0 {
		return false
	}
	s.filterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the caret past the last rune.
func (s *Selection) MoveFilterCursorEnd() bool {
	end := len([]rune(s.filter))
	if s.FilterCursorPos() == end {
		return false
	}
	s.filterCursor = end
	return true
}

// MoveFilterCursorWordBackward moves the caret to the start of the previous word.
func (s *Selection) MoveFilterCursorWordBackward() bool {
	runes := []rune(s.filter)
	pos := s.FilterCursorPos()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	s.filterCursor = i
	return true
}

// MoveFilterCursorWordForward moves the caret past the next word.
func (s *Selection) MoveFilterCursorWordForward() bool {
	runes := []rune(s.filter)
	pos := s.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	s.filterCursor = i
	return true
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (s *Selection) MoveFilterCursorRuneBackward() bool {
	pos := s.FilterCursorPos()
	if pos == 0 {
		return false
	}
	s.filterCursor = pos - 1
	return true
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (s *Selection) MoveFilterCursorRuneForward() bool {
	pos := s.FilterCursorPos()
	if pos >= len([]rune(s.filter)) {
		return false
	}
	s.filterCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
