package events

import "github.com/atomicstack/treepick/internal/logging"

type NavTracer struct{}

type FilterTracer struct{}

var (
	Nav    = NavTracer{}
	Filter = FilterTracer{}
)

func (NavTracer) Descend(path, key, filter string) {
	logging.Trace("nav.descend", map[string]interface{}{
		"path":   path,
		"key":    key,
		"filter": filter,
	})
}

func (NavTracer) Ascend(path, filter string) {
	logging.Trace("nav.ascend", map[string]interface{}{"path": path, "filter": filter})
}

func (NavTracer) Cursor(path string, cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"path": path, "cursor": cursor})
}

func (NavTracer) Leaf(result string) {
	logging.Trace("nav.leaf", map[string]interface{}{"result": result})
}

func (FilterTracer) Cleared(path string) {
	logging.Trace("filter.clear", map[string]interface{}{"path": path})
}

func (FilterTracer) WordBackspace(path, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"path": path, "filter": filter})
}

func (FilterTracer) Cursor(path string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"path": path, "cursor": pos})
}

func (FilterTracer) CursorWord(path string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"path": path, "cursor": pos})
}

func (FilterTracer) Append(path, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"path": path, "filter": filter})
}

func (FilterTracer) Backspace(path, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"path": path, "filter": filter})
}
