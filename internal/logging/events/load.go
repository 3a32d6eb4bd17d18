package events

import "github.com/atomicstack/treepick/internal/logging"

type LoadTracer struct{}

var Load = LoadTracer{}

func (LoadTracer) Document(source, format string, children int) {
	logging.Trace("load.document", map[string]interface{}{
		"source":   source,
		"format":   format,
		"children": children,
	})
}
