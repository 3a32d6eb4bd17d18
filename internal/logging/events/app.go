package events

import "github.com/atomicstack/treepick/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(result string, aborted bool) {
	logging.Trace("app.finish", map[string]interface{}{"result": result, "aborted": aborted})
}
