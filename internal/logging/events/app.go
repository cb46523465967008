package events

import "github.com/atomicstack/numcanvas/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(frames int) {
	logging.Trace("app.exit", map[string]interface{}{"frames": frames})
}
