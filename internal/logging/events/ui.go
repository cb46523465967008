package events

import "github.com/atomicstack/numcanvas/internal/logging"

type UITracer struct{}

type InputTracer struct{}

type GraphicTracer struct{}

type PromptTracer struct{}

var (
	UI      = UITracer{}
	Input   = InputTracer{}
	Graphic = GraphicTracer{}
	Prompt  = PromptTracer{}
)

func (UITracer) ScreenSwitch(from, to string) {
	logging.Trace("screen.switch", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) MenuCursor(selection int) {
	logging.Trace("menu.cursor", map[string]interface{}{"selection": selection})
}

func (UITracer) Configure(screen string, rows, cols, lines int) {
	logging.Trace("screen.configure", map[string]interface{}{
		"screen": screen,
		"rows":   rows,
		"cols":   cols,
		"lines":  lines,
	})
}

func (InputTracer) Accepted(raw, event string) {
	logging.Trace("input.accept", map[string]interface{}{"raw": raw, "event": event})
}

func (GraphicTracer) Zoom(level int) {
	logging.Trace("graphic.zoom", map[string]interface{}{"zoom": level})
}

func (PromptTracer) Bound(screen, stage string, value float64) {
	logging.Trace("prompt.bound", map[string]interface{}{"screen": screen, "stage": stage, "value": value})
}
