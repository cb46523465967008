package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() {
		SetLogger(nil)
		SetTraceEnabled(false)
	})
	return logs
}

func TestTraceRespectsToggle(t *testing.T) {
	logs := withObserver(t)
	Trace("screen.switch", map[string]interface{}{"to": "table"})
	if logs.Len() != 0 {
		t.Fatalf("expected no entries while tracing disabled, got %d", logs.Len())
	}
	SetTraceEnabled(true)
	Trace("screen.switch", map[string]interface{}{"to": "table"})
	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "screen.switch" {
		t.Fatalf("expected event name as message, got %q", entry.Message)
	}
	if _, ok := entry.ContextMap()["payload"]; !ok {
		t.Fatalf("expected payload field, got %v", entry.ContextMap())
	}
}

func TestErrorIgnoresNil(t *testing.T) {
	logs := withObserver(t)
	Error(nil)
	Error(errors.New("boom"))
	if logs.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", logs.Len())
	}
	if got := logs.All()[0].Message; got != "boom" {
		t.Fatalf("expected message boom, got %q", got)
	}
}
