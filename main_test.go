package main

import (
	"testing"

	"github.com/atomicstack/numcanvas/internal/app"
	"github.com/atomicstack/numcanvas/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.DefaultConfig(),
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"debounce": "250ms",
			"start":    "graph",
			"driver":   "tea",
		},
		Args: []string{"--start", "graph"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["start"] != "graph" {
		t.Fatalf("expected start flag %q, got %v", "graph", flagsValue["start"])
	}
	if flagsValue["debounce"] != "250ms" {
		t.Fatalf("expected debounce 250ms, got %v", flagsValue["debounce"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected logFile trace.log, got %v", flagsValue["logFile"])
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 2 {
		t.Fatalf("expected argv in payload, got %v", payload["argv"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
}

func TestExecuteConfigurationErrorsExitTwo(t *testing.T) {
	cases := [][]string{
		{"--start", "zzz"},
		{"--driver", "curses"},
		{"--no-such-flag"},
		{"positional"},
	}
	for _, args := range cases {
		if code := execute(args, nil); code != 2 {
			t.Fatalf("%v: expected exit code 2, got %d", args, code)
		}
	}
}

func TestExecuteHelpExitsZero(t *testing.T) {
	if code := execute([]string{"--help"}, nil); code != 0 {
		t.Fatalf("expected help to exit 0, got %d", code)
	}
}
