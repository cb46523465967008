// Numcanvas paints numeric-method demonstrations on a terminal canvas.
//
// A vertical menu opens a function table, a live-zoom plot, a bisection
// root finder, numeric integration, a scrolling marquee and credits. Keys:
// up/k, down/j, enter and esc.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/numcanvas/internal/app"
	"github.com/atomicstack/numcanvas/internal/config"
	"github.com/atomicstack/numcanvas/internal/logging"
	"github.com/atomicstack/numcanvas/internal/logging/events"
	"github.com/atomicstack/numcanvas/internal/theme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// exitError carries the process exit code for a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(execute(os.Args[1:], os.Environ()))
}

func execute(args, environ []string) int {
	cmd := newRootCmd(args, environ)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	styles := theme.Default()
	var ee *exitError
	if errors.As(err, &ee) && ee.code == 1 {
		logging.Error(err)
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error:")+" "+err.Error())
		return 1
	}
	fmt.Fprintln(os.Stderr, styles.Error.Render("Configuration error:")+" "+err.Error())
	return 2
}

func newRootCmd(argv, environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numcanvas",
		Short: "Numeric methods on a terminal canvas",
		Long: `Numcanvas paints a character-grid canvas and lets you browse numeric
method demonstrations from a vertical menu:

  - a table of two functions with their maxima and minima highlighted
  - a plot of sin and cos with live zoom
  - bisection root finding and numeric integration over a chosen segment
  - a scrolling marquee and a credits screen

Use up/k and down/j to move, enter to select and esc to go back.`,
		Example: `  # Start on the menu
  numcanvas

  # Open the plot directly, hosted by Bubble Tea
  numcanvas --start graph --driver tea

  # Use custom demonstration parameters
  numcanvas --content params.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetArgs(argv)
	binder := config.Bind(cmd.Flags(), environ)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		runtimeCfg, err := binder.Config(argv)
		if err != nil {
			return err
		}
		if err := config.Validate(runtimeCfg); err != nil {
			return err
		}
		logging.Configure(runtimeCfg.Logging.FilePath)
		logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
		defer logging.Sync()

		traceStartup(runtimeCfg)

		if err := app.Run(runtimeCfg.App); err != nil {
			return &exitError{code: 1, err: err}
		}
		return nil
	}
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
