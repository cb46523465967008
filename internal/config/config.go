package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/numcanvas/internal/app"
	"github.com/atomicstack/numcanvas/internal/content"
	"github.com/atomicstack/numcanvas/internal/screen"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrUnknownScreen is returned when --start matches no screen.
var ErrUnknownScreen = errors.New("unknown screen")

// Config captures runtime configuration for the application.
type Config struct {
	App         app.Config
	Logging     Logging
	ContentPath string
	Flags       map[string]string
	Args        []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDebounce      = "NUMCANVAS_DEBOUNCE"
	envFrameInterval = "NUMCANVAS_FRAME_INTERVAL"
	envIdle          = "NUMCANVAS_IDLE"
	envReserveRows   = "NUMCANVAS_RESERVE_ROWS"
	envStart         = "NUMCANVAS_START"
	envDriver        = "NUMCANVAS_DRIVER"
	envContent       = "NUMCANVAS_CONTENT"
	envHint          = "NUMCANVAS_HINT"
	envTrace         = "NUMCANVAS_TRACE"
	envLogFile       = "NUMCANVAS_LOG_FILE"
)

// Binder holds the flags registered on a FlagSet.
type Binder struct {
	debounce    *time.Duration
	frame       *time.Duration
	idle        *time.Duration
	reserveRows *int
	start       *string
	driver      *string
	contentPath *string
	hint        *bool
	trace       *bool
	logFile     *string
}

// Bind registers every flag on fs. Defaults come from environ when the
// matching NUMCANVAS_* variable is set.
func Bind(fs *pflag.FlagSet, environ []string) *Binder {
	env := parseEnv(environ)
	def := app.DefaultConfig()
	return &Binder{
		debounce:    fs.Duration("debounce", envOrDuration(env, envDebounce, def.Debounce), "minimum gap between accepted key presses"),
		frame:       fs.Duration("frame-interval", envOrDuration(env, envFrameInterval, def.FrameInterval), "animation step period"),
		idle:        fs.Duration("idle", envOrDuration(env, envIdle, def.Idle), "pause between loop iterations (capped at --debounce)"),
		reserveRows: fs.Int("reserve-rows", envOrInt(env, envReserveRows, def.ReserveRows), "terminal rows kept free below the canvas"),
		start:       fs.String("start", envOrDefault(env, envStart, def.Start.String()), "first screen ("+strings.Join(screen.Names(), ", ")+"); fuzzy matched"),
		driver:      fs.String("driver", envOrDefault(env, envDriver, def.Driver), "terminal driver: raw or tea"),
		contentPath: fs.String("content", envOrDefault(env, envContent, ""), "YAML file with demonstration parameters"),
		hint:        fs.Bool("hint", envOrBool(env, envHint, def.ShowHint), "show the key hint line"),
		trace:       fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:     fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config resolves the parsed flags. args is recorded for trace output.
func (b *Binder) Config(args []string) (Config, error) {
	if *b.reserveRows < 0 {
		return Config{}, fmt.Errorf("reserve-rows must be >= 0 (got %d)", *b.reserveRows)
	}
	start, err := ResolveScreen(*b.start)
	if err != nil {
		return Config{}, err
	}
	params := content.DefaultParams()
	if path := strings.TrimSpace(*b.contentPath); path != "" {
		if params, err = LoadContent(path); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		App: app.Config{
			Debounce:      *b.debounce,
			FrameInterval: *b.frame,
			Idle:          *b.idle,
			ReserveRows:   *b.reserveRows,
			Start:         start,
			Driver:        strings.ToLower(strings.TrimSpace(*b.driver)),
			ShowHint:      *b.hint,
			Content:       params,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
		},
		ContentPath: *b.contentPath,
		Flags: map[string]string{
			"debounce":      b.debounce.String(),
			"frameInterval": b.frame.String(),
			"idle":          b.idle.String(),
			"reserveRows":   strconv.Itoa(*b.reserveRows),
			"start":         *b.start,
			"driver":        *b.driver,
			"content":       *b.contentPath,
			"hint":          strconv.FormatBool(*b.hint),
			"trace":         strconv.FormatBool(*b.trace),
			"logFile":       *b.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// ResolveScreen maps a screen name to its ID. Exact names and menu numbers
// win; otherwise the closest fuzzy match is used.
func ResolveScreen(name string) (screen.ID, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return screen.Menu, nil
	}
	if id, ok := screen.Parse(trimmed); ok && id.Valid() {
		return id, nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil && screen.ID(n).Valid() {
		return screen.ID(n), nil
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, screen.Names())
	if len(ranks) == 0 {
		return screen.Menu, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
	}
	sort.Sort(ranks)
	return screen.ID(ranks[0].OriginalIndex), nil
}

// LoadContent reads demonstration parameters from a YAML file. Missing
// fields keep their defaults.
func LoadContent(path string) (content.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return content.Params{}, fmt.Errorf("read content file: %w", err)
	}
	params := content.DefaultParams()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return content.Params{}, fmt.Errorf("parse content file %s: %w", path, err)
	}
	return params.Normalize(), nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks option ranges that flag parsing cannot express.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Debounce < 0 {
		return fmt.Errorf("debounce must be >= 0 (got %s)", a.Debounce)
	}
	if a.FrameInterval <= 0 {
		return fmt.Errorf("frame-interval must be > 0 (got %s)", a.FrameInterval)
	}
	if a.Idle < 0 {
		return fmt.Errorf("idle must be >= 0 (got %s)", a.Idle)
	}
	switch a.Driver {
	case app.DriverRaw, app.DriverTea:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", app.DriverRaw, app.DriverTea, a.Driver)
	}
	return nil
}
