package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/debugmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "DEBUGMENU_WIDTH"
	envHeight     = "DEBUGMENU_HEIGHT"
	envColumns    = "DEBUGMENU_COLUMNS"
	envRootName   = "DEBUGMENU_ROOT_NAME"
	envFPS        = "DEBUGMENU_FPS"
	envBreadcrumb = "DEBUGMENU_BREADCRUMB"
	envDrag       = "DEBUGMENU_DRAG"
	envHidden     = "DEBUGMENU_HIDDEN"
	envShowFooter = "DEBUGMENU_FOOTER"
	envSamples    = "DEBUGMENU_SAMPLES"
	envPoll       = "DEBUGMENU_POLL"
	envTrace      = "DEBUGMENU_TRACE"
	envLogFile    = "DEBUGMENU_LOG_FILE"
)

const (
	defaultWidth   = 48
	defaultHeight  = 16
	defaultColumns = 2
	defaultFPS     = 30
	defaultPoll    = time.Second
	maxFPS         = 120
)

// LoadArgs parses configuration from CLI arguments with environment
// variables as defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("debugmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, defaultWidth), "menu window width in cells")
	height := fs.Int("height", envOrInt(env, envHeight, defaultHeight), "menu window height in rows")
	columns := fs.Int("columns", envOrInt(env, envColumns, defaultColumns), "buttons per row in directory views")
	rootName := fs.String("root-name", envOrDefault(env, envRootName, "Debug"), "name shown for the root directory")
	fps := fs.Int("fps", envOrInt(env, envFPS, defaultFPS), "frames per second for the overlay loop")
	breadcrumb := fs.Bool("breadcrumb", envOrBool(env, envBreadcrumb, true), "show the breadcrumb strip below the toolbar")
	drag := fs.Bool("drag", envOrBool(env, envDrag, true), "allow dragging the window and scrolling by dragging")
	hidden := fs.Bool("hidden", envOrBool(env, envHidden, false), "start with the overlay hidden")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	samples := fs.Bool("samples", envOrBool(env, envSamples, true), "register the sample panels")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, defaultPoll), "interval between runtime samples")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			Columns:      *columns,
			RootName:     *rootName,
			FPS:          *fps,
			Breadcrumb:   *breadcrumb,
			Drag:         *drag,
			Hidden:       *hidden,
			ShowFooter:   *footer,
			Samples:      *samples,
			PollInterval: *poll,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"columns":    strconv.Itoa(*columns),
			"rootName":   *rootName,
			"fps":        strconv.Itoa(*fps),
			"breadcrumb": strconv.FormatBool(*breadcrumb),
			"drag":       strconv.FormatBool(*drag),
			"hidden":     strconv.FormatBool(*hidden),
			"footer":     strconv.FormatBool(*footer),
			"samples":    strconv.FormatBool(*samples),
			"poll":       poll.String(),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
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

// Validate rejects values the overlay cannot lay out or schedule.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < app.MinWidth {
		return fmt.Errorf("width must be >= %d (got %d)", app.MinWidth, a.Width)
	}
	if a.Height < app.MinHeight {
		return fmt.Errorf("height must be >= %d (got %d)", app.MinHeight, a.Height)
	}
	if a.Columns < 1 {
		return fmt.Errorf("columns must be >= 1 (got %d)", a.Columns)
	}
	if a.FPS < 1 || a.FPS > maxFPS {
		return fmt.Errorf("fps must be between 1 and %d (got %d)", maxFPS, a.FPS)
	}
	if a.PollInterval <= 0 {
		return fmt.Errorf("poll must be positive (got %s)", a.PollInterval)
	}
	if strings.TrimSpace(a.RootName) == "" {
		return fmt.Errorf("root-name must not be empty")
	}
	return nil
}
