package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/deck/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	active    Config

	// sinks holds one open handle per log file for the life of the process.
	// Guarded by loggersMu.
	sinks = make(map[string]*os.File)

	// stderr is swapped in tests.
	stderr       io.Writer = os.Stderr
	stderrIsTerm           = func() bool {
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
)

// Configure installs cfg as the logging configuration and drops every cached
// component logger so the next NewLogger call picks it up.
func Configure(cfg Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	active = cfg
	loggers = make(map[string]*logrus.Entry)
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// Loggers are cached per component.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := newLogger(active)
	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

func newLogger(cfg Config) *logrus.Logger {
	logger := logrus.New()

	levelStr := "info"
	if env := os.Getenv("DECK_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if cfg.Level != "" {
		levelStr = cfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("DECK_LOG_CALLER") == "true" || cfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch cfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: cfg.Format})
	}

	var writers []io.Writer

	if cfg.File.Enabled && cfg.File.Path != "" {
		if file, err := openSink(cfg.File.Path); err != nil {
			logger.Warnf("Failed to open log file %s: %v", cfg.File.Path, err)
		} else {
			writers = append(writers, file)
		}
	}

	if shouldLogToStderr(cfg, logger.GetLevel()) {
		writers = append(writers, stderr)
	}

	switch len(writers) {
	case 0:
		// Interactive terminals stay clean; the TUI owns the screen.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger
}

// openSink returns the shared handle for the log file at path, opening it
// on first use. Callers hold loggersMu.
func openSink(path string) (*os.File, error) {
	expanded, err := pathutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, err
	}
	if f, ok := sinks[abs]; ok {
		return f, nil
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(abs, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	sinks[abs] = f
	return f, nil
}

// shouldLogToStderr applies the structured_to_stderr mode. In "auto" mode logs
// reach stderr only when debugging or when stderr is not a terminal.
func shouldLogToStderr(cfg Config, level logrus.Level) bool {
	switch cfg.Format.StructuredToStderr {
	case "always":
		return true
	case "never":
		return false
	}
	isDebug := os.Getenv("DECK_DEBUG") == "1" || level >= logrus.DebugLevel
	return isDebug || !stderrIsTerm()
}
