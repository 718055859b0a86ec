package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/muesli/termenv"
)

// Globals are flags shared by every command. Set flags override the config file.
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"Path to HCL config file (optional)"`
	LogFile  string `help:"Write debug log to this file"`
	LogLevel string `help:"Log level (debug, info, warn, error)"`
	NoColor  bool   `help:"Disable colored output"`
}

// environment is the resolved configuration a command runs with
type environment struct {
	config   *config.Config
	logger   *log.Logger
	renderer *display.Renderer
	closer   io.Closer
}

func (e *environment) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// loadConfig reads the config file and applies flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", g.Config, err)
	}

	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if g.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(g.LogLevel)
	}
	if g.NoColor {
		cfg.Display.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setup resolves config, opens the log and builds the renderer for out
func (g *Globals) setup(out io.Writer) (*environment, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	color := !cfg.Display.NoColor && display.SupportsColor(out)
	if !color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return &environment{
		config:   cfg,
		logger:   logger,
		renderer: display.NewRenderer(cfg.Styles(), color),
		closer:   closer,
	}, nil
}

// newLogger writes to the configured file, or nowhere so the table stays clean
func newLogger(settings *config.LogSettings) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer
	)
	if settings.File != "" {
		f, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})
	return logger, closer, nil
}
