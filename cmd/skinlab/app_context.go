package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	appdesigner "github.com/alexisbeaulieu97/skinlab/internal/application/designer"
	"github.com/alexisbeaulieu97/skinlab/internal/config"
	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/generator"
	"github.com/alexisbeaulieu97/skinlab/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/skinlab/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/skinlab/internal/logger"
	"github.com/alexisbeaulieu97/skinlab/internal/ports"
	"github.com/alexisbeaulieu97/skinlab/internal/presets"
)

const annotationInteractive = "skinlab/interactive"

// GeneratorFactory builds the palette generator from configuration.
type GeneratorFactory func(cfg config.GeneratorConfig, logger ports.Logger) (ports.PaletteGenerator, error)

func defaultGeneratorFactory(cfg config.GeneratorConfig, logger ports.Logger) (ports.PaletteGenerator, error) {
	return generator.New(cfg, logger)
}

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  ports.Logger
	Events  ports.EventPublisher
	Presets []theme.Theme

	lookupEnv    config.LookupEnv
	newGenerator GeneratorFactory
	newClipboard ClipboardFactory
	logSink      io.Writer
	backlog      *logging.Backlog
	logFile      *os.File
}

func newAppContext() *AppContext {
	backlog := logging.NewBacklog(0)
	return &AppContext{
		Logger:       backlog.Logger(),
		lookupEnv:    os.LookupEnv,
		newGenerator: defaultGeneratorFactory,
		newClipboard: defaultClipboardFactory,
		logSink:      os.Stderr,
		backlog:      backlog,
	}
}

// Bootstrap loads configuration and presets, then replaces the startup
// backlog logger with the configured one and flushes what was buffered.
func (a *AppContext) Bootstrap(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path, required := flags.configPath, flags.configPath != ""
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			a.Logger.Debug(ctx, "no default config path", "error", err)
			path = ""
		}
	}
	a.Logger.Debug(ctx, "loading configuration", "path", path, "required", required)

	cfg, err := config.Load(path, required, a.lookupEnv)
	if err != nil {
		return newCommandError("load configuration", path, err, "Fix the reported field or remove the file to use defaults.")
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if err := config.Validate(cfg); err != nil {
		return newCommandError("load configuration", "applying command-line flags", err, "Use --log-format text or --log-format json.")
	}
	a.Config = cfg

	builtin, err := presets.Builtin()
	if err != nil {
		return newCommandError("load presets", "parsing built-in presets", err, "This is a build defect; please report it.")
	}
	a.Presets = builtin

	log, err := a.buildLogger(cmd.Annotations[annotationInteractive] == "true")
	if err != nil {
		return newCommandError("configure logging", cfg.Log.File, err, "Check that the log file directory exists and is writable.")
	}
	dropped := a.backlog.Drain(log)
	a.Logger = log
	if dropped > 0 {
		a.Logger.Warn(ctx, "startup log entries dropped", "count", dropped)
	}
	a.Events = events.NewLoggingPublisher(a.Logger.With("component", "events"))

	a.Logger.Debug(ctx, "configuration loaded",
		"provider", cfg.Generator.Provider,
		"model", cfg.Generator.Model,
		"api_key_set", cfg.Generator.APIKey != "",
		"presets", len(a.Presets),
	)
	return nil
}

// buildLogger picks the sink and the adapter. Interactive commands never log
// to the terminal: they use the log file or nothing.
func (a *AppContext) buildLogger(interactive bool) (ports.Logger, error) {
	cfg := a.Config.Log

	sink := a.logSink
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		sink = f
	} else if interactive {
		return logging.NewNoOpLogger(), nil
	}

	if cfg.Format == logging.FormatJSON {
		return logger.New(logger.Options{
			Level:     cfg.Level,
			Writer:    sink,
			Layer:     "cli",
			Component: "skinlab",
		})
	}
	return logging.New(logging.Options{
		Writer:    sink,
		Level:     cfg.Level,
		Format:    logging.FormatText,
		Layer:     "cli",
		Component: "skinlab",
	})
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// CommandContext returns the command's context tagged with a correlation id
// and a logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = logging.EnsureCorrelationID(ctx)
	return ctx, a.Logger.With("component", component)
}

// DesignerService wires a fresh theme store and the configured generator.
func (a *AppContext) DesignerService(logger ports.Logger) (*appdesigner.Service, error) {
	gen, err := a.newGenerator(a.Config.Generator, logger)
	if err != nil {
		return nil, newCommandError("create generator", a.Config.Generator.Provider, err, "Set generator.provider to gemini or openai.")
	}
	return appdesigner.NewService(appdesigner.Options{
		Store:     theme.NewStore(a.Presets),
		Generator: gen,
		Logger:    logger,
		Events:    a.Events,
	})
}

// FindPreset looks up a built-in theme by id.
func (a *AppContext) FindPreset(id string) (theme.Theme, bool) {
	for _, t := range a.Presets {
		if t.ID == id {
			return t, true
		}
	}
	return theme.Theme{}, false
}
