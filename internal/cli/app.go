package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/isaw"
	"github.com/aretw0/isaw/internal/config"
	"github.com/aretw0/isaw/internal/logging"
	"github.com/aretw0/isaw/internal/presentation/tui"
	"github.com/aretw0/isaw/pkg/domain"
	"github.com/aretw0/isaw/pkg/observability"
)

// GlobalOptions contains the persistent flags shared by every command.
// The *Set fields record whether the user passed the flag explicitly,
// in which case it overrides the config file.
type GlobalOptions struct {
	ConfigPath     string
	ConfigSet      bool
	Debug          bool
	DebugSet       bool
	Color          string
	ColorSet       bool
	MetricsFile    string
	MetricsFileSet bool
}

// App holds everything a single command invocation needs.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Engine  *isaw.Engine
	Metrics *observability.Metrics
	Out     io.Writer

	printer *tui.Printer
	color   string
}

// NewApp loads the configuration, applies flag overrides and builds the engine.
func NewApp(g GlobalOptions, out, errOut io.Writer) (*App, error) {
	path := g.ConfigPath
	if !g.ConfigSet {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, g.ConfigSet)
	if err != nil {
		return nil, err
	}

	if g.DebugSet {
		cfg.Debug = g.Debug
	}
	if g.ColorSet {
		cfg.Color = g.Color
	}
	if g.MetricsFileSet {
		cfg.MetricsFile = g.MetricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := createLogger(cfg, errOut)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Out:     out,
		printer: tui.NewPrinter(out, tui.Profile(cfg.Color, out)),
		color:   cfg.Color,
	}

	hooks := domain.Hooks{}
	if cfg.Debug {
		hooks = createDebugHooks(logger)
	}
	if cfg.MetricsFile != "" {
		app.Metrics = observability.NewMetrics()
		hooks = hooks.Merge(app.Metrics.Hooks())
	}

	app.Engine = isaw.New(
		isaw.WithLogger(logger),
		isaw.WithHooks(hooks),
	)

	logger.Debug("Config Loaded", "path", path, "color", cfg.Color, "limit", cfg.Limit)
	return app, nil
}

// Close flushes the metrics textfile, if one was requested.
func (a *App) Close() error {
	if a.Metrics == nil {
		return nil
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	a.Logger.Debug("Metrics Written", "path", a.Config.MetricsFile)
	return nil
}

// createLogger configures the application logger.
// In debug mode it writes debug records to errOut; otherwise it honours log_level.
func createLogger(cfg config.Config, errOut io.Writer) (*slog.Logger, error) {
	if cfg.Debug {
		return logging.New(errOut, slog.LevelDebug, cfg.LogFormat == "json"), nil
	}
	if cfg.LogLevel == "" {
		return logging.NewNop(), nil
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(errOut, level, cfg.LogFormat == "json"), nil
}

func createDebugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnReject: func(mode domain.Mode, stage domain.Stage, candidate string) {
			logger.Debug("Candidate Rejected", "mode", string(mode), "stage", string(stage), "candidate", candidate)
		},
		OnCapReached: func(mode domain.Mode, limit int) {
			logger.Debug("Result Cap Reached", "mode", string(mode), "limit", limit)
		},
	}
}
