package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/buildlevels/internal/config"
	"github.com/specialistvlad/buildlevels/internal/render"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW     io.Writer
	config   *Config
	logger   *slog.Logger
	loader   config.Loader
	renderer *render.Renderer
}

// NewApp is the constructor for the main application. Results go to outW and
// logs to logW, so JSON output stays machine-readable.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		config:   cfg,
		logger:   logger,
		loader:   loader,
		renderer: render.New(outW, cfg.Color),
	}
}
