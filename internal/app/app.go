package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/linkgridgo/internal/config"
	"github.com/vk/linkgridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the link
// description already loaded. A failure to load the description is a fatal
// startup error and panics; the caller recovers it into a clean exit.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ProjectPath)
	if err != nil {
		panic(fmt.Errorf("failed to load link description: %w", err))
	}
	logger.Debug("Link description loaded into unified model.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  model,
	}
}

// Model returns the loaded configuration model. This is primarily for
// testing.
func (a *App) Model() *config.Model {
	return a.model
}
