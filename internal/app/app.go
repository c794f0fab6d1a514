package app

import (
	"go.uber.org/zap"

	"bslpack/internal/export"
	"bslpack/internal/source"
)

// App bundles the pipeline dependencies for the CLI.
type App struct {
	Config  Config
	Log     *zap.Logger
	Sources *source.Reader
	Writer  *export.Writer
}

// New constructs the dependency graph from cfg.
func New(cfg Config, log *zap.Logger) *App {
	return &App{
		Config:  cfg,
		Log:     log,
		Sources: source.NewReader(log),
		Writer:  export.NewWriter(log),
	}
}
