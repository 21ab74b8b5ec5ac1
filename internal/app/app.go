package app

import (
	"database/sql"
	"fmt"

	"github.com/khrees2412/labyrinth/internal/config"
	"github.com/khrees2412/labyrinth/internal/logger"
	"github.com/khrees2412/labyrinth/internal/matcher"
	"github.com/khrees2412/labyrinth/internal/metrics"
)

// App is the dependency container for the CLI application
type App struct {
	DB      *sql.DB
	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics
	Matcher *matcher.Matcher
}

// NewApp wires the logger, metrics and matcher from cfg around an open
// database
func NewApp(cfg *config.Config, db *sql.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil: %w", ErrInvalidArgument)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	m := metrics.New()
	return &App{
		DB:      db,
		Config:  cfg,
		Logger:  log,
		Metrics: m,
		Matcher: matcher.New(
			matcher.WithThreshold(cfg.MatchThreshold),
			matcher.WithLimit(cfg.MaxResults),
			matcher.WithWorkers(cfg.Workers),
			matcher.WithLogger(log.WithFields(map[string]interface{}{"component": "matcher"})),
			matcher.WithRecorder(m),
		),
	}, nil
}

// Close flushes metrics and the logger, then closes the database
func (a *App) Close() error {
	if a.Metrics != nil && a.Config != nil {
		if err := a.Metrics.WriteFile(a.Config.MetricsFile); err != nil {
			a.Logger.Warn("failed to write metrics file", map[string]interface{}{
				"path":  a.Config.MetricsFile,
				"error": err.Error(),
			})
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
