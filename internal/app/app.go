// Package app wires the repository, event publisher and services together
package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	columnservice "github.com/thenoetrevino/tablero/internal/services/column"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
	projectservice "github.com/thenoetrevino/tablero/internal/services/project"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db        *sql.DB
	repo      *database.Repository
	publisher events.Publisher
	logger    *slog.Logger

	// Service layer (business logic)
	ProjectService projectservice.Service
	ColumnService  columnservice.Service
	TaskService    taskservice.Service
	LabelService   labelservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		db:             db,
		repo:           repo,
		publisher:      cfg.publisher,
		logger:         cfg.logger,
		ProjectService: projectservice.NewService(repo, cfg.publisher),
		ColumnService:  columnservice.NewService(repo, cfg.publisher),
		TaskService:    taskservice.NewService(repo, cfg.publisher),
		LabelService:   labelservice.NewService(repo, cfg.publisher),
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database connection
func (a *App) Close() error {
	return a.db.Close()
}
