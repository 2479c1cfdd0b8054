// Package serve holds the tablero serve command: the HTTP API plus the
// event hub that streams board changes to remote boards
package serve

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Long: `Serve the JSON API and the /api/events stream until interrupted.

Examples:
  tablero serve
  tablero serve --addr=0.0.0.0:7420
  tablero serve --memory   # throwaway in-memory board
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (default: server.addr from config)")
	cmd.Flags().Bool("memory", false, "Use an in-memory database")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg, err := cli.ConfigFromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}
	memory, _ := cmd.Flags().GetBool("memory")

	db, err := openDB(ctx, cfg, memory)
	if err != nil {
		return err
	}

	return Run(ctx, db, cfg, addr)
}

func openDB(ctx context.Context, cfg *config.Config, memory bool) (*sql.DB, error) {
	if memory {
		return database.OpenMemory(ctx)
	}
	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// Run serves db on addr until ctx is cancelled. It owns db and closes it.
func Run(ctx context.Context, db *sql.DB, cfg *config.Config, addr string) error {
	logger := slog.Default()

	hub := events.NewHub(
		events.WithBroadcastBuffer(cfg.Events.Buffer),
		events.WithSubscriberBuffer(cfg.Events.SubscriberBuffer),
		events.WithHubLogger(logger),
	)
	go hub.Run(ctx)

	a := app.New(db, app.WithPublisher(hub), app.WithLogger(logger))
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	logger.Info("tablero server starting", "addr", addr, "database", cfg.DatabasePath, "pid", os.Getpid())
	srv := api.NewServer(a, api.WithHub(hub), api.WithServerLogger(logger))
	if err := srv.Run(ctx, addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("tablero server shut down gracefully")
	return nil
}
