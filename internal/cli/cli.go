package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/avelar/tarea/internal/app"
	"github.com/avelar/tarea/internal/config"
	"github.com/avelar/tarea/internal/database"
)

// ContextKey is the type for values stashed on a command context.
type ContextKey string

const (
	// AppContextKey carries a pre-built application container. Tests use
	// it to point commands at a temporary database.
	AppContextKey ContextKey = "tareaApp"

	// DBPathContextKey carries the database path the root command resolved
	// from the global --db flag.
	DBPathContextKey ContextKey = "tareaDBPath"
)

// CLI bundles the application container with the resources this
// invocation owns.
type CLI struct {
	App *app.App
	db  *sql.DB
}

// NewCLI opens the database at dbPath and builds the application container.
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)

	return &CLI{
		App: app.New(repo),
		db:  db,
	}, nil
}

// GetCLIFromContext returns the CLI for the current invocation. A container
// injected by tests wins; otherwise the database is opened at the path
// resolved from flag, environment, and config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if injected, ok := ctx.Value(AppContextKey).(*app.App); ok && injected != nil {
		return &CLI{App: injected}, nil
	}

	path, _ := ctx.Value(DBPathContextKey).(string)
	if path == "" {
		path = ResolveDBPath("")
	}
	return NewCLI(ctx, path)
}

// WithApp returns a context carrying a pre-built application container.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppContextKey, a)
}

// ResolveDBPath picks the database location. Precedence: the --db flag,
// then the TAREA_DB environment variable, then the config file, then the
// default under the home directory.
func ResolveDBPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv("TAREA_DB"); env != "" {
		return env
	}
	if cfg, err := config.Load(); err == nil && cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	path, err := database.DefaultPath()
	if err != nil {
		// No home directory; last resort is the working directory.
		return "tarea.db"
	}
	return path
}

// Close releases resources owned by this invocation. Injected containers
// keep their database open; whoever built them closes it.
func (c *CLI) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
