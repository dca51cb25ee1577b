// Package launcher boots the interactive board: config, database, TUI
// program, with a clean shutdown on interrupt.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelar/tarea/internal/app"
	"github.com/avelar/tarea/internal/config"
	"github.com/avelar/tarea/internal/database"
	"github.com/avelar/tarea/internal/tui"
)

// Launch opens the database at path and runs the board until the user quits.
// The connection is closed before returning on every path.
func Launch(path string) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	a := app.New(database.NewRepository(db))

	p := tea.NewProgram(
		tui.NewModel(a, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run board: %w", err)
	}
	return nil
}
