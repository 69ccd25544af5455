package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shouniet/medpetrx/internal/model"
)

// Run starts the interactive review session and blocks until it ends. It
// returns the confirmation result when the user submitted the batch, or nil
// when they quit without submitting.
func Run(ctx context.Context, cfg Config) (*model.ConfirmResult, error) {
	if cfg.Backend == nil {
		return nil, fmt.Errorf("backend is required")
	}

	program := tea.NewProgram(NewModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("review session failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}
	if m.Err() != nil {
		return nil, m.Err()
	}
	return m.Result(), nil
}
