package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the browser and blocks until the user quits or ctx is canceled.
// A catalog that fails to load or join is returned as the error.
func Run(ctx context.Context, opts ...Option) error {
	m := New(opts...)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
