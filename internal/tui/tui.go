// Package tui is the interactive materials page: search, stage, save and
// reconcile against the API from a terminal.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(ctx context.Context, b Backend, opts Options) error {
	m := New(b, opts)
	defer m.Close()

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
