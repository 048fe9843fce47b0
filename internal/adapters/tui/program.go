package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.eeva.app/hub/internal/ui/output"
)

// Run shows m until the user quits or ctx is cancelled.
func Run(ctx context.Context, m *Model, in io.Reader, out io.Writer, opts ...tea.ProgramOption) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	lipgloss.SetColorProfile(output.ColorProfile())

	cancel := m.Subscribe()
	defer cancel()

	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	}, opts...)

	_, err := tea.NewProgram(m, opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
