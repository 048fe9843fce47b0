package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.eeva.app/hub/internal/ui/style"
)

var helpStyle = lipgloss.NewStyle().
	Foreground(style.Slate).
	Faint(true)
