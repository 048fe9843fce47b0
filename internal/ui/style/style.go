// Package style holds the colors and glyphs shared by every terminal surface of the hub.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#0E9384")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#101828")
	Green  = lipgloss.Color("#12B76A")
	Red    = lipgloss.Color("#F04438")
	Yellow = lipgloss.Color("#F79009")
)

// Glyphs.
const (
	Check    = "✓"
	Cross    = "✗"
	Warning  = "!"
	Spinner  = "↻"
	Dot      = "●"
	Circle   = "○"
	Branch   = "├── "
	Last     = "└── "
	Pipe     = "│   "
	Indent   = "    "
	Ellipsis = "…"
)
