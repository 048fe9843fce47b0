// Package detector picks between the live terminal view and plain output.
package detector

import (
	"io"
	"strings"

	"go.eeva.app/hub/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode is how tile listings are rendered.
type OutputMode int

const (
	// ModeAuto chooses from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI opens the live view.
	ModeTUI
	// ModeLinear prints once and exits.
	ModeLinear
)

func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// ParseMode parses the --output flag. "ci" is accepted as an alias of linear.
func ParseMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidOutputMode, "output", s)
	}
}

type fder interface {
	Fd() uintptr
}

// Detect returns ModeTUI when w is a terminal outside CI and ModeLinear otherwise.
func Detect(w io.Writer, getenv func(string) string) OutputMode {
	f, ok := w.(fder)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // file descriptors fit in int
		return ModeLinear
	}
	if ci := getenv("CI"); ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeTUI
}

// Resolve applies a requested mode over the detected one.
func Resolve(detected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return detected
	}
	return requested
}
