// Package linear prints cache snapshots and revalidation outcomes as plain,
// line oriented text for terminals and CI logs.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.eeva.app/hub/internal/adapters/labels"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/ui/output"
	"go.eeva.app/hub/internal/ui/style"
)

// Renderer writes tile trees and outcomes to a single writer.
type Renderer struct {
	w      io.Writer
	output *termenv.Output
	labels *labels.Labels
}

// NewRenderer creates a Renderer writing to w, or stdout when w is nil.
func NewRenderer(w io.Writer, l *labels.Labels) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	if l == nil {
		l = labels.New(domain.DefaultLocale)
	}
	return &Renderer{
		w:      w,
		output: output.New(w),
		labels: l,
	}
}

// Header prints the collection name, its size and its fetch state.
func (r *Renderer) Header(entry domain.CacheEntry, count int) {
	title := r.styled(r.labels.CacheKey(entry.Key), style.Teal, true)

	var state string
	switch {
	case entry.IsRefreshing:
		state = r.styled(style.Spinner+" "+r.labels.Refreshing(), style.Yellow, false)
	case !entry.Fetched():
		state = r.styled(r.labels.NeverFetched(), style.Slate, false)
	default:
		state = r.styled(entry.LastFetchedAt.UTC().Format(time.RFC3339), style.Slate, false)
	}

	_, _ = fmt.Fprintf(r.w, "%s %s %s\n", title, r.labels.Count(count), state)
}

// Tiles prints the visible tiles as a tree grouped by parent.
func (r *Renderer) Tiles(tiles []domain.Tile) {
	for _, root := range domain.Tree(domain.VisibleTiles(tiles)) {
		r.tileLine("", root.Tile)
		r.children("", root.Children)
	}
}

func (r *Renderer) children(prefix string, nodes []*domain.TileNode) {
	for i, node := range nodes {
		branch, next := style.Branch, style.Pipe
		if i == len(nodes)-1 {
			branch, next = style.Last, style.Indent
		}
		r.tileLine(prefix+r.styled(branch, style.Slate, false), node.Tile)
		r.children(prefix+r.styled(next, style.Slate, false), node.Children)
	}
}

func (r *Renderer) tileLine(prefix string, t domain.Tile) {
	kind := r.styled("("+r.labels.TileType(t.Type)+")", style.Slate, false)
	_, _ = fmt.Fprintf(r.w, "%s%s %s\n", prefix, t.Name, kind)
}

// Outcome prints one revalidation result. A non-nil err is shown after the outcome.
func (r *Renderer) Outcome(key domain.CacheKey, outcome domain.Outcome, err error) {
	var glyph string
	switch outcome {
	case domain.OutcomeCommitted:
		glyph = r.styled(style.Check, style.Green, false)
	case domain.OutcomeFailed:
		glyph = r.styled(style.Cross, style.Red, false)
	case domain.OutcomeDiscarded:
		glyph = r.styled(style.Warning, style.Yellow, false)
	default:
		glyph = r.styled(style.Dot, style.Slate, false)
	}

	line := fmt.Sprintf("%s %-9s %s", glyph, key, outcome)
	if err != nil {
		line += r.styled(": "+err.Error(), style.Red, false)
	}
	_, _ = fmt.Fprintln(r.w, strings.TrimRight(line, " "))
}

func (r *Renderer) styled(s string, c lipgloss.Color, bold bool) string {
	st := r.output.String(s).Foreground(r.output.Color(string(c)))
	if bold {
		st = st.Bold()
	}
	return st.String()
}
