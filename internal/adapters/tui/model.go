// Package tui provides the live terminal view of a cached tile collection.
package tui

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.eeva.app/hub/internal/adapters/filter"
	"go.eeva.app/hub/internal/adapters/labels"
	"go.eeva.app/hub/internal/adapters/linear"
	"go.eeva.app/hub/internal/core/domain"
)

// Source is the cache entry the view follows.
type Source interface {
	// Snapshot returns the current entry.
	Snapshot() domain.CacheEntry
	// Changes returns a channel notified after every write to the entry.
	Changes() (<-chan domain.CacheKey, func())
	// Refresh revalidates the entry synchronously.
	Refresh() (domain.Outcome, error)
}

// MsgChanged reports a write to the followed entry.
type MsgChanged struct{}

// MsgRefreshed carries the result of a user triggered refresh.
type MsgRefreshed struct {
	Outcome domain.Outcome
	Err     error
}

// Model is the bubbletea model of the live view.
type Model struct {
	Entry      domain.CacheEntry
	Outcome    domain.Outcome
	Err        error
	Refreshing bool
	Width      int
	Height     int

	source  Source
	changes <-chan domain.CacheKey
	done    chan struct{}
	filter  *filter.Filter
	labels  *labels.Labels
}

// NewModel creates a model following src. A nil filter shows every visible tile.
func NewModel(src Source, f *filter.Filter, l *labels.Labels) *Model {
	if l == nil {
		l = labels.New(domain.DefaultLocale)
	}
	return &Model{
		Entry:  src.Snapshot(),
		source: src,
		filter: f,
		labels: l,
	}
}

// Subscribe attaches the model to the source's change notifications and
// returns the func ending the subscription.
func (m *Model) Subscribe() func() {
	ch, cancel := m.source.Changes()
	m.changes = ch
	m.done = make(chan struct{})

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			close(m.done)
		})
	}
}

// Init starts listening for changes.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update handles key presses, store notifications and refresh results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.Refreshing {
				return m, nil
			}
			m.Refreshing = true
			m.Err = nil
			return m, m.refresh()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case MsgChanged:
		m.Entry = m.source.Snapshot()
		return m, m.waitForChange()

	case MsgRefreshed:
		m.Refreshing = false
		m.Outcome = msg.Outcome
		m.Err = msg.Err
		m.Entry = m.source.Snapshot()
	}

	return m, nil
}

// Tiles returns the tiles of the entry that pass the filter.
func (m *Model) Tiles() []domain.Tile {
	tiles, _ := m.Entry.Value.([]domain.Tile)
	tiles = domain.VisibleTiles(tiles)
	if m.filter == nil {
		return tiles
	}
	matched, err := m.filter.Apply(tiles)
	if err != nil {
		return nil
	}
	return matched
}

// View renders the header, the tile tree and the key help.
func (m *Model) View() string {
	var b strings.Builder
	r := linear.NewRenderer(&b, m.labels)

	tiles := m.Tiles()
	entry := m.Entry
	entry.IsRefreshing = entry.IsRefreshing || m.Refreshing
	r.Header(entry, len(tiles))
	b.WriteString("\n")
	r.Tiles(tiles)
	b.WriteString("\n")

	if m.Outcome != "" || m.Err != nil {
		r.Outcome(m.Entry.Key, m.Outcome, m.Err)
	}
	b.WriteString(helpStyle.Render("r refresh • q quit"))

	return clip(b.String(), m.Height)
}

func (m *Model) refresh() tea.Cmd {
	src := m.source
	return func() tea.Msg {
		outcome, err := src.Refresh()
		return MsgRefreshed{Outcome: outcome, Err: err}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	ch, done := m.changes, m.done
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ch:
			return MsgChanged{}
		case <-done:
			return nil
		}
	}
}

// clip keeps the last height lines so the help line stays on screen.
func clip(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[len(lines)-height:], "\n")
}
