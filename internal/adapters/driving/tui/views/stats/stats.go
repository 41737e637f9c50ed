// Package stats provides the index statistics view for the TUI.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/portico-apps/searchkit/internal/adapters/driving/tui/messages"
	"github.com/portico-apps/searchkit/internal/adapters/driving/tui/styles"
	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
)

// View shows the index counters, updated on entry and on demand.
type View struct {
	styles *styles.Styles
	index  driving.Index
	ctx    context.Context

	stats    domain.IndexStats
	enabled  bool
	platform domain.Platform
	loaded   bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new statistics view.
func NewView(s *styles.Styles, index driving.Index) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		index:  index,
		ctx:    context.Background(),
		width:  80,
		height: 24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init triggers the initial statistics load.
func (v *View) Init() tea.Cmd {
	return v.loadStats()
}

// Update handles messages for the statistics view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		if msg.String() == "r" {
			return v, v.loadStats()
		}
		return v, nil

	case messages.StatsLoaded:
		v.loaded = true
		v.err = msg.Err
		if msg.Err == nil {
			v.stats = msg.Stats
			v.enabled = msg.Enabled
			v.platform = msg.Platform
		}
		return v, nil
	}

	return v, nil
}

// loadStats reads the counters from the index service.
func (v *View) loadStats() tea.Cmd {
	return func() tea.Msg {
		if v.index == nil {
			return messages.StatsLoaded{Err: ErrNoIndexService}
		}
		return messages.StatsLoaded{
			Stats:    v.index.Stats(),
			Enabled:  v.index.Enabled(),
			Platform: v.index.Platform(),
		}
	}
}

// View renders the statistics view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Index Statistics"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[r] Retry  [esc] Back"))
		return b.String()
	}

	if !v.loaded {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	rows := []struct {
		label string
		value string
	}{
		{"Total items", fmt.Sprintf("%d", v.stats.TotalItems)},
		{"Documents", fmt.Sprintf("%d", v.stats.DocumentCount)},
		{"Images", fmt.Sprintf("%d", v.stats.ImageCount)},
		{"Audio", fmt.Sprintf("%d", v.stats.AudioCount)},
		{"Video", fmt.Sprintf("%d", v.stats.VideoCount)},
		{"Other", fmt.Sprintf("%d", v.stats.OtherCount)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			v.styles.Muted.Render(fmt.Sprintf("%-12s", row.label)),
			v.styles.Normal.Render(row.value)))
	}
	b.WriteString("\n")

	if !v.stats.LastUpdated.IsZero() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			v.styles.Muted.Render(fmt.Sprintf("%-12s", "Updated")),
			v.styles.Normal.Render(v.stats.LastUpdated.Format("2006-01-02 15:04:05"))))
	}

	indexing := v.styles.Success.Render("enabled")
	if !v.enabled {
		indexing = v.styles.Error.Render("disabled")
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		v.styles.Muted.Render(fmt.Sprintf("%-12s", "Indexing")), indexing))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		v.styles.Muted.Render(fmt.Sprintf("%-12s", "Platform")),
		v.styles.Normal.Render(string(v.platform))))

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] Refresh  [esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Stats returns the currently displayed statistics.
func (v *View) Stats() domain.IndexStats {
	return v.stats
}

// Loaded reports whether statistics have been loaded.
func (v *View) Loaded() bool {
	return v.loaded
}

// Err returns the last load error, if any.
func (v *View) Err() error {
	return v.err
}
