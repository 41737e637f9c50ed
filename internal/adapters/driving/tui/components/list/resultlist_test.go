package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portico-apps/searchkit/internal/adapters/driving/tui/styles"
	"github.com/portico-apps/searchkit/internal/core/domain"
)

func sampleResults() []domain.SearchResult {
	return []domain.SearchResult{
		{
			Item:           domain.SearchableItem{ID: "doc-1", Domain: "documents"},
			Relevance:      0.9,
			TitleSnippet:   "Quarterly Report",
			ContentSnippet: "Figures for the quarter",
		},
		{
			Item:         domain.SearchableItem{ID: "note-1", Domain: "notes"},
			Relevance:    0.6,
			TitleSnippet: "Meeting Notes",
		},
		{
			Item:      domain.SearchableItem{ID: "img-1"},
			Relevance: 0.5,
		},
	}
}

func TestNewResultList(t *testing.T) {
	s := styles.DefaultStyles()
	list := NewResultList(s)

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
}

func TestNewResultList_NilStyles(t *testing.T) {
	list := NewResultList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
}

func TestResultList_Init(t *testing.T) {
	list := NewResultList(nil)

	cmd := list.Init()

	assert.Nil(t, cmd)
}

func TestResultList_SetResults(t *testing.T) {
	list := NewResultList(nil)

	list.SetResults(sampleResults())

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
}

func TestResultList_SetResults_ResetsSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())
	list.SetSelected(2)

	list.SetResults(sampleResults()[:1])

	assert.Equal(t, 0, list.Selected())
}

func TestResultList_SetSelected_OutOfBounds(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	list.SetSelected(99)
	assert.Equal(t, 0, list.Selected())

	list.SetSelected(-1)
	assert.Equal(t, 0, list.Selected())
}

func TestResultList_SelectedResult(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())
	list.SetSelected(1)

	result := list.SelectedResult()

	require.NotNil(t, result)
	assert.Equal(t, "note-1", result.Item.ID)
}

func TestResultList_SelectedResult_Empty(t *testing.T) {
	list := NewResultList(nil)

	assert.Nil(t, list.SelectedResult())
}

func TestResultList_MoveUpAndDown(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	list.MoveDown()
	assert.Equal(t, 1, list.Selected())

	list.MoveUp()
	assert.Equal(t, 0, list.Selected())

	// Does not move past the edges
	list.MoveUp()
	assert.Equal(t, 0, list.Selected())

	list.SetSelected(2)
	list.MoveDown()
	assert.Equal(t, 2, list.Selected())
}

func TestResultList_Update_Navigation(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, list.Selected())
}

func TestResultList_View_Empty(t *testing.T) {
	list := NewResultList(nil)

	view := list.View()

	assert.Contains(t, view, "No results")
}

func TestResultList_View_RendersResults(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())
	list.SetDimensions(80, 24)

	view := list.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "Quarterly Report")
	assert.Contains(t, view, "documents")
	assert.Contains(t, view, "Figures for the quarter")
}

func TestResultList_View_FallsBackToID(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults()[2:])
	list.SetDimensions(80, 24)

	view := list.View()

	assert.Contains(t, view, "img-1")
}

func TestResultList_SetDimensions(t *testing.T) {
	list := NewResultList(nil)

	list.SetDimensions(120, 40)

	assert.Equal(t, 120, list.Width())
	assert.Equal(t, 40, list.Height())
}
