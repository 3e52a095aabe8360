package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickboard/internal/backend"
	"quickboard/internal/config"
	"quickboard/internal/domain"
	"quickboard/internal/errlog"
	"quickboard/internal/eventbus"
	"quickboard/internal/platform/terminal"
	"quickboard/internal/search"
	"quickboard/internal/selection"
)

type stubBackend struct{}

func (stubBackend) Search(ctx context.Context, q string, k int, mode domain.Filter, after int64) ([]domain.Item, error) {
	return nil, nil
}

func (stubBackend) RecentItems(ctx context.Context, limit int, source domain.Source, after int64) ([]domain.Item, error) {
	return nil, nil
}

func newTestModel(t *testing.T) (*Model, *terminal.Adapter) {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	cfg := config.DefaultConfig()
	coordinator := search.NewCoordinator(stubBackend{}, bus, time.Hour, time.Hour, 20)
	sel := selection.NewService()
	adapter := terminal.New(bus)
	client := backend.NewClient("http://127.0.0.1:1", time.Second)
	errors := errlog.New(bus)
	t.Cleanup(errors.Close)

	m := NewModel(cfg, coordinator, sel, nil, adapter, client, errors, NewItemPager())
	return m, adapter
}

func results(items ...domain.Item) EventMsg {
	return EventMsg{Event: domain.ResultsUpdatedEvent{Query: domain.DefaultQuery(), Items: items}}
}

func TestHiddenActivationKeyTriggersHotkey(t *testing.T) {
	m, adapter := newTestModel(t)

	fired := false
	require.NoError(t, adapter.Register(m.cfg.Hotkey.Combo, func() { fired = true }))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.True(t, fired, "activation key fires the registered hotkey handler")
}

func TestShowAndHideMessages(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(terminal.ShowMsg{Label: "quickboard"})
	assert.True(t, m.visible)

	m.Update(terminal.HideMsg{Label: "quickboard"})
	assert.False(t, m.visible)
}

func TestArrowKeysMoveSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(terminal.ShowMsg{Label: "quickboard"})
	m.Update(results(
		domain.Item{ID: 1, Text: "one"},
		domain.Item{ID: 2, Text: "two"},
		domain.Item{ID: 3, Text: "three"},
	))

	assert.Equal(t, 0, m.sel.Index())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.sel.Index())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.sel.Index(), "selection clamps at the end")
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.sel.Index())
}

func TestNewResultsResetSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(terminal.ShowMsg{Label: "quickboard"})
	m.Update(results(domain.Item{ID: 1}, domain.Item{ID: 2}))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.sel.Index())

	m.Update(results(domain.Item{ID: 3}, domain.Item{ID: 4}, domain.Item{ID: 5}))
	assert.Equal(t, 0, m.sel.Index())
}

func TestTabCyclesFilter(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(terminal.ShowMsg{Label: "quickboard"})

	assert.Equal(t, domain.FilterAll, m.query.Filter)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.FilterText, m.query.Filter)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.FilterImages, m.query.Filter)
}

func TestTypingUpdatesCoordinatorQuery(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(terminal.ShowMsg{Label: "quickboard"})
	m.Update(terminal.FocusMsg{Label: "quickboard"})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("inv")})
	assert.Equal(t, "inv", m.coordinator.Query().Text)
}

func TestViewRendersResults(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(terminal.ShowMsg{Label: "quickboard"})
	m.Update(results(domain.Item{ID: 1, Text: "meeting notes", Source: domain.SourceClipboard, ReadableTime: "today"}))

	view := m.View()
	assert.True(t, strings.Contains(view, "meeting notes"))
	assert.True(t, strings.Contains(view, "quickboard"))
}

func TestIdleViewShowsActivationHint(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	assert.True(t, strings.Contains(view, activationKey))
}
