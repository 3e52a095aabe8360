package ui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quickboard/internal/backend"
	"quickboard/internal/config"
	"quickboard/internal/domain"
	"quickboard/internal/errlog"
	"quickboard/internal/platform/terminal"
	"quickboard/internal/search"
	"quickboard/internal/selection"
	"quickboard/internal/window"
)

// activationKey is the in-terminal stand-in for the global hotkey when the
// overlay runs on the terminal adapter.
const activationKey = "ctrl+g"

// EventMsg wraps a domain event forwarded from the event bus
type EventMsg struct {
	Event domain.DomainEvent
}

// pagerClosedMsg reports the full-text pager exiting
type pagerClosedMsg struct {
	err error
}

// itemDeletedMsg reports a delete request finishing
type itemDeletedMsg struct {
	id  int64
	err error
}

// Model is the Bubble Tea model for the quickboard overlay
type Model struct {
	cfg         *config.Config
	coordinator *search.Coordinator
	sel         *selection.Service
	windows     *window.Manager
	adapter     *terminal.Adapter
	client      *backend.Client
	errors      *errlog.Log
	pager       *ItemPager
	styles      *Styles

	input   textinput.Model
	items   []domain.Item
	query   domain.QueryState
	stats   domain.Stats
	online  bool
	visible bool
	status  string
	width   int
	height  int
}

// NewModel creates the overlay model
func NewModel(cfg *config.Config, coordinator *search.Coordinator, sel *selection.Service,
	windows *window.Manager, adapter *terminal.Adapter, client *backend.Client,
	errors *errlog.Log, pager *ItemPager) *Model {

	ti := textinput.New()
	ti.Placeholder = "Search your clipboard history..."
	ti.CharLimit = 256
	ti.Prompt = "> "

	return &Model{
		cfg:         cfg,
		coordinator: coordinator,
		sel:         sel,
		windows:     windows,
		adapter:     adapter,
		client:      client,
		errors:      errors,
		pager:       pager,
		styles:      NewStyles(),
		input:       ti,
		query:       domain.DefaultQuery(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case terminal.ShowMsg:
		m.visible = true
		return m, nil

	case terminal.HideMsg:
		m.visible = false
		m.input.Blur()
		return m, nil

	case terminal.FocusMsg:
		return m, m.input.Focus()

	case EventMsg:
		return m.handleEvent(msg.Event)

	case pagerClosedMsg:
		if msg.err != nil {
			m.status = "pager: " + msg.err.Error()
		}
		return m, nil

	case itemDeletedMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
		} else {
			m.status = "item deleted"
			m.coordinator.Refresh()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleEvent applies forwarded domain events to the view state
func (m *Model) handleEvent(e domain.DomainEvent) (tea.Model, tea.Cmd) {
	switch ev := e.(type) {
	case domain.ResultsUpdatedEvent:
		m.items = ev.Items
		m.query = ev.Query
		m.sel.SetLength(len(ev.Items))

	case domain.BackendStatusEvent:
		m.online = ev.Online

	case domain.StatsUpdatedEvent:
		m.stats = ev.Stats

	case domain.WindowShownEvent:
		// Re-show gives a fresh start: empty query, selection at the top
		m.visible = true
		m.status = ""
		m.input.SetValue("")
		m.sel.Reset()
		m.coordinator.ResetQuery()
		return m, m.input.Focus()

	case domain.WindowHiddenEvent:
		m.visible = false
		m.input.Blur()

	case domain.ItemCopiedEvent:
		m.status = "copied to clipboard"

	case domain.ErrorEvent:
		if ev.Err != nil {
			m.status = ev.Err.Error()
		} else {
			m.status = ev.Message
		}
	}
	return m, nil
}

// handleKey routes key input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.visible {
		switch msg.String() {
		case activationKey:
			m.adapter.Trigger(m.cfg.Hotkey.Combo)
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case activationKey, "esc":
		if err := m.windows.Hide(m.cfg.Window.Label); err != nil {
			log.Printf("ui: hide failed: %v", err)
		}
		return m, nil

	case "up", "ctrl+k":
		m.sel.MoveUp()
		return m, nil

	case "down", "ctrl+j":
		m.sel.MoveDown()
		return m, nil

	case "enter":
		m.sel.Commit()
		return m, nil

	case "tab":
		m.coordinator.SetFilter(nextFilter(m.query.Filter))
		m.query = m.coordinator.Query()
		return m, nil

	case "shift+tab":
		m.coordinator.SetTimeRange(nextTimeRange(m.query.Range))
		m.query = m.coordinator.Query()
		return m, nil

	case "ctrl+o":
		return m, m.openPagerCmd()

	case "ctrl+d":
		return m, m.deleteSelectedCmd()
	}

	// Everything else edits the query
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.coordinator.SetQueryText(after)
	}
	return m, cmd
}

// openPagerCmd fetches the selected item's full text and pages it
func (m *Model) openPagerCmd() tea.Cmd {
	item, ok := m.selectedItem()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		full, err := m.client.Item(context.Background(), item.ID)
		text := item.Text
		if err == nil && full.Text != "" {
			text = full.Text
		}
		return pagerClosedMsg{err: m.pager.ShowText(text)}
	}
}

// deleteSelectedCmd removes the selected item from the backend
func (m *Model) deleteSelectedCmd() tea.Cmd {
	item, ok := m.selectedItem()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		err := m.client.DeleteItem(context.Background(), item.ID)
		return itemDeletedMsg{id: item.ID, err: err}
	}
}

func (m *Model) selectedItem() (domain.Item, bool) {
	idx := m.sel.Index()
	if idx < 0 || idx >= len(m.items) {
		return domain.Item{}, false
	}
	return m.items[idx], true
}

func nextFilter(f domain.Filter) domain.Filter {
	for i, v := range domain.Filters {
		if v == f {
			return domain.Filters[(i+1)%len(domain.Filters)]
		}
	}
	return domain.FilterAll
}

func nextTimeRange(r domain.TimeRange) domain.TimeRange {
	for i, v := range domain.TimeRanges {
		if v == r {
			return domain.TimeRanges[(i+1)%len(domain.TimeRanges)]
		}
	}
	return domain.RangeAll
}
