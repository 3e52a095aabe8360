// Package search turns query edits into backend requests. Two producers
// feed the same result list: a debounced search path driven by input and a
// periodic refresh that only runs while the query is empty. Responses are
// stamped with a generation counter; anything but the response to the
// current generation is discarded so a slow response can never overwrite a
// newer result set.
package search

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"quickboard/internal/domain"
	"quickboard/internal/eventbus"
)

// Backend is the slice of the backend client the coordinator needs
type Backend interface {
	Search(ctx context.Context, q string, k int, mode domain.Filter, after int64) ([]domain.Item, error)
	RecentItems(ctx context.Context, limit int, source domain.Source, after int64) ([]domain.Item, error)
}

// Coordinator owns the active query state and result list
type Coordinator struct {
	backend Backend
	bus     eventbus.EventBus

	debounceDelay time.Duration
	refreshEvery  time.Duration
	limit         int

	mu         sync.Mutex
	query      domain.QueryState
	items      []domain.Item
	generation uint64
	debounce   *time.Timer
	ctx        context.Context
}

// NewCoordinator creates a coordinator. debounce is the quiet period after
// the last query edit; refresh is the empty-query poll interval; limit caps
// every request.
func NewCoordinator(backend Backend, bus eventbus.EventBus, debounce, refresh time.Duration, limit int) *Coordinator {
	return &Coordinator{
		backend:       backend,
		bus:           bus,
		debounceDelay: debounce,
		refreshEvery:  refresh,
		limit:         limit,
		query:         domain.DefaultQuery(),
		ctx:           context.Background(),
	}
}

// Start runs the auto-refresh poll until ctx is cancelled. The poll never
// overwrites an active search: it only fires while the query text is empty.
func (c *Coordinator) Start(ctx context.Context) {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(c.refreshEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				c.stopDebounce()
				return
			case <-ticker.C:
				// Same emptiness rule as issue: whitespace is not a query
				if strings.TrimSpace(c.Query().Text) == "" {
					c.issue()
				}
			}
		}
	}()
}

// SetQueryText records an edit and restarts the debounce timer. Only the
// final state of a burst of edits ever reaches the backend.
func (c *Coordinator) SetQueryText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Text == text {
		return
	}
	c.query.Text = text
	c.armDebounceLocked()
}

// SetFilter changes the filter mode; debounced like a text edit
func (c *Coordinator) SetFilter(f domain.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Filter == f {
		return
	}
	c.query.Filter = f
	c.armDebounceLocked()
}

// SetTimeRange changes the time bound; debounced like a text edit
func (c *Coordinator) SetTimeRange(r domain.TimeRange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Range == r {
		return
	}
	c.query.Range = r
	c.armDebounceLocked()
}

// ResetQuery clears the query back to defaults and fetches fresh recent
// items immediately. Called when the overlay is re-shown.
func (c *Coordinator) ResetQuery() {
	c.mu.Lock()
	c.query = domain.DefaultQuery()
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	c.mu.Unlock()

	go c.issue()
}

// Refresh issues a request for the current query state right away
func (c *Coordinator) Refresh() {
	go c.issue()
}

// Query returns a snapshot of the current query state
func (c *Coordinator) Query() domain.QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Items returns the current result list
func (c *Coordinator) Items() []domain.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *Coordinator) armDebounceLocked() {
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.debounceDelay, c.issue)
}

func (c *Coordinator) stopDebounce() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
}

// issue stamps a new generation, builds the request from the query state
// and fetches. The fetch blocks the calling timer goroutine; overlapping
// issues are resolved by the generation check in apply.
func (c *Coordinator) issue() {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	q := c.query
	ctx := c.ctx
	c.mu.Unlock()

	after := q.Range.LowerBound(time.Now())

	var items []domain.Item
	var err error
	if text := strings.TrimSpace(q.Text); text != "" {
		items, err = c.backend.Search(ctx, text, c.limit, q.Filter, after)
	} else {
		items, err = c.backend.RecentItems(ctx, c.limit, q.Filter.SourceRestriction(), after)
	}

	c.apply(gen, q, items, err)
}

// apply installs a response if and only if it answers the current
// generation; stale responses are dropped. Failures clear the list rather
// than leaving stale data; the next debounce or poll retries naturally.
func (c *Coordinator) apply(gen uint64, q domain.QueryState, items []domain.Item, err error) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		log.Printf("search: discarding stale response (generation %d, current %d)", gen, c.generation)
		return
	}
	if err != nil {
		c.items = nil
	} else {
		c.items = items
	}
	snapshot := c.items
	c.mu.Unlock()

	if err != nil {
		log.Printf("search: request failed: %v", err)
		c.bus.Publish(domain.ErrorEvent{Message: "search request failed", Err: err})
	}
	c.bus.Publish(domain.ResultsUpdatedEvent{Query: q, Items: snapshot, Generation: gen})
}
