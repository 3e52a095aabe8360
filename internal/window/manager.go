// Package window owns the singleton overlay window: lazy creation with an
// event-acknowledged handshake, idempotent show/hide, and a process-wide
// toggle cooldown that absorbs duplicate trigger events.
package window

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"quickboard/internal/domain"
	"quickboard/internal/eventbus"
	"quickboard/internal/platform"
)

// CreateError reports that the window system failed to create the overlay.
// The toggle that triggered creation fails; the caller must not use the
// handle until a later creation succeeds.
type CreateError struct {
	Label string
	Cause error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("creating window %q: %v", e.Label, e.Cause)
}

func (e *CreateError) Unwrap() error { return e.Cause }

// Handle is the process-wide record of the overlay window
type Handle struct {
	Label        string
	Visible      bool
	LastToggleAt time.Time
}

// Manager owns the singleton overlay handle
type Manager struct {
	ws   platform.WindowSystem
	bus  eventbus.EventBus
	opts platform.WindowOptions

	cooldown      time.Duration
	createTimeout time.Duration
	nowFn         func() time.Time

	createMu sync.Mutex // serializes Ensure

	mu         sync.Mutex
	handle     *Handle
	lastToggle time.Time // single process-wide guard, not per-window
}

// NewManager creates a window manager. cooldown is the minimum interval
// between effective toggles.
func NewManager(ws platform.WindowSystem, bus eventbus.EventBus, opts platform.WindowOptions, cooldown time.Duration) *Manager {
	return &Manager{
		ws:            ws,
		bus:           bus,
		opts:          opts,
		cooldown:      cooldown,
		createTimeout: 5 * time.Second,
		nowFn:         time.Now,
	}
}

// Ensure returns the existing handle or creates the overlay window and
// waits for the window system's creation acknowledgment.
func (m *Manager) Ensure(label string) (*Handle, error) {
	m.createMu.Lock()
	defer m.createMu.Unlock()

	m.mu.Lock()
	if m.handle != nil {
		h := m.handle
		m.mu.Unlock()
		return h, nil
	}
	m.mu.Unlock()

	// One-shot ack: resolved by whichever of the two notifications fires
	// first, both subscriptions torn down on resolution.
	done := make(chan error, 1)
	resolve := func(err error) {
		select {
		case done <- err:
		default:
		}
	}
	unsubCreated := m.bus.Subscribe(domain.EventWindowCreated, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.WindowCreatedEvent); ok && ev.Label == label {
			resolve(nil)
		}
	})
	unsubFailed := m.bus.Subscribe(domain.EventWindowCreateFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.WindowCreateFailedEvent); ok && ev.Label == label {
			resolve(ev.Err)
		}
	})
	defer unsubCreated()
	defer unsubFailed()

	// Hidden until the first toggle shows it; overlay surfaces carry no
	// decorations and stay out of the task switcher.
	opts := m.opts
	opts.Visible = false
	opts.Decorations = false
	opts.Resizable = false
	opts.AlwaysOnTop = true
	opts.SkipTaskbar = true
	m.ws.Create(label, opts)

	select {
	case err := <-done:
		if err != nil {
			cerr := &CreateError{Label: label, Cause: err}
			m.bus.Publish(domain.ErrorEvent{Message: "window create failed", Err: cerr})
			return nil, cerr
		}
	case <-time.After(m.createTimeout):
		cerr := &CreateError{Label: label, Cause: errors.New("timed out waiting for creation ack")}
		m.bus.Publish(domain.ErrorEvent{Message: "window create timed out", Err: cerr})
		return nil, cerr
	}

	m.mu.Lock()
	m.handle = &Handle{Label: label}
	h := m.handle
	m.mu.Unlock()

	log.Printf("window: created %q", label)
	return h, nil
}

// Toggle shows the overlay if hidden and hides it if visible. Repeated
// calls within the cooldown interval are no-ops so that OS key repeat and a
// simultaneous hotkey+button press cannot double-fire.
func (m *Manager) Toggle(label string) error {
	now := m.nowFn()

	m.mu.Lock()
	if now.Sub(m.lastToggle) < m.cooldown {
		m.mu.Unlock()
		log.Printf("window: toggle for %q within cooldown, ignoring", label)
		return nil
	}
	m.lastToggle = now
	m.mu.Unlock()

	h, err := m.Ensure(label)
	if err != nil {
		return err
	}

	m.mu.Lock()
	visible := h.Visible
	h.LastToggleAt = now
	m.mu.Unlock()

	if visible {
		return m.Hide(label)
	}
	return m.show(label, h)
}

// show positions the window first, makes it visible, then focuses it
func (m *Manager) show(label string, h *Handle) error {
	if err := m.ws.Center(label); err != nil {
		log.Printf("window: center %q failed: %v", label, err)
	}
	if err := m.ws.Show(label); err != nil {
		return fmt.Errorf("showing window %q: %w", label, err)
	}
	if err := m.ws.Focus(label); err != nil {
		log.Printf("window: focus %q failed: %v", label, err)
	}

	m.mu.Lock()
	h.Visible = true
	m.mu.Unlock()

	log.Printf("window: %q shown", label)
	m.bus.Publish(domain.WindowShownEvent{Label: label})
	return nil
}

// Hide hides the overlay if it exists and is visible
func (m *Manager) Hide(label string) error {
	m.mu.Lock()
	h := m.handle
	if h == nil || !h.Visible {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	if err := m.ws.Hide(label); err != nil {
		return fmt.Errorf("hiding window %q: %w", label, err)
	}

	m.mu.Lock()
	h.Visible = false
	m.mu.Unlock()

	log.Printf("window: %q hidden", label)
	m.bus.Publish(domain.WindowHiddenEvent{Label: label})
	return nil
}

// Visible reports whether the overlay is currently shown
func (m *Manager) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle != nil && m.handle.Visible
}
