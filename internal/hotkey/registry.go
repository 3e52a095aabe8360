// Package hotkey keeps the global activation binding alive. Global hotkeys
// can be left registered by a crashed prior instance and some platforms
// silently drop them, so registration always clears the combo first and a
// periodic keepalive re-registers it when the OS reports it gone.
package hotkey

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"quickboard/internal/domain"
	"quickboard/internal/eventbus"
	"quickboard/internal/platform"
)

// Status is the binding state: pending -> ok | exists | failed, with a
// repair transition ok -> pending -> ok driven by the keepalive.
type Status string

const (
	StatusPending Status = "pending"
	StatusOK      Status = "ok"
	StatusExists  Status = "exists"
	StatusFailed  Status = "failed"
)

// RegisterError reports a failed registration attempt
type RegisterError struct {
	Combo string
	Cause error
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("registering hotkey %q: %v", e.Combo, e.Cause)
}

func (e *RegisterError) Unwrap() error { return e.Cause }

// Registry manages one global binding
type Registry struct {
	hk      platform.Hotkeys
	bus     eventbus.EventBus
	combo   string
	handler func()

	keepalive time.Duration
	settle    time.Duration

	mu     sync.Mutex
	status Status
}

// NewRegistry creates a registry for the given combo. handler fires on
// every hotkey press.
func NewRegistry(hk platform.Hotkeys, bus eventbus.EventBus, combo string, handler func(), keepalive time.Duration) *Registry {
	return &Registry{
		hk:        hk,
		bus:       bus,
		combo:     combo,
		handler:   handler,
		keepalive: keepalive,
		settle:    100 * time.Millisecond,
		status:    StatusPending,
	}
}

// Register runs the full registration protocol: unregister the combo in
// case a dead process still holds it, give the OS a moment to release it,
// then register. A failure is not retried here; the keepalive cycle will.
func (r *Registry) Register() error {
	r.setStatus(StatusPending)

	if err := r.hk.Unregister(r.combo); err != nil {
		// Expected when nothing was registered
		log.Printf("hotkey: pre-registration unregister of %q: %v", r.combo, err)
	}
	time.Sleep(r.settle)

	if err := r.hk.Register(r.combo, r.handler); err != nil {
		if errors.Is(err, platform.ErrAlreadyRegistered) {
			r.setStatus(StatusExists)
		} else {
			r.setStatus(StatusFailed)
		}
		rerr := &RegisterError{Combo: r.combo, Cause: err}
		log.Printf("hotkey: %v", rerr)
		r.bus.Publish(domain.ErrorEvent{Message: "hotkey registration failed", Err: rerr})
		return rerr
	}

	r.setStatus(StatusOK)
	log.Printf("hotkey: registered %q", r.combo)
	return nil
}

// Start runs the keepalive loop until ctx is cancelled
func (r *Registry) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.keepalive)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.checkOnce()
			}
		}
	}()
}

// checkOnce repairs the binding if the OS silently dropped it. It only
// acts when the combo is reported unregistered, never double-registers.
func (r *Registry) checkOnce() {
	registered, err := r.hk.IsRegistered(r.combo)
	if err != nil {
		log.Printf("hotkey: keepalive query for %q failed: %v", r.combo, err)
		return
	}
	if registered {
		return
	}

	log.Printf("hotkey: %q no longer registered, repairing", r.combo)
	if err := r.Register(); err == nil {
		log.Printf("hotkey: %q repaired", r.combo)
	}
}

// Close unregisters the combo best-effort; the process is exiting so
// failures are swallowed.
func (r *Registry) Close() {
	if err := r.hk.Unregister(r.combo); err != nil {
		log.Printf("hotkey: unregister %q on shutdown: %v", r.combo, err)
	}
}

// Status returns the current binding status
func (r *Registry) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Registry) setStatus(s Status) {
	r.mu.Lock()
	changed := r.status != s
	r.status = s
	r.mu.Unlock()

	if changed {
		r.bus.Publish(domain.HotkeyStatusEvent{Combo: r.combo, Status: string(s)})
	}
}
