package backend

import (
	"context"
	"log"
	"time"

	"quickboard/internal/domain"
	"quickboard/internal/eventbus"
)

// StatusMonitor polls the backend health and stats endpoints and publishes
// status transitions on the event bus. An unreachable backend is never a
// hard error here; the next tick retries.
type StatusMonitor struct {
	client   *Client
	bus      eventbus.EventBus
	interval time.Duration
	online   bool
	seeded   bool
}

// NewStatusMonitor creates a monitor polling at the given interval
func NewStatusMonitor(client *Client, bus eventbus.EventBus, interval time.Duration) *StatusMonitor {
	return &StatusMonitor{
		client:   client,
		bus:      bus,
		interval: interval,
	}
}

// Start begins polling until ctx is cancelled
func (m *StatusMonitor) Start(ctx context.Context) {
	go func() {
		// Probe immediately so the UI doesn't wait a full interval
		m.poll(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.poll(ctx)
			}
		}
	}()
}

func (m *StatusMonitor) poll(ctx context.Context) {
	err := m.client.Health(ctx)
	online := err == nil

	if !m.seeded || online != m.online {
		m.seeded = true
		m.online = online
		if online {
			log.Printf("backend: online")
		} else {
			log.Printf("backend: offline: %v", err)
		}
		m.bus.Publish(domain.BackendStatusEvent{Online: online})
	}

	if !online {
		return
	}

	stats, err := m.client.Stats(ctx)
	if err != nil {
		log.Printf("backend: stats fetch failed: %v", err)
		return
	}
	m.bus.Publish(domain.StatsUpdatedEvent{Stats: stats})
}
