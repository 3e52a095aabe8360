// Package errlog accumulates ErrorEvents into an observable log. Errors
// never cross component boundaries uncaught; the UI reads the latest entry
// for its status line.
package errlog

import (
	"sync"
	"time"

	"quickboard/internal/domain"
	"quickboard/internal/eventbus"
)

const maxEntries = 100

// Entry is one recorded error
type Entry struct {
	At      time.Time
	Message string
	Err     error
}

// Log collects errors published on the event bus
type Log struct {
	mu      sync.Mutex
	entries []Entry
	unsub   func()
}

// New creates a log subscribed to error events on the bus
func New(bus eventbus.EventBus) *Log {
	l := &Log{}
	l.unsub = bus.Subscribe(domain.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.ErrorEvent); ok {
			l.add(Entry{At: time.Now(), Message: ev.Message, Err: ev.Err})
		}
	})
	return l
}

func (l *Log) add(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
}

// Entries returns a copy of all recorded errors, oldest first
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent error, if any
func (l *Log) Last() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Close unsubscribes from the bus
func (l *Log) Close() {
	if l.unsub != nil {
		l.unsub()
	}
}
