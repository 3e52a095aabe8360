package errlog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickboard/internal/domain"
	"quickboard/internal/eventbus"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 10*time.Millisecond)
}

func TestRecordsErrorEvents(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	l := New(bus)
	t.Cleanup(l.Close)

	bus.Publish(domain.ErrorEvent{Message: "hotkey registration failed", Err: errors.New("busy")})
	waitFor(t, func() bool { return len(l.Entries()) == 1 })

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, "hotkey registration failed", last.Message)
	assert.EqualError(t, last.Err, "busy")
}

func TestLastOnEmptyLog(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	l := New(bus)
	t.Cleanup(l.Close)

	_, ok := l.Last()
	assert.False(t, ok)
}

func TestCapsEntries(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	l := New(bus)
	t.Cleanup(l.Close)

	for i := 0; i < maxEntries+10; i++ {
		l.add(Entry{Message: "e"})
	}
	assert.Len(t, l.Entries(), maxEntries)
}

func TestCloseStopsRecording(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	l := New(bus)
	l.Close()

	bus.Publish(domain.ErrorEvent{Message: "late"})
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, l.Entries())
}
