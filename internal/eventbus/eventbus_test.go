package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickboard/internal/domain"
)

func waitForEvent(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishSubscribe(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(domain.EventWindowShown, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(domain.WindowShownEvent{Label: "main"})

	e := waitForEvent(t, received)
	shown, ok := e.(domain.WindowShownEvent)
	require.True(t, ok)
	assert.Equal(t, "main", shown.Label)
}

func TestSubscribeOnlyMatchingType(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 2)
	bus.Subscribe(domain.EventWindowShown, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(domain.WindowHiddenEvent{Label: "main"})
	bus.Publish(domain.WindowShownEvent{Label: "main"})

	e := waitForEvent(t, received)
	assert.IsType(t, domain.WindowShownEvent{}, e)

	select {
	case e := <-received:
		t.Fatalf("unexpected second event: %v", e)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 2)
	unsub := bus.Subscribe(domain.EventError, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(domain.ErrorEvent{Message: "first"})
	waitForEvent(t, received)

	unsub()
	bus.Publish(domain.ErrorEvent{Message: "second"})

	select {
	case e := <-received:
		t.Fatalf("received event after unsubscribe: %v", e)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestTwoSubscribersIndependentUnsubscribe(t *testing.T) {
	bus := New()
	defer bus.Close()

	first := make(chan DomainEvent, 2)
	second := make(chan DomainEvent, 2)
	unsubFirst := bus.Subscribe(domain.EventError, func(e DomainEvent) { first <- e })
	bus.Subscribe(domain.EventError, func(e DomainEvent) { second <- e })

	unsubFirst()
	bus.Publish(domain.ErrorEvent{Message: "after"})

	waitForEvent(t, second)
	select {
	case <-first:
		t.Fatal("unsubscribed handler still received event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	bus := New()
	bus.Close()
	bus.Close()
}
