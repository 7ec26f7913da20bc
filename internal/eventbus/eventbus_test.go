package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	ch := make(chan DomainEvent, 10)
	b.Subscribe(EventDisplayItemChanged, func(e DomainEvent) { ch <- e })

	for i := 0; i < 3; i++ {
		b.Publish(DisplayItemChangedEvent{Index: i, Offset: i})
	}

	for i := 0; i < 3; i++ {
		e, ok := receive(t, ch).(DisplayItemChangedEvent)
		require.True(t, ok)
		assert.Equal(t, i, e.Index)
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	defer b.Close()

	ch := make(chan DomainEvent, 10)
	b.Subscribe(EventPageCommitted, func(e DomainEvent) { ch <- e })

	b.Publish(DataReloadedEvent{Items: 3})
	b.Publish(PageCommittedEvent{Move: "forward", Index: 1, Offset: 1})

	e := receive(t, ch)
	assert.Equal(t, EventPageCommitted, e.Type())
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	removed := make(chan DomainEvent, 10)
	kept := make(chan DomainEvent, 10)
	unsubscribe := b.Subscribe(EventDataReloaded, func(e DomainEvent) { removed <- e })
	b.Subscribe(EventDataReloaded, func(e DomainEvent) { kept <- e })

	unsubscribe()
	b.Publish(DataReloadedEvent{Items: 1})

	receive(t, kept)
	assert.Empty(t, removed)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	ch := make(chan DomainEvent, 10)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(e DomainEvent) { ch <- e })

	b.Publish(ErrorEvent{Message: "x"})
	receive(t, ch)
}

func TestCloseDrainsQueuedEvents(t *testing.T) {
	b := New()

	ch := make(chan DomainEvent, 100)
	b.Subscribe(EventItemSelected, func(e DomainEvent) { ch <- e })
	for i := 0; i < 20; i++ {
		b.Publish(ItemSelectedEvent{Index: i})
	}
	b.Close()

	assert.Len(t, ch, 20)
	b.Publish(ItemSelectedEvent{Index: 99})
	b.Close()
	assert.Len(t, ch, 20)
}
