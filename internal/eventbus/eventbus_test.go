package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(zap.NewNop())
	defer b.Close()

	got := make(chan PageRequestedEvent, 1)
	b.Subscribe(EventPageRequested, func(e DomainEvent) {
		if ev, ok := e.(PageRequestedEvent); ok {
			got <- ev
		}
	})

	b.Publish(PageRequestedEvent{Seq: 7, Page: 2})

	select {
	case ev := <-got:
		require.Equal(t, uint64(7), ev.Seq)
		require.Equal(t, 2, ev.Page)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(zap.NewNop())
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventFiltersCleared, func(DomainEvent) { calls.Add(1) })

	delivered := make(chan struct{}, 2)
	b.Subscribe(EventFiltersCleared, func(DomainEvent) { delivered <- struct{}{} })

	unsubscribe()
	b.Publish(FiltersClearedEvent{})

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	// give a stray handler goroutine a chance to run
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(zap.NewNop())
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })

	ok := make(chan struct{}, 1)
	b.Subscribe(EventAppReady, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})
	b.Publish(AppReadyEvent{})

	select {
	case <-ok:
	case <-time.After(2 * time.Second):
		t.Fatal("bus stopped dispatching after a handler panic")
	}
}
