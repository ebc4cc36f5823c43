package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	var mu sync.Mutex
	var executed int
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			mu.Lock()
			executed++
			mu.Unlock()
			return nil
		})
		require.NoError(t, err, "failed to add task to pool")
	}

	wg.Wait()
	assert.Equal(t, 5, executed)
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
	wg     *sync.WaitGroup
}

func (r *recordingSink) Send(_ context.Context, event Event) error {
	defer r.wg.Done()
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	return r.err
}

func TestNotifyDeliversToAllSinks(t *testing.T) {
	var wg sync.WaitGroup
	first := &recordingSink{wg: &wg}
	second := &recordingSink{wg: &wg}

	svc := New(first, second)
	defer svc.Close()

	wg.Add(2)
	svc.Notify(context.Background(), Event{Type: EventOrderPaid, OrderNo: "7992739871"})
	wg.Wait()

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
	assert.Equal(t, EventOrderPaid, first.events[0].Type)
}

func TestNotifyNeverPropagatesSinkErrors(t *testing.T) {
	var wg sync.WaitGroup
	failing := &recordingSink{wg: &wg, err: errors.New("sms bridge down")}

	svc := New(failing)
	defer svc.Close()

	wg.Add(1)
	svc.Notify(context.Background(), Event{Type: EventRefundApproved, OrderNo: "7992739871"})
	wg.Wait()

	assert.Len(t, failing.events, 1)
}

func TestNotifyDropsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New(&LogSink{})
	defer svc.Close()

	done := make(chan struct{})
	go func() {
		svc.Notify(ctx, Event{Type: EventOrderPaid})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on cancelled context")
	}
}
