package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventTicketCreated,
		EntityID:  "TKT-106",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TKT-106", got[0].EntityID)
}

func TestDispatcherIgnoresOtherTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(EventCustomerDeleted, func(_ context.Context, _ Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketCreated}))
	assert.Zero(t, calls)
}

func TestDispatcherFansOut(t *testing.T) {
	d := NewInMemoryDispatcher()

	calls := 0
	handler := func(_ context.Context, _ Event) error {
		calls++
		return nil
	}
	d.Subscribe(EventDataReset, handler)
	d.Subscribe(EventDataReset, handler)

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventDataReset}))
	assert.Equal(t, 2, calls)
}
