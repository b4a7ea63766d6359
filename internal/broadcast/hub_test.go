package broadcast

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/observability"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHub(buffer int) *Hub {
	return NewHub(buffer, slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())
}

func events(ids ...string) []domain.AlertEvent {
	out := make([]domain.AlertEvent, len(ids))
	for i, id := range ids {
		out[i] = domain.AlertEvent{ID: id}
	}
	return out
}

func TestHub_FanOut(t *testing.T) {
	h := newTestHub(4)
	_, a := h.Subscribe()
	_, b := h.Subscribe()
	assert.Equal(t, 2, h.Subscribers())

	require.NoError(t, h.LoadBatch(context.Background(), events("e1", "e2")))

	for _, ch := range []<-chan domain.AlertEvent{a, b} {
		assert.Equal(t, "e1", (<-ch).ID)
		assert.Equal(t, "e2", (<-ch).ID)
	}
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	h := newTestHub(1)
	_, ch := h.Subscribe()

	require.NoError(t, h.LoadBatch(context.Background(), events("e1", "e2", "e3")))

	assert.Equal(t, "e1", (<-ch).ID)
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %s", ev.ID)
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := newTestHub(1)
	id, ch := h.Subscribe()

	h.Unsubscribe(id)
	h.Unsubscribe(id)

	_, ok := <-ch
	assert.False(t, ok)
	assert.Zero(t, h.Subscribers())
	require.NoError(t, h.LoadBatch(context.Background(), events("e1")))
}

func TestHub_Close(t *testing.T) {
	h := newTestHub(1)
	_, a := h.Subscribe()
	h.Close()

	_, ok := <-a
	assert.False(t, ok)

	_, b := h.Subscribe()
	_, ok = <-b
	assert.False(t, ok)
}
