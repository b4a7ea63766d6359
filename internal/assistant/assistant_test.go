package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func TestGreeting(t *testing.T) {
	now := time.Date(2024, 1, 26, 14, 0, 0, 0, time.UTC)
	a := New(clockwork.NewFakeClockAt(now), fixedRand(0), time.Second)

	g := a.Greeting()
	assert.Equal(t, RoleAssistant, g.Role)
	assert.Equal(t, greeting, g.Content)
	assert.Equal(t, now, g.Timestamp)
}

func TestReply_AfterDelay(t *testing.T) {
	clk := clockwork.NewFakeClock()
	a := New(clk, fixedRand(0.5), 2*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type result struct {
		msg Message
		err error
	}
	done := make(chan result, 1)
	go func() {
		m, err := a.Reply(ctx, "Show me all active fire alerts")
		done <- result{m, err}
	}()

	require.NoError(t, clk.BlockUntilContext(ctx, 1))
	clk.Advance(2 * time.Second)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, RoleAssistant, res.msg.Role)
	assert.Equal(t, Responses[2], res.msg.Content)
	assert.NotEmpty(t, res.msg.ID)
}

func TestReply_BlankMessage(t *testing.T) {
	a := New(clockwork.NewFakeClock(), fixedRand(0), time.Hour)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := a.Reply(context.Background(), text)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"message"}, verr.Fields)
	}
}

func TestReply_ContextCancelled(t *testing.T) {
	a := New(clockwork.NewFakeClock(), fixedRand(0), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Reply(ctx, "status?")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPick_CoversEveryResponse(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range []float64{0, 0.2, 0.4, 0.6, 0.8, 0.9999} {
		a := New(clockwork.NewFakeClock(), fixedRand(r), 0)
		msg, err := a.Reply(context.Background(), "hi")
		require.NoError(t, err)
		seen[msg.Content] = true
	}
	assert.Len(t, seen, len(Responses))
}
