package simulator

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scriptedRand replays its values in a loop.
type scriptedRand struct {
	mu     sync.Mutex
	values []float64
	i      int
}

func (r *scriptedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

// emitFire yields a fire detection with confidence 0.8 and a 0.4/0.4/0.2/0.2 box.
func emitFire() *scriptedRand {
	return &scriptedRand{values: []float64{0.1, 0.1, 0.5, 0.5, 0.5, 0.5, 0.5}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGenerator(t *testing.T, rnd Rand, clk clockwork.Clock) *Generator {
	t.Helper()
	g := New(DefaultConfig(), clk, rnd, discardLogger(), observability.NewMetricsForTesting(), 32)
	n := 0
	g.newID = func() string {
		n++
		return "det-" + strconv.Itoa(n)
	}
	t.Cleanup(g.Stop)
	return g
}

// tickCurrent ticks on behalf of the generator's latest run.
func tickCurrent(g *Generator) (domain.Detection, bool) {
	g.mu.Lock()
	run := g.run
	g.mu.Unlock()
	return g.tick(run)
}

func TestTick_ProducesDetectionFromDraws(t *testing.T) {
	clk := clockwork.NewFakeClockAt(time.Date(2024, 1, 26, 14, 30, 0, 0, time.UTC))
	g := newTestGenerator(t, emitFire(), clk)
	g.Start(context.Background())

	d, ok := tickCurrent(g)
	require.True(t, ok)

	assert.Equal(t, "det-1", d.ID)
	assert.Equal(t, "cam-001", d.CameraID)
	assert.Equal(t, domain.DetectionFire, d.Type)
	assert.InDelta(t, 0.8, d.Confidence, 1e-9)
	assert.InDelta(t, 0.4, d.BBox.X, 1e-9)
	assert.InDelta(t, 0.4, d.BBox.Y, 1e-9)
	assert.InDelta(t, 0.2, d.BBox.Width, 1e-9)
	assert.InDelta(t, 0.2, d.BBox.Height, 1e-9)
	assert.Equal(t, clk.Now(), d.Timestamp)
	require.NoError(t, d.Validate())

	select {
	case got := <-g.Events():
		assert.Equal(t, d, got)
	default:
		t.Fatal("expected detection on events channel")
	}
}

func TestTick_MissProducesNothing(t *testing.T) {
	g := newTestGenerator(t, &scriptedRand{values: []float64{0.95}}, clockwork.NewFakeClock())
	g.Start(context.Background())

	_, ok := tickCurrent(g)
	assert.False(t, ok)
	assert.Empty(t, g.Current())
	assert.Empty(t, g.Recent())
}

func TestTick_SmokeWhenTypeDrawAboveRatio(t *testing.T) {
	g := newTestGenerator(t, &scriptedRand{values: []float64{0.1, 0.9, 0, 0, 0, 0, 0}}, clockwork.NewFakeClock())
	g.Start(context.Background())

	d, ok := tickCurrent(g)
	require.True(t, ok)
	assert.Equal(t, domain.DetectionSmoke, d.Type)
	assert.InDelta(t, 0.6, d.Confidence, 1e-9)
	assert.InDelta(t, 0.1, d.BBox.X, 1e-9)
	assert.InDelta(t, 0.1, d.BBox.Width, 1e-9)
}

func TestTick_InactiveGeneratorRecordsNothing(t *testing.T) {
	g := newTestGenerator(t, emitFire(), clockwork.NewFakeClock())

	_, ok := tickCurrent(g)
	assert.False(t, ok)
	assert.Empty(t, g.Recent())
}

func TestRollingListsNeverExceedCaps(t *testing.T) {
	g := newTestGenerator(t, emitFire(), clockwork.NewFakeClock())
	g.Start(context.Background())

	for i := 1; i <= 20; i++ {
		_, ok := tickCurrent(g)
		require.True(t, ok)
		assert.LessOrEqual(t, len(g.Current()), 5)
		assert.LessOrEqual(t, len(g.Recent()), 10)
		<-g.Events()
	}

	current := g.Current()
	recent := g.Recent()
	require.Len(t, current, 5)
	require.Len(t, recent, 10)
	assert.Equal(t, "det-16", current[0].ID)
	assert.Equal(t, "det-20", current[4].ID)
	assert.Equal(t, "det-11", recent[0].ID)
	assert.Equal(t, "det-20", recent[9].ID)
}

func TestStartStop_ClearsCurrentKeepsRecent(t *testing.T) {
	g := newTestGenerator(t, emitFire(), clockwork.NewFakeClock())
	ctx := context.Background()

	g.Start(ctx)
	for range 3 {
		tickCurrent(g)
	}
	require.Len(t, g.Current(), 3)

	g.Stop()
	assert.False(t, g.Active())
	assert.Empty(t, g.Current())
	assert.Len(t, g.Recent(), 3)

	g.Start(ctx)
	assert.True(t, g.Active())
	assert.Empty(t, g.Current())
	assert.Len(t, g.Recent(), 3)
}

func TestTick_FromStoppedRunIgnoredAfterRestart(t *testing.T) {
	g := newTestGenerator(t, emitFire(), clockwork.NewFakeClock())

	g.Start(context.Background())
	g.mu.Lock()
	stale := g.run
	g.mu.Unlock()
	g.Stop()
	g.Start(context.Background())

	_, ok := g.tick(stale)
	assert.False(t, ok)
	assert.Empty(t, g.Current())
	assert.Empty(t, g.Recent())

	_, ok = tickCurrent(g)
	assert.True(t, ok)
	assert.Len(t, g.Current(), 1)
}

func TestStart_WhenActiveIsNoop(t *testing.T) {
	g := newTestGenerator(t, emitFire(), clockwork.NewFakeClock())
	ctx := context.Background()

	g.Start(ctx)
	tickCurrent(g)
	g.Start(ctx)

	assert.Len(t, g.Current(), 1, "second start must not clear the overlay")
}

func TestStop_WhenIdleIsNoop(t *testing.T) {
	g := newTestGenerator(t, emitFire(), clockwork.NewFakeClock())
	assert.NotPanics(t, g.Stop)
}

func TestTimer_FiresOnInterval(t *testing.T) {
	clk := clockwork.NewFakeClock()
	g := newTestGenerator(t, emitFire(), clk)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g.Start(ctx)
	require.NoError(t, clk.BlockUntilContext(ctx, 1))

	clk.Advance(2 * time.Second)
	assert.Empty(t, g.Current())

	clk.Advance(time.Second)
	select {
	case d := <-g.Events():
		assert.Equal(t, domain.DetectionFire, d.Type)
	case <-ctx.Done():
		t.Fatal("no detection after one interval")
	}
	assert.Len(t, g.Current(), 1)
}

func TestContextCancel_ReleasesTimer(t *testing.T) {
	g := newTestGenerator(t, emitFire(), clockwork.NewFakeClock())
	ctx, cancel := context.WithCancel(context.Background())

	g.Start(ctx)
	tickCurrent(g)
	cancel()

	require.Eventually(t, func() bool { return !g.Active() }, time.Second, 5*time.Millisecond)
	assert.Empty(t, g.Current())
	assert.Len(t, g.Recent(), 1)
}

func TestTick_FullChannelDropsDetection(t *testing.T) {
	g := New(DefaultConfig(), clockwork.NewFakeClock(), emitFire(), discardLogger(), observability.NewMetricsForTesting(), 1)
	t.Cleanup(g.Stop)
	g.Start(context.Background())

	tickCurrent(g)
	_, ok := tickCurrent(g)

	assert.True(t, ok, "a dropped publish still records the detection")
	assert.Len(t, g.Events(), 1)
	assert.Len(t, g.Recent(), 2)
}

func TestAppendCapped(t *testing.T) {
	var list []domain.Detection
	for i := range 7 {
		list = appendCapped(list, domain.Detection{ID: strconv.Itoa(i)}, 3)
	}
	require.Len(t, list, 3)
	assert.Equal(t, "4", list[0].ID)
	assert.Equal(t, "6", list[2].ID)

	unbounded := appendCapped(nil, domain.Detection{ID: "x"}, 0)
	assert.Len(t, unbounded, 1)
}

func TestRoll_SeededSourceStaysInRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Probability = 1
	rnd := rand.New(rand.NewPCG(1, 2))
	now := time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)

	n := 0
	for range 500 {
		d, ok := Roll(cfg, rnd, now, func() string { n++; return "det" })
		require.True(t, ok)
		require.NoError(t, d.Validate())
		assert.GreaterOrEqual(t, d.Confidence, 0.6)
		assert.Less(t, d.Confidence, 1.0)
		assert.Equal(t, now, d.Timestamp)
	}
	assert.Equal(t, 500, n)
}
