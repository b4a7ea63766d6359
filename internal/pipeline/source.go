package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// ErrSourceClosed is returned once the detection channel is closed and drained.
var ErrSourceClosed = errors.New("detection source closed")

// ChannelSource batches detections read from a channel.
type ChannelSource struct {
	ch            <-chan domain.Detection
	flushInterval time.Duration
}

// NewChannelSource creates a ChannelSource. A batch is returned when it is
// full or flushInterval after its first detection, whichever comes first.
func NewChannelSource(ch <-chan domain.Detection, flushInterval time.Duration) *ChannelSource {
	return &ChannelSource{ch: ch, flushInterval: flushInterval}
}

// ExtractBatch blocks until at least one detection arrives, then collects up
// to batchSize.
func (s *ChannelSource) ExtractBatch(ctx context.Context, batchSize int) ([]domain.Detection, error) {
	var first domain.Detection
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case d, ok := <-s.ch:
		if !ok {
			return nil, ErrSourceClosed
		}
		first = d
	}

	batch := make([]domain.Detection, 1, max(batchSize, 1))
	batch[0] = first

	timer := time.NewTimer(s.flushInterval)
	defer timer.Stop()

	for len(batch) < batchSize {
		select {
		case <-ctx.Done():
			return batch, nil
		case <-timer.C:
			return batch, nil
		case d, ok := <-s.ch:
			if !ok {
				return batch, nil
			}
			batch = append(batch, d)
		}
	}
	return batch, nil
}
