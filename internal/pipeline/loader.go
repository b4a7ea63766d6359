package pipeline

import (
	"context"
	"errors"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// MultiLoader delivers every batch to each of its loaders in order. A failing
// loader does not stop delivery to the others; their errors are joined.
type MultiLoader []BatchLoader

// LoadBatch implements BatchLoader.
func (m MultiLoader) LoadBatch(ctx context.Context, events []domain.AlertEvent) error {
	var errs []error
	for _, l := range m {
		if err := l.LoadBatch(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
