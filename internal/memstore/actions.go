package memstore

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// RunAction starts a quick action. Immediate actions are returned completed;
// delayed ones complete after the action delay and can be polled with Action.
func (b *Board) RunAction(name string) (domain.ActionRun, error) {
	qa, ok := domain.LookupAction(name)
	if !ok {
		return domain.ActionRun{}, fmt.Errorf("action %s: %w", name, domain.ErrNotFound)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	run := domain.ActionRun{
		ID:        "act-" + uuid.NewString(),
		Action:    qa.Name,
		StartedAt: now,
	}

	if !qa.Delayed {
		run.Status = domain.ActionCompleted
		run.Message = qa.DoneMessage
		run.CompletedAt = &now
		b.storeRun(run)
		b.logger.Info("quick action completed", "action", qa.Name)
		return run, nil
	}

	run.Status = domain.ActionRunning
	run.Message = qa.StartMessage
	b.storeRun(run)
	b.after("action:"+run.ID, b.cfg.ActionDelay, func() {
		done := b.clock.Now()
		r, ok := b.runs[run.ID]
		if !ok {
			return
		}
		r.Status = domain.ActionCompleted
		r.Message = qa.DoneMessage
		r.CompletedAt = &done
		b.runs[run.ID] = r
		b.logger.Info("quick action completed", "action", qa.Name)
	})
	return run, nil
}

// storeRun records a new run and evicts the oldest beyond RunCap, cancelling
// its pending completion. The caller must hold b.mu.
func (b *Board) storeRun(run domain.ActionRun) {
	b.runs[run.ID] = run
	b.runOrder = append(b.runOrder, run.ID)
	if b.cfg.RunCap <= 0 || len(b.runOrder) <= b.cfg.RunCap {
		return
	}
	evicted := len(b.runOrder) - b.cfg.RunCap
	for _, id := range b.runOrder[:evicted] {
		delete(b.runs, id)
		if t, ok := b.timers["action:"+id]; ok {
			t.Stop()
			delete(b.timers, "action:"+id)
		}
	}
	b.runOrder = slices.Clone(b.runOrder[evicted:])
}

// Action returns a quick-action run by id.
func (b *Board) Action(id string) (domain.ActionRun, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	run, ok := b.runs[id]
	if !ok {
		return domain.ActionRun{}, fmt.Errorf("action run %s: %w", id, domain.ErrNotFound)
	}
	return run, nil
}
