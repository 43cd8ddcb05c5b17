package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
)

// Result is the outcome of executing a queue item.
type Result struct {
	ItemID string
	// Err is nil on success.
	Err error
	// NotDue is set when a scheduled item was not run because it is not due.
	NotDue   bool
	Duration time.Duration
}

// OK returns if the action ran and succeeded.
func (r Result) OK() bool {
	return r.Err == nil && !r.NotDue
}

// Terminal returns if the failure must not be retried without a
// configuration change.
func (r Result) Terminal() bool {
	return r.Err != nil && plugin.IsTerminal(r.Err)
}

// Execute runs item with the action registered for its ActionType.
// Unless forced, a scheduled item that is not due is not run.
// Failures, including panics, are returned in the Result.
func Execute(ctx context.Context, registry *Registry, item *models.QueueItem, force bool) Result {
	return ExecuteAt(ctx, registry, item, time.Now(), force)
}

// ExecuteAt is Execute with due-ness checked against now.
func ExecuteAt(ctx context.Context, registry *Registry, item *models.QueueItem, now time.Time, force bool) (res Result) {
	res.ItemID = item.ID
	if !force && !item.IsDue(now) {
		res.NotDue = true
		return
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("queue action '%s' panicked: %v", item.ActionType, r)
		}
		res.Duration = time.Since(start)
	}()

	action, err := registry.Resolve(item.ActionType)
	if err != nil {
		res.Err = err
		return
	}
	if err := action.Execute(ctx, item); err != nil {
		res.Err = fmt.Errorf("%s: %w", item.ActionType, err)
	}
	return
}
