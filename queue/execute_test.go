package queue

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
)

type countingAction struct {
	runs int64
	err  error
}

func (c *countingAction) Execute(ctx context.Context, item *models.QueueItem) error {
	atomic.AddInt64(&c.runs, 1)
	return c.err
}

func (c *countingAction) count() int64 { return atomic.LoadInt64(&c.runs) }

func TestExecuteUnknownAction(t *testing.T) {
	item := models.NewQueueItem("does.not.exist", "ContentItem", "1")
	res := Execute(context.Background(), NewRegistry(), &item, false)
	if res.OK() {
		t.Fatal("expected failure")
	}
	var unknown *UnknownActionError
	if !errors.As(res.Err, &unknown) {
		t.Errorf("expected UnknownActionError, got %v", res.Err)
	}
	if res.Terminal() {
		t.Error("an unknown action should not be terminal")
	}
}

func TestExecuteSuccessAndFailure(t *testing.T) {
	r := NewRegistry()
	ok := &countingAction{}
	failing := &countingAction{err: plugin.Operational("post", errors.New("timeout"))}
	misconfigured := &countingAction{err: &plugin.ConfigError{Key: "url", Reason: "is required"}}
	r.RegisterAction("ok", ok)
	r.RegisterAction("failing", failing)
	r.RegisterAction("misconfigured", misconfigured)

	item := models.NewQueueItem("ok", "T", "1")
	if res := Execute(context.Background(), r, &item, false); !res.OK() {
		t.Errorf("expected success, got %v", res.Err)
	}

	item = models.NewQueueItem("failing", "T", "1")
	res := Execute(context.Background(), r, &item, false)
	if res.OK() || res.Terminal() {
		t.Errorf("expected transient failure, got %+v", res)
	}
	if !strings.HasPrefix(res.Err.Error(), "failing: post: timeout") {
		t.Errorf("unexpected error %q", res.Err)
	}

	item = models.NewQueueItem("misconfigured", "T", "1")
	res = Execute(context.Background(), r, &item, false)
	if !res.Terminal() {
		t.Errorf("expected terminal failure, got %+v", res)
	}
}

func TestExecuteRecoversPanics(t *testing.T) {
	r := NewRegistry()
	r.RegisterAction("explode", ActionFunc(func(context.Context, *models.QueueItem) error {
		panic("nil edition")
	}))
	item := models.NewQueueItem("explode", "T", "1")
	res := Execute(context.Background(), r, &item, false)
	if res.Err == nil || !strings.Contains(res.Err.Error(), "nil edition") {
		t.Errorf("expected panic to be captured, got %v", res.Err)
	}
}

func TestExecuteScheduledGate(t *testing.T) {
	r := NewRegistry()
	action := &countingAction{}
	r.RegisterAction("later", action)

	item := models.NewQueueItem("later", "T", "1")
	item.Status = models.StatusScheduled
	item.ScheduledFor = time.Now().Add(time.Hour)

	res := Execute(context.Background(), r, &item, false)
	if !res.NotDue || res.OK() || action.count() != 0 {
		t.Fatalf("expected scheduled item to be skipped, got %+v runs=%d", res, action.count())
	}

	res = Execute(context.Background(), r, &item, true)
	if !res.OK() || action.count() != 1 {
		t.Fatalf("expected forced item to run, got %+v runs=%d", res, action.count())
	}
}

func TestExecuteAtUsesGivenClock(t *testing.T) {
	r := NewRegistry()
	action := &countingAction{}
	r.RegisterAction("later", action)

	at := time.Date(2018, 10, 17, 9, 0, 0, 0, time.UTC)
	item := models.NewQueueItem("later", "T", "1")
	item.Status = models.StatusScheduled
	item.ScheduledFor = at

	if res := ExecuteAt(context.Background(), r, &item, at.Add(-time.Second), false); !res.NotDue {
		t.Fatalf("expected the item not to be due yet, got %+v", res)
	}
	if res := ExecuteAt(context.Background(), r, &item, at, false); !res.OK() || action.count() != 1 {
		t.Fatalf("expected the item to run once due, got %+v runs=%d", res, action.count())
	}
}

func TestExecuteIsAtLeastOnce(t *testing.T) {
	// Executing the same item twice runs the action twice; nothing
	// deduplicates side effects.
	r := NewRegistry()
	action := &countingAction{}
	r.RegisterAction("notify", action)

	item := models.NewQueueItem("notify", "Notification", "7")
	Execute(context.Background(), r, &item, false)
	Execute(context.Background(), r, &item, false)
	if action.count() != 2 {
		t.Errorf("expected 2 runs, got %d", action.count())
	}
}
