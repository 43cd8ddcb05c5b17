package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/fortytw2/leaktest"
	"github.com/golang/mock/gomock"
	metrics "github.com/rcrowley/go-metrics"
)

func newTestScheduler(store models.QueueRepo, r *Registry, concurrent int) *Scheduler {
	return NewScheduler(store, r, concurrent, 5*time.Millisecond, metrics.NewRegistry())
}

func push(t *testing.T, store models.QueueRepo, actionType string, n int) []string {
	var ids []string
	for i := 0; i < n; i++ {
		item := models.NewQueueItem(actionType, "ContentItem", "1")
		item.ScheduledFor = time.Now().Add(-time.Minute)
		if err := store.Push(&item); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, item.ID)
	}
	return ids
}

func TestSchedulerRunsAllItems(t *testing.T) {
	defer leaktest.Check(t)()

	store := NewMemoryStore()
	r := NewRegistry()
	action := &countingAction{}
	r.RegisterAction("content.index", action)
	ids := push(t, store, "content.index", 5)

	s := newTestScheduler(store, r, 2)
	done := make(chan struct{})
	go func() {
		s.Start(context.Background())
		close(done)
	}()

	for i := 0; i < 200 && action.count() < 5; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	s.Halt()
	<-done

	for _, id := range ids {
		item, _ := store.ByID(id)
		if item.Status != models.StatusCompleted || item.TryCount != 1 {
			t.Errorf("item %s not completed once: %+v", id, item)
		}
	}
	if c := metrics.GetOrRegisterCounter("queue.succeeded", s.metrics).Count(); c != 5 {
		t.Errorf("expected 5 successes recorded, got %d", c)
	}
	if h, ok := s.metrics.Get("queue.duration").(metrics.Histogram); !ok || h.Count() != 5 {
		t.Errorf("expected 5 durations recorded, got %v", s.metrics.Get("queue.duration"))
	}
}

func TestSchedulerRetriesErroredItems(t *testing.T) {
	store := NewMemoryStore()
	r := NewRegistry()
	calls := 0
	r.RegisterAction("flaky", ActionFunc(func(context.Context, *models.QueueItem) error {
		calls++
		if calls == 1 {
			return plugin.Operational("post", errors.New("connection refused"))
		}
		return nil
	}))
	ids := push(t, store, "flaky", 1)
	s := newTestScheduler(store, r, 1)

	s.poll(context.Background())
	s.wg.Wait()
	item, _ := store.ByID(ids[0])
	if item.Status != models.StatusError || item.ErrorMessage == "" {
		t.Fatalf("expected errored item, got %+v", item)
	}

	s.poll(context.Background())
	s.wg.Wait()
	item, _ = store.ByID(ids[0])
	if item.Status != models.StatusCompleted || item.TryCount != 2 {
		t.Fatalf("expected completed item after retry, got %+v", item)
	}
}

func TestSchedulerDoesNotRetryConfigurationErrors(t *testing.T) {
	store := NewMemoryStore()
	r := NewRegistry()
	action := &countingAction{err: &plugin.ConfigError{Key: "url", Reason: "is required"}}
	r.RegisterAction("webhook", action)
	ids := push(t, store, "webhook", 1)
	s := newTestScheduler(store, r, 1)

	for i := 0; i < 3; i++ {
		s.poll(context.Background())
		s.wg.Wait()
	}
	item, _ := store.ByID(ids[0])
	if item.Status != models.StatusFailed || action.count() != 1 {
		t.Fatalf("expected a single failed attempt, got %+v runs=%d", item, action.count())
	}
}

func TestSchedulerBoundsConcurrency(t *testing.T) {
	store := NewMemoryStore()
	r := NewRegistry()
	release := make(chan struct{})
	started := make(chan struct{}, 10)
	r.RegisterAction("slow", ActionFunc(func(context.Context, *models.QueueItem) error {
		started <- struct{}{}
		<-release
		return nil
	}))
	push(t, store, "slow", 4)
	s := newTestScheduler(store, r, 2)

	if n := s.poll(context.Background()); n != 2 {
		t.Fatalf("expected 2 dispatched, got %d", n)
	}
	<-started
	<-started
	if n := s.poll(context.Background()); n != 0 {
		t.Fatalf("expected no dispatch while slots are busy, got %d", n)
	}
	close(release)
	s.wg.Wait()

	if n := s.poll(context.Background()); n != 2 {
		t.Fatalf("expected the remaining 2 dispatched, got %d", n)
	}
	s.wg.Wait()
}

func TestSchedulerExecuteNow(t *testing.T) {
	store := NewMemoryStore()
	r := NewRegistry()
	action := &countingAction{}
	r.RegisterAction("publish", action)
	s := newTestScheduler(store, r, 1)

	item := models.NewQueueItem("publish", "Edition", "3")
	item.Status = models.StatusScheduled
	item.ScheduledFor = time.Now().Add(time.Hour)
	store.Push(&item)

	_, res, err := s.ExecuteNow(context.Background(), item.ID, false)
	if err != ErrNotEligible || !res.NotDue {
		t.Fatalf("expected not eligible, got %v %+v", err, res)
	}

	updated, res, err := s.ExecuteNow(context.Background(), item.ID, true)
	if err != nil || !res.OK() {
		t.Fatalf("expected forced run to succeed, got %v %+v", err, res)
	}
	if updated.Status != models.StatusCompleted || updated.TryCount != 1 {
		t.Errorf("unexpected item %+v", updated)
	}

	// forcing a completed item runs it again.
	if _, _, err := s.ExecuteNow(context.Background(), item.ID, true); err != nil {
		t.Fatal(err)
	}
	if action.count() != 2 {
		t.Errorf("expected the action to run twice, got %d", action.count())
	}

	if _, _, err := s.ExecuteNow(context.Background(), "missing", true); err != models.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSchedulerSurvivesRepoErrors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := models.NewMockQueueRepo(mockCtrl)
	repo.EXPECT().Eligible(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection lost"))

	s := newTestScheduler(repo, NewRegistry(), 1)
	if n := s.poll(context.Background()); n != 0 {
		t.Errorf("expected nothing dispatched, got %d", n)
	}

	item := models.NewQueueItem("missing.action", "T", "1")
	item.ID = "abc"
	running := item
	running.Status = models.StatusRunning
	repo.EXPECT().Eligible(gomock.Any(), gomock.Any()).Return([]models.QueueItem{item}, nil)
	repo.EXPECT().Claim("abc", gomock.Any(), false).Return(running, nil)
	repo.EXPECT().Finish(gomock.Any()).Return(errors.New("connection lost"))

	if n := s.poll(context.Background()); n != 1 {
		t.Errorf("expected one dispatched, got %d", n)
	}
	s.wg.Wait()

	// an item claimed elsewhere between listing and claiming is skipped.
	repo.EXPECT().Eligible(gomock.Any(), gomock.Any()).Return([]models.QueueItem{item}, nil)
	repo.EXPECT().Claim("abc", gomock.Any(), false).Return(running, models.ErrNotClaimed)
	if n := s.poll(context.Background()); n != 0 {
		t.Errorf("expected nothing dispatched, got %d", n)
	}
	if len(s.slots) != 0 || s.inflightCount() != 0 {
		t.Errorf("expected slots to be released, got %d slots %d in flight", len(s.slots), s.inflightCount())
	}
}

func TestSchedulersShareItemsOnce(t *testing.T) {
	store := NewMemoryStore()
	r := NewRegistry()
	var mu sync.Mutex
	running, maxRunning, calls := 0, 0, 0
	r.RegisterAction("slow", ActionFunc(func(context.Context, *models.QueueItem) error {
		mu.Lock()
		calls++
		running++
		if running > maxRunning {
			maxRunning = running
		}
		mu.Unlock()
		time.Sleep(50 * time.Millisecond)
		mu.Lock()
		running--
		mu.Unlock()
		return nil
	}))
	ids := push(t, store, "slow", 1)
	api := newTestScheduler(store, r, 1)
	worker := newTestScheduler(store, r, 1)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, s := range []*Scheduler{api, worker} {
		wg.Add(1)
		go func(s *Scheduler) {
			defer wg.Done()
			_, _, err := s.ExecuteNow(context.Background(), ids[0], false)
			errs <- err
		}(s)
	}
	wg.Wait()
	close(errs)

	var inFlight int
	for err := range errs {
		switch err {
		case nil:
		case ErrInFlight, ErrNotEligible:
			inFlight++
		default:
			t.Fatal(err)
		}
	}
	item, _ := store.ByID(ids[0])
	if calls != 1 || maxRunning != 1 || inFlight != 1 {
		t.Errorf("expected one run, got calls=%d concurrent=%d rejected=%d", calls, maxRunning, inFlight)
	}
	if item.Status != models.StatusCompleted || item.TryCount != 1 {
		t.Errorf("unexpected item %+v", item)
	}

	// a poll does not pick up an item another scheduler is running.
	release := make(chan struct{})
	started := make(chan struct{})
	r.RegisterAction("held", ActionFunc(func(context.Context, *models.QueueItem) error {
		close(started)
		<-release
		return nil
	}))
	held := push(t, store, "held", 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		api.ExecuteNow(context.Background(), held[0], false)
	}()
	<-started
	if n := worker.poll(context.Background()); n != 0 {
		t.Errorf("expected the running item to be skipped, got %d dispatched", n)
	}
	if _, _, err := worker.ExecuteNow(context.Background(), held[0], true); err != ErrInFlight {
		t.Errorf("expected ErrInFlight forcing a running item, got %v", err)
	}
	close(release)
	<-done
}

func TestSchedulerUsesItsClock(t *testing.T) {
	store := NewMemoryStore()
	r := NewRegistry()
	action := &countingAction{}
	r.RegisterAction("later", action)

	item := models.NewQueueItem("later", "T", "1")
	item.Status = models.StatusScheduled
	item.ScheduledFor = time.Now().Add(time.Hour)
	store.Push(&item)

	s := newTestScheduler(store, r, 1)
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if n := s.poll(context.Background()); n != 1 {
		t.Fatalf("expected the due item to be dispatched, got %d", n)
	}
	s.wg.Wait()

	stored, _ := store.ByID(item.ID)
	if action.count() != 1 || stored.Status != models.StatusCompleted || stored.TryCount != 1 {
		t.Errorf("expected the item to run once, got %+v runs=%d", stored, action.count())
	}
}

func TestSchedulerRecoverStale(t *testing.T) {
	store := NewMemoryStore()
	ids := push(t, store, "content.index", 1)
	store.Claim(ids[0], time.Now().Add(-2*time.Hour), false)

	s := newTestScheduler(store, NewRegistry(), 1)
	n, err := s.RecoverStale(time.Hour)
	if err != nil || n != 1 {
		t.Fatalf("expected one stale item, got %d %v", n, err)
	}
	if items, _ := store.Eligible(time.Now(), 10); len(items) != 1 {
		t.Errorf("expected the stale item to be eligible again, got %+v", items)
	}
}
