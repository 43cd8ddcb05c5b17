package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ReconfigureIO/converge/models"
	metrics "github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

// durationSamples bounds the queue.duration histogram reservoir.
const durationSamples = 1028

var (
	// ErrInFlight is returned when an item is already being executed.
	ErrInFlight = errors.New("queue item is already running")
	// ErrNotEligible is returned when an item cannot run without force.
	ErrNotEligible = errors.New("queue item is not eligible to run")
)

// Scheduler polls a QueueRepo for eligible items and executes them.
type Scheduler struct {
	repo         models.QueueRepo
	registry     *Registry
	concurrent   int
	pollInterval time.Duration
	metrics      metrics.Registry
	now          func() time.Time

	slots    chan struct{}
	inflight map[string]struct{}
	mu       sync.Mutex
	wg       sync.WaitGroup

	halt     chan struct{}
	haltOnce sync.Once
}

// NewScheduler creates a scheduler running at most concurrent items at a
// time and polling every pollInterval. A nil metrics registry uses the
// go-metrics default registry.
func NewScheduler(repo models.QueueRepo, registry *Registry, concurrent int, pollInterval time.Duration, reg metrics.Registry) *Scheduler {
	if concurrent < 1 {
		concurrent = 1
	}
	if reg == nil {
		reg = metrics.DefaultRegistry
	}
	return &Scheduler{
		repo:         repo,
		registry:     registry,
		concurrent:   concurrent,
		pollInterval: pollInterval,
		metrics:      reg,
		now:          time.Now,
		slots:        make(chan struct{}, concurrent),
		inflight:     make(map[string]struct{}),
		halt:         make(chan struct{}),
	}
}

// Start polls and dispatches items until Halt is called or ctx is done.
// It returns after every dispatched item has finished.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

loop:
	for {
		select {
		case <-s.halt:
			break loop
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			s.poll(ctx)
		}
	}
	s.wg.Wait()
}

// Halt stops the scheduler from dispatching items.
func (s *Scheduler) Halt() {
	s.haltOnce.Do(func() { close(s.halt) })
}

// poll dispatches as many eligible items as there are free slots and
// returns the number dispatched.
func (s *Scheduler) poll(ctx context.Context) int {
	free := cap(s.slots) - len(s.slots)
	if free <= 0 {
		return 0
	}
	items, err := s.repo.Eligible(s.now(), free+s.inflightCount())
	if err != nil {
		log.WithError(err).Error("could not fetch eligible queue items")
		return 0
	}

	dispatched := 0
	for i := range items {
		id := items[i].ID
		if !s.claim(id) {
			continue
		}
		select {
		case s.slots <- struct{}{}:
		default:
			s.release(id)
			return dispatched
		}
		item, err := s.repo.Claim(id, s.now(), false)
		if err != nil {
			<-s.slots
			s.release(id)
			if err != models.ErrNotClaimed {
				log.WithError(err).WithField("item", id).Error("could not claim queue item")
			}
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer func() { <-s.slots }()
			defer s.release(item.ID)
			s.run(ctx, &item, false)
		}()
		dispatched++
	}
	return dispatched
}

func (s *Scheduler) inflightCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}

func (s *Scheduler) claim(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.inflight[id]; running {
		return false
	}
	s.inflight[id] = struct{}{}
	return true
}

func (s *Scheduler) release(id string) {
	s.mu.Lock()
	delete(s.inflight, id)
	s.mu.Unlock()
}

// ExecuteNow claims and runs one item synchronously, recording the attempt.
// Forcing runs scheduled items early, and completed or failed items again.
func (s *Scheduler) ExecuteNow(ctx context.Context, id string, force bool) (models.QueueItem, Result, error) {
	now := s.now()
	item, err := s.repo.ByID(id)
	if err != nil {
		return item, Result{ItemID: id}, err
	}
	if !s.claim(id) {
		return item, Result{ItemID: id}, ErrInFlight
	}
	defer s.release(id)

	claimed, err := s.repo.Claim(id, now, force)
	switch err {
	case nil:
	case models.ErrNotClaimed:
		if claimed.Status == models.StatusRunning {
			return claimed, Result{ItemID: id}, ErrInFlight
		}
		return claimed, Result{ItemID: id, NotDue: claimed.Status == models.StatusScheduled}, ErrNotEligible
	default:
		return item, Result{ItemID: id}, err
	}

	res := s.run(ctx, &claimed, force)
	return claimed, res, nil
}

// RecoverStale returns items claimed longer than age ago to ERROR so they
// run again. Workers call it at start for items left by a stopped worker.
func (s *Scheduler) RecoverStale(age time.Duration) (int64, error) {
	n, err := s.repo.RequeueStale(s.now().Add(-age))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.WithField("items", n).Warn("requeued queue items left running by a stopped worker")
	}
	return n, nil
}

// run executes a claimed item and records the attempt.
func (s *Scheduler) run(ctx context.Context, item *models.QueueItem, force bool) Result {
	res := ExecuteAt(ctx, s.registry, item, s.now(), force)

	item.RecordAttempt(s.now(), res.Err, res.Terminal())
	s.record(res)

	logger := log.WithFields(log.Fields{
		"item":     item.ID,
		"action":   item.ActionType,
		"instance": item.InstanceType + ":" + item.InstanceID,
		"try":      item.TryCount,
		"status":   item.Status,
	})
	switch {
	case res.Err == nil:
		logger.Info("queue item executed")
	case res.Terminal():
		logger.WithError(res.Err).Error("queue item failed, it will not be retried until requeued")
	default:
		logger.WithError(res.Err).Warn("queue item errored, it stays eligible")
	}

	if err := s.repo.Finish(item); err != nil {
		logger.WithError(err).Error("could not record queue item attempt")
	}
	return res
}

func (s *Scheduler) record(res Result) {
	metrics.GetOrRegisterCounter("queue.executed", s.metrics).Inc(1)
	metrics.GetOrRegisterHistogram("queue.duration", s.metrics, metrics.NewUniformSample(durationSamples)).Update(int64(res.Duration))
	if res.Err == nil {
		metrics.GetOrRegisterCounter("queue.succeeded", s.metrics).Inc(1)
	} else {
		metrics.GetOrRegisterCounter("queue.failed", s.metrics).Inc(1)
	}
}
