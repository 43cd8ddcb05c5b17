package queue

import (
	"container/heap"
	"sort"
	"sync"
	"time"

	"github.com/ReconfigureIO/converge/models"
	uuid "github.com/satori/go.uuid"
)

var _ models.QueueRepo = &MemoryStore{}

// MemoryStore is a QueueRepo keeping items in runtime memory.
type MemoryStore struct {
	items map[string]models.QueueItem
	sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]models.QueueItem)}
}

func (m *MemoryStore) Push(item *models.QueueItem) error {
	m.Lock()
	defer m.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewV4().String()
	}
	if item.Status == "" {
		item.Status = models.StatusQueued
	}
	now := time.Now()
	if item.ScheduledFor.IsZero() {
		item.ScheduledFor = now
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	m.items[item.ID] = *item
	return nil
}

func (m *MemoryStore) ByID(id string) (models.QueueItem, error) {
	m.RLock()
	defer m.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return item, models.ErrNotFound
	}
	return item, nil
}

// Eligible returns eligible items ordered by scheduled time.
func (m *MemoryStore) Eligible(now time.Time, limit int) ([]models.QueueItem, error) {
	m.RLock()
	pq := &priorityQueue{}
	for _, item := range m.items {
		if item.Eligible(now, false) {
			*pq = append(*pq, item)
		}
	}
	m.RUnlock()

	heap.Init(pq)
	var items []models.QueueItem
	for pq.Len() > 0 && len(items) < limit {
		items = append(items, heap.Pop(pq).(models.QueueItem))
	}
	return items, nil
}

// Claim moves an eligible item to RUNNING under the store lock.
func (m *MemoryStore) Claim(id string, now time.Time, force bool) (models.QueueItem, error) {
	m.Lock()
	defer m.Unlock()

	item, ok := m.items[id]
	if !ok {
		return item, models.ErrNotFound
	}
	if !item.Eligible(now, force) {
		return item, models.ErrNotClaimed
	}
	item.Status = models.StatusRunning
	item.UpdatedAt = now
	m.items[id] = item
	return item, nil
}

func (m *MemoryStore) Finish(item *models.QueueItem) error {
	m.Lock()
	defer m.Unlock()

	stored, ok := m.items[item.ID]
	if !ok {
		return models.ErrNotFound
	}
	if stored.Status != models.StatusRunning {
		return models.ErrNotClaimed
	}
	stored.Status = item.Status
	stored.LastTry = item.LastTry
	stored.TryCount++
	stored.ErrorMessage = item.ErrorMessage
	stored.UpdatedAt = time.Now()
	m.items[item.ID] = stored
	item.TryCount = stored.TryCount
	return nil
}

func (m *MemoryStore) RequeueStale(before time.Time) (int64, error) {
	m.Lock()
	defer m.Unlock()

	var n int64
	for id, item := range m.items {
		if item.Status == models.StatusRunning && item.UpdatedAt.Before(before) {
			item.Status = models.StatusError
			item.ErrorMessage = "worker stopped before finishing the item"
			m.items[id] = item
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) Requeue(id string, now time.Time) (models.QueueItem, error) {
	m.Lock()
	defer m.Unlock()

	item, ok := m.items[id]
	if !ok {
		return item, models.ErrNotFound
	}
	if item.Status == models.StatusRunning {
		return item, models.ErrNotClaimed
	}
	item.Requeue(now)
	item.UpdatedAt = now
	m.items[id] = item
	return item, nil
}

func (m *MemoryStore) List(status string, limit int) ([]models.QueueItem, error) {
	m.RLock()
	var items []models.QueueItem
	for _, item := range m.items {
		if status == "" || item.Status == status {
			items = append(items, item)
		}
	}
	m.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (m *MemoryStore) Delete(id string) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.items[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

var _ heap.Interface = &priorityQueue{}

// priorityQueue orders items by scheduled time, then creation time.
type priorityQueue []models.QueueItem

func (q priorityQueue) Len() int      { return len(q) }
func (q priorityQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q priorityQueue) Less(i, j int) bool {
	if q[i].ScheduledFor.Equal(q[j].ScheduledFor) {
		return q[i].CreatedAt.Before(q[j].CreatedAt)
	}
	return q[i].ScheduledFor.Before(q[j].ScheduledFor)
}
func (q *priorityQueue) Push(x interface{}) { q.push(x) }
func (q *priorityQueue) Pop() interface{}   { return q.pop() }
func (q *priorityQueue) push(x interface{}) {
	entry, ok := x.(models.QueueItem)
	if !ok {
		return
	}
	*q = append(*q, entry)
}
func (q *priorityQueue) pop() interface{} {
	l := len(*q)
	if l == 0 {
		return nil
	}
	entry := (*q)[l-1]
	*q = (*q)[:l-1]
	return entry
}
