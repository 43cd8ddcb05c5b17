package models

//go:generate mockgen -source=queue.go -package=models -destination=queue_mock.go

import (
	"time"

	"github.com/jinzhu/gorm"
)

// QueueItem is a persisted unit of work executed by a queue action.
type QueueItem struct {
	uuidHook
	ID           string     `gorm:"primary_key" json:"id"`
	Status       string     `gorm:"index" json:"status"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	LastTry      *time.Time `json:"last_try,omitempty"`
	TryCount     int        `json:"try_count"`
	ErrorMessage string     `gorm:"type:text" json:"error_message,omitempty"`
	InstanceType string     `json:"instance_type"`
	InstanceID   string     `json:"instance_id"`
	ActionType   string     `gorm:"not null" json:"action_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewQueueItem creates a queue item for the action key targeting an instance.
func NewQueueItem(actionType, instanceType, instanceID string) QueueItem {
	return QueueItem{
		Status:       StatusQueued,
		ScheduledFor: time.Now(),
		ActionType:   actionType,
		InstanceType: instanceType,
		InstanceID:   instanceID,
	}
}

// IsDue returns if a scheduled item has reached its scheduled time.
// Items in any other status are always due.
func (q QueueItem) IsDue(now time.Time) bool {
	if q.Status != StatusScheduled {
		return true
	}
	return !q.ScheduledFor.After(now)
}

// Eligible returns if the item may be executed now.
func (q QueueItem) Eligible(now time.Time, force bool) bool {
	switch q.Status {
	case StatusQueued, StatusError:
		return true
	case StatusScheduled:
		return force || q.IsDue(now)
	case StatusFailed, StatusCompleted:
		return force
	default:
		return false
	}
}

// claimableStatuses are the statuses an item may be claimed from. Scheduled
// items must also be due unless forced.
func claimableStatuses(force bool) []string {
	if force {
		return []string{StatusQueued, StatusError, StatusScheduled, StatusCompleted, StatusFailed}
	}
	return []string{StatusQueued, StatusError}
}

// RecordAttempt records the outcome of an execution attempt.
// A nil err marks the item completed. A terminal err marks it failed,
// any other err marks it errored and leaves it eligible.
func (q *QueueItem) RecordAttempt(at time.Time, err error, terminal bool) {
	q.TryCount++
	q.LastTry = &at
	switch {
	case err == nil:
		q.Status = StatusCompleted
		q.ErrorMessage = ""
	case terminal:
		q.Status = StatusFailed
		q.ErrorMessage = err.Error()
	default:
		q.Status = StatusError
		q.ErrorMessage = err.Error()
	}
}

// Requeue makes a completed or failed item eligible again.
func (q *QueueItem) Requeue(now time.Time) {
	q.Status = StatusQueued
	q.ScheduledFor = now
}

// QueueRepo handles queue item persistence.
type QueueRepo interface {
	// Push stores a new item.
	Push(item *QueueItem) error
	// ByID returns the item with id, ErrNotFound if missing.
	ByID(id string) (QueueItem, error)
	// Eligible returns up to limit items that can run at now, oldest schedule first.
	Eligible(now time.Time, limit int) ([]QueueItem, error)
	// Claim atomically moves an eligible item to RUNNING and returns it.
	// It returns ErrNotClaimed when the item is running or not eligible,
	// ErrNotFound when it does not exist.
	Claim(id string, now time.Time, force bool) (QueueItem, error)
	// Finish writes the outcome of an attempt on a claimed item and
	// increments its try count in storage.
	Finish(item *QueueItem) error
	// RequeueStale returns items claimed before the given time to ERROR,
	// for workers that stopped without finishing them.
	RequeueStale(before time.Time) (int64, error)
	// Requeue makes an item that is not running eligible again. It returns
	// ErrNotClaimed when the item is running.
	Requeue(id string, now time.Time) (QueueItem, error)
	// List returns items with status, all items when status is empty.
	List(status string, limit int) ([]QueueItem, error)
	// Delete removes an item.
	Delete(id string) error
}

type queueRepo struct{ db *gorm.DB }

// QueueDataSource returns the data source for queue items.
func QueueDataSource(db *gorm.DB) QueueRepo {
	return &queueRepo{db: db}
}

func (repo *queueRepo) Push(item *QueueItem) error {
	if item.Status == "" {
		item.Status = StatusQueued
	}
	if item.ScheduledFor.IsZero() {
		item.ScheduledFor = time.Now()
	}
	return repo.db.Create(item).Error
}

func (repo *queueRepo) ByID(id string) (QueueItem, error) {
	var item QueueItem
	err := repo.db.First(&item, "id = ?", id).Error
	return item, notFound(err)
}

func (repo *queueRepo) Eligible(now time.Time, limit int) ([]QueueItem, error) {
	var items []QueueItem
	err := repo.db.
		Where("status IN (?) OR (status = ? AND scheduled_for <= ?)",
			[]string{StatusQueued, StatusError}, StatusScheduled, now).
		Order("scheduled_for, created_at").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (repo *queueRepo) Claim(id string, now time.Time, force bool) (QueueItem, error) {
	q := repo.db.Model(&QueueItem{}).Where("id = ?", id)
	if force {
		q = q.Where("status IN (?)", claimableStatuses(true))
	} else {
		q = q.Where("status IN (?) OR (status = ? AND scheduled_for <= ?)",
			claimableStatuses(false), StatusScheduled, now)
	}
	res := q.Updates(map[string]interface{}{
		"status":     StatusRunning,
		"updated_at": now,
	})
	if res.Error != nil {
		return QueueItem{}, res.Error
	}
	item, err := repo.ByID(id)
	if err != nil {
		return item, err
	}
	if res.RowsAffected == 0 {
		return item, ErrNotClaimed
	}
	return item, nil
}

func (repo *queueRepo) Finish(item *QueueItem) error {
	res := repo.db.Model(&QueueItem{}).
		Where("id = ? AND status = ?", item.ID, StatusRunning).
		Updates(map[string]interface{}{
			"status":        item.Status,
			"last_try":      item.LastTry,
			"try_count":     gorm.Expr("try_count + 1"),
			"error_message": item.ErrorMessage,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotClaimed
	}
	return nil
}

func (repo *queueRepo) RequeueStale(before time.Time) (int64, error) {
	res := repo.db.Model(&QueueItem{}).
		Where("status = ? AND updated_at < ?", StatusRunning, before).
		Updates(map[string]interface{}{
			"status":        StatusError,
			"error_message": "worker stopped before finishing the item",
		})
	return res.RowsAffected, res.Error
}

func (repo *queueRepo) Requeue(id string, now time.Time) (QueueItem, error) {
	res := repo.db.Model(&QueueItem{}).
		Where("id = ? AND status <> ?", id, StatusRunning).
		Updates(map[string]interface{}{
			"status":        StatusQueued,
			"scheduled_for": now,
		})
	if res.Error != nil {
		return QueueItem{}, res.Error
	}
	item, err := repo.ByID(id)
	if err != nil {
		return item, err
	}
	if res.RowsAffected == 0 {
		return item, ErrNotClaimed
	}
	return item, nil
}

func (repo *queueRepo) List(status string, limit int) ([]QueueItem, error) {
	var items []QueueItem
	q := repo.db.Order("created_at desc").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&items).Error
	return items, err
}

func (repo *queueRepo) Delete(id string) error {
	res := repo.db.Delete(&QueueItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
