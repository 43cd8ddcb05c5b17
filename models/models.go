package models

import (
	"errors"
	"time"

	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"
)

const (
	// StatusQueued is the status of a queue item waiting to run.
	StatusQueued = "QUEUED"
	// StatusError is the status of a queue item whose last attempt failed.
	// Items in this status stay eligible for execution.
	StatusError = "ERROR"
	// StatusScheduled is the status of a queue item that must not run
	// before its ScheduledFor time unless forced.
	StatusScheduled = "SCHEDULED"
	// StatusCompleted is the status of a queue item whose last attempt succeeded.
	StatusCompleted = "COMPLETED"
	// StatusFailed is the status of a queue item that hit a configuration
	// error. It only runs again after an explicit requeue.
	StatusFailed = "FAILED"
	// StatusRunning is the status of a queue item claimed by a worker.
	StatusRunning = "RUNNING"
)

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNotClaimed is returned when a queue item could not be claimed,
	// because it is running elsewhere or is no longer eligible.
	ErrNotClaimed = errors.New("queue item was not claimed")
)

// uuidHook hooks new uuid as primary key for models before creation.
type uuidHook struct{}

func (u uuidHook) BeforeCreate(scope *gorm.Scope) error {
	field, ok := scope.FieldByName("ID")
	if ok && !field.IsBlank {
		return nil
	}
	return scope.SetColumn("id", uuid.NewV4().String())
}

// notFound converts gorm's record not found error into ErrNotFound.
func notFound(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}

// Severity is the level of an action log entry.
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeveritySevere  Severity = "SEVERE"
)

// ActionLog records a message emitted by a plugin or queue action about
// the instance it was working on.
type ActionLog struct {
	ID       int64     `gorm:"primary_key" json:"id"`
	Severity Severity  `json:"severity"`
	Action   string    `gorm:"index" json:"action"`
	Instance string    `gorm:"index" json:"instance"`
	Message  string    `gorm:"type:text" json:"message"`
	Created  time.Time `json:"created"`
}

// Notification is a message shown to a newsroom user.
type Notification struct {
	ID      int64     `gorm:"primary_key" json:"id"`
	UserID  string    `gorm:"index" json:"user_id"`
	Message string    `gorm:"type:text" json:"message"`
	Link    string    `json:"link,omitempty"`
	Created time.Time `json:"created"`
	Read    bool      `json:"read"`
}
