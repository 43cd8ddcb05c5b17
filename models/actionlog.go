package models

//go:generate mockgen -source=actionlog.go -package=models -destination=actionlog_mock.go

import (
	"time"

	"github.com/jinzhu/gorm"
)

// ActionLogRepo stores action log entries.
type ActionLogRepo interface {
	Append(entry *ActionLog) error
	// ForInstance returns the newest entries about instance.
	ForInstance(instance string, limit int) ([]ActionLog, error)
}

type actionLogRepo struct{ db *gorm.DB }

// ActionLogDataSource returns the data source for action logs.
func ActionLogDataSource(db *gorm.DB) ActionLogRepo {
	return &actionLogRepo{db: db}
}

func (repo *actionLogRepo) Append(entry *ActionLog) error {
	if entry.Created.IsZero() {
		entry.Created = time.Now()
	}
	return repo.db.Create(entry).Error
}

func (repo *actionLogRepo) ForInstance(instance string, limit int) ([]ActionLog, error) {
	var entries []ActionLog
	err := repo.db.Where("instance = ?", instance).
		Order("created desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// NotificationRepo stores user notifications.
type NotificationRepo interface {
	Create(n *Notification) error
	// Unread returns the unread notifications of a user, newest first.
	Unread(userID string) ([]Notification, error)
}

type notificationRepo struct{ db *gorm.DB }

// NotificationDataSource returns the data source for notifications.
func NotificationDataSource(db *gorm.DB) NotificationRepo {
	return &notificationRepo{db: db}
}

func (repo *notificationRepo) Create(n *Notification) error {
	return repo.db.Create(n).Error
}

func (repo *notificationRepo) Unread(userID string) ([]Notification, error) {
	var ns []Notification
	err := repo.db.Where("user_id = ? AND read = ?", userID, false).
		Order("created desc").
		Find(&ns).Error
	return ns, err
}
