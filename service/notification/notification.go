// Package notification delivers notifications to newsroom users.
package notification

import (
	"context"
	"errors"
	"time"

	"github.com/ReconfigureIO/converge/models"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoUser    = errors.New("notification has no user")
	ErrNoMessage = errors.New("notification has no message")
)

// Notifier creates notifications.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// Service persists notifications.
type Service struct {
	repo models.NotificationRepo
	now  func() time.Time
}

// New creates a Service storing notifications in repo.
func New(repo models.NotificationRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Notify(ctx context.Context, n models.Notification) error {
	if n.UserID == "" {
		return ErrNoUser
	}
	if n.Message == "" {
		return ErrNoMessage
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	n.Read = false
	if n.Created.IsZero() {
		n.Created = s.now()
	}
	if err := s.repo.Create(&n); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"user":         n.UserID,
		"notification": n.ID,
	}).Debug("notification created")
	return nil
}

// Unread returns the unread notifications of a user.
func (s *Service) Unread(userID string) ([]models.Notification, error) {
	return s.repo.Unread(userID)
}
