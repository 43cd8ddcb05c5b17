// Package edition closes editions and triggers their actions.
package edition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/models"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrClosed is returned when closing an edition twice.
	ErrClosed = errors.New("edition is already closed")
	// ErrForeignAction is returned when triggering an action of another outlet.
	ErrForeignAction = errors.New("edition action belongs to another outlet")
)

// Service publishes edition action messages.
type Service struct {
	editions models.EditionRepo
	broker   message.Broker
	now      func() time.Time
}

// New creates an edition Service.
func New(editions models.EditionRepo, broker message.Broker) *Service {
	return &Service{editions: editions, broker: broker, now: time.Now}
}

// Close closes the edition and publishes a message for every automatic
// action of its outlet. Manual actions only run through Trigger.
func (s *Service) Close(ctx context.Context, editionID int64) ([]message.EditionActionMessage, error) {
	edition, err := s.editions.ByID(editionID)
	if err != nil {
		return nil, fmt.Errorf("edition %d: %w", editionID, err)
	}
	if edition.Closed != nil {
		return nil, ErrClosed
	}
	actions, err := s.editions.ActionsForOutlet(edition.OutletID)
	if err != nil {
		return nil, err
	}
	if err := s.editions.Close(&edition, s.now()); err != nil {
		return nil, err
	}

	var published []message.EditionActionMessage
	for _, action := range actions {
		if action.ManualAction {
			continue
		}
		msg := message.EditionActionMessage{EditionID: edition.ID, ActionID: action.ID}
		if err := s.broker.Publish(ctx, message.TopicEditionActions, msg); err != nil {
			return published, fmt.Errorf("publish edition action %d: %w", action.ID, err)
		}
		published = append(published, msg)
	}

	log.WithFields(log.Fields{
		"edition": edition.ID,
		"outlet":  edition.OutletID,
		"actions": len(published),
	}).Info("edition closed")
	return published, nil
}

// Trigger publishes a message running one action against the edition.
func (s *Service) Trigger(ctx context.Context, editionID, actionID int64) (message.EditionActionMessage, error) {
	msg := message.EditionActionMessage{EditionID: editionID, ActionID: actionID}
	edition, err := s.editions.ByID(editionID)
	if err != nil {
		return msg, fmt.Errorf("edition %d: %w", editionID, err)
	}
	action, err := s.editions.Action(actionID)
	if err != nil {
		return msg, fmt.Errorf("edition action %d: %w", actionID, err)
	}
	if action.OutletID != edition.OutletID {
		return msg, ErrForeignAction
	}
	return msg, s.broker.Publish(ctx, message.TopicEditionActions, msg)
}
