// Package workflow moves content items through workflow steps.
package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ReconfigureIO/converge/models"
	log "github.com/sirupsen/logrus"
)

const (
	// ActionType is the queue action key running one step action for one item.
	ActionType = "workflow.step-action"
	// InstanceType is the instance type of step action queue items.
	InstanceType = "WorkflowStepAction"
)

// StepActionInstance returns the queue instance id of a step action
// running for a content item.
func StepActionInstance(stepActionID, itemID int64) string {
	return fmt.Sprintf("%d:%d", stepActionID, itemID)
}

// ParseStepActionInstance splits an instance id made by StepActionInstance.
func ParseStepActionInstance(instance string) (stepActionID, itemID int64, err error) {
	parts := strings.Split(instance, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed step action instance %q", instance)
	}
	if stepActionID, err = strconv.ParseInt(parts[0], 10, 64); err != nil {
		return 0, 0, fmt.Errorf("malformed step action instance %q: %w", instance, err)
	}
	if itemID, err = strconv.ParseInt(parts[1], 10, 64); err != nil {
		return 0, 0, fmt.Errorf("malformed step action instance %q: %w", instance, err)
	}
	return stepActionID, itemID, nil
}

// Service performs workflow transitions.
type Service struct {
	content models.ContentRepo
	queue   models.QueueRepo
}

// New creates a workflow Service.
func New(content models.ContentRepo, queue models.QueueRepo) *Service {
	return &Service{content: content, queue: queue}
}

// Transition moves the item to step and enqueues one queue item per
// action configured on the step. The actions run later on the queue.
func (s *Service) Transition(ctx context.Context, itemID, stepID int64) ([]models.QueueItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item, err := s.content.ByID(itemID)
	if err != nil {
		return nil, fmt.Errorf("content item %d: %w", itemID, err)
	}
	step, err := s.content.Step(stepID)
	if err != nil {
		return nil, fmt.Errorf("workflow step %d: %w", stepID, err)
	}
	if err := s.content.MoveToStep(&item, step); err != nil {
		return nil, err
	}

	queued := make([]models.QueueItem, 0, len(step.Actions))
	for _, action := range step.Actions {
		q := models.NewQueueItem(ActionType, InstanceType, StepActionInstance(action.ID, item.ID))
		if err := s.queue.Push(&q); err != nil {
			return queued, fmt.Errorf("enqueue step action %d: %w", action.ID, err)
		}
		queued = append(queued, q)
	}

	log.WithFields(log.Fields{
		"item":    item.ID,
		"step":    step.Name,
		"actions": len(queued),
	}).Info("content item transitioned")
	return queued, nil
}
