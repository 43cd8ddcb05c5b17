package api

import (
	"context"

	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/queue"
)

// Executor runs a queue item on demand.
type Executor interface {
	ExecuteNow(ctx context.Context, id string, force bool) (models.QueueItem, queue.Result, error)
}

// EditionService closes editions and triggers their actions.
type EditionService interface {
	Close(ctx context.Context, editionID int64) ([]message.EditionActionMessage, error)
	Trigger(ctx context.Context, editionID, actionID int64) (message.EditionActionMessage, error)
}
