package api

import (
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/queue"
	"github.com/ReconfigureIO/converge/sugar"
	"github.com/gin-gonic/gin"
)

const defaultLimit = 100

// Queue handles queue item requests.
type Queue struct {
	Repo     models.QueueRepo
	Registry *queue.Registry
	Executor Executor
	now      func() time.Time
}

// NewQueue creates a new Queue.
func NewQueue(repo models.QueueRepo, registry *queue.Registry, executor Executor) Queue {
	return Queue{
		Repo:     repo,
		Registry: registry,
		Executor: executor,
		now:      time.Now,
	}
}

// PostQueueItem is the body of a queue item creation request.
type PostQueueItem struct {
	ActionType   string     `json:"action_type" validate:"nonzero"`
	InstanceType string     `json:"instance_type" validate:"nonzero"`
	InstanceID   string     `json:"instance_id" validate:"nonzero"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// ExecutionResult is the response of an execution request.
type ExecutionResult struct {
	Item     models.QueueItem `json:"item"`
	Error    string           `json:"error,omitempty"`
	Terminal bool             `json:"terminal"`
	Duration string           `json:"duration"`
}

// List lists queue items, optionally filtered by status.
func (q Queue) List(c *gin.Context) {
	limit, ok := sugar.IntQuery(c, "limit", defaultLimit)
	if !ok {
		return
	}
	items, err := q.Repo.List(c.Query("status"), limit)
	if err != nil {
		sugar.InternalError(c, err)
		return
	}
	sugar.SuccessResponse(c, 200, items)
}

// Create enqueues a new item.
func (q Queue) Create(c *gin.Context) {
	post := PostQueueItem{}
	if err := c.ShouldBindJSON(&post); err != nil {
		sugar.ErrResponse(c, 400, err)
		return
	}
	if !sugar.ValidateRequest(c, post) {
		return
	}
	if !q.Registry.Exists(post.ActionType) {
		sugar.ErrResponse(c, 400, &queue.UnknownActionError{Key: post.ActionType})
		return
	}

	item := models.NewQueueItem(post.ActionType, post.InstanceType, post.InstanceID)
	if post.ScheduledFor != nil && post.ScheduledFor.After(q.now()) {
		item.Status = models.StatusScheduled
		item.ScheduledFor = *post.ScheduledFor
	}
	if err := q.Repo.Push(&item); err != nil {
		sugar.InternalError(c, err)
		return
	}
	sugar.SuccessResponse(c, 201, item)
}

// Get returns one item.
func (q Queue) Get(c *gin.Context) {
	item, err := q.Repo.ByID(c.Param("id"))
	if err != nil {
		sugar.NotFoundOrError(c, err)
		return
	}
	sugar.SuccessResponse(c, 200, item)
}

// Execute runs one item now. With force=true scheduled items run early
// and completed or failed items run again.
func (q Queue) Execute(c *gin.Context) {
	force := sugar.BoolQuery(c, "force")
	item, res, err := q.Executor.ExecuteNow(c.Request.Context(), c.Param("id"), force)
	switch err {
	case nil:
	case queue.ErrInFlight, queue.ErrNotEligible:
		sugar.ErrResponse(c, 409, err)
		return
	default:
		sugar.NotFoundOrError(c, err)
		return
	}

	result := ExecutionResult{
		Item:     item,
		Terminal: res.Terminal(),
		Duration: res.Duration.String(),
	}
	if res.Err != nil {
		result.Error = res.Err.Error()
	}
	sugar.SuccessResponse(c, 200, result)
}

// Requeue makes an item eligible again. Running items cannot be requeued.
func (q Queue) Requeue(c *gin.Context) {
	item, err := q.Repo.Requeue(c.Param("id"), q.now())
	switch err {
	case nil:
	case models.ErrNotClaimed:
		sugar.ErrResponse(c, 409, queue.ErrInFlight)
		return
	default:
		sugar.NotFoundOrError(c, err)
		return
	}
	sugar.SuccessResponse(c, 200, item)
}

// Delete removes an item.
func (q Queue) Delete(c *gin.Context) {
	if err := q.Repo.Delete(c.Param("id")); err != nil {
		sugar.NotFoundOrError(c, err)
		return
	}
	c.Status(204)
}
