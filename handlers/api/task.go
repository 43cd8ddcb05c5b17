package api

import (
	"github.com/ReconfigureIO/converge/sugar"
	"github.com/ReconfigureIO/converge/task"
	"github.com/gin-gonic/gin"
)

// Task lists background tasks in progress.
type Task struct {
	Tracker *task.Tracker
}

func (t Task) List(c *gin.Context) {
	tasks, err := t.Tracker.List()
	if err != nil {
		sugar.InternalError(c, err)
		return
	}
	sugar.SuccessResponse(c, 200, tasks)
}
