// Package task brackets long running work with a persisted marker so
// running work is visible while it lasts.
package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/dchest/uniuri"
	log "github.com/sirupsen/logrus"
)

// Tracker creates and removes background task markers.
type Tracker struct {
	repo models.TaskRepo
}

// NewTracker creates a Tracker storing markers in repo.
func NewTracker(repo models.TaskRepo) *Tracker {
	return &Tracker{repo: repo}
}

// Handle is an acquired background task marker.
type Handle struct {
	Task models.BackgroundTask

	repo models.TaskRepo
	once sync.Once
	err  error
}

// Begin persists a marker for work called name.
func (t *Tracker) Begin(ctx context.Context, name string) (*Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	task := models.BackgroundTask{
		Name:    name,
		Token:   uniuri.NewLen(32),
		Started: time.Now(),
	}
	if err := t.repo.Create(&task); err != nil {
		return nil, fmt.Errorf("create background task %q: %w", name, err)
	}
	return &Handle{Task: task, repo: t.repo}, nil
}

// Release removes the marker. Only the first call has an effect; later
// calls return the result of the first.
func (h *Handle) Release() error {
	h.once.Do(func() {
		h.err = h.repo.Delete(h.Task.ID)
		if h.err != nil {
			log.WithError(h.err).WithField("task", h.Task.Name).Error("could not remove background task")
		}
	})
	return h.err
}

// List returns the tasks in progress.
func (t *Tracker) List() ([]models.BackgroundTask, error) {
	return t.repo.List()
}

// Track runs fn between Begin and Release. The marker is released when fn
// returns, fails or panics; a panic is re-raised after release.
func Track(ctx context.Context, t *Tracker, name string, fn func(ctx context.Context) error) error {
	h, err := t.Begin(ctx, name)
	if err != nil {
		return err
	}
	defer h.Release()
	return fn(ctx)
}
