package models

//go:generate mockgen -source=task.go -package=models -destination=task_mock.go

import (
	"time"

	"github.com/jinzhu/gorm"
)

// BackgroundTask marks long running work in progress.
type BackgroundTask struct {
	uuidHook
	ID      string    `gorm:"primary_key" json:"id"`
	Name    string    `json:"name"`
	Token   string    `json:"-"`
	Started time.Time `json:"started"`
}

// TaskRepo handles background task markers.
type TaskRepo interface {
	Create(task *BackgroundTask) error
	Delete(id string) error
	List() ([]BackgroundTask, error)
}

type taskRepo struct{ db *gorm.DB }

// TaskDataSource returns the data source for background tasks.
func TaskDataSource(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (repo *taskRepo) Create(task *BackgroundTask) error {
	return repo.db.Create(task).Error
}

func (repo *taskRepo) Delete(id string) error {
	return repo.db.Delete(&BackgroundTask{}, "id = ?", id).Error
}

func (repo *taskRepo) List() ([]BackgroundTask, error) {
	var tasks []BackgroundTask
	err := repo.db.Order("started").Find(&tasks).Error
	return tasks, err
}
