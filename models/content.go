package models

//go:generate mockgen -source=content.go -package=models -destination=content_mock.go

import (
	"time"

	"github.com/jinzhu/gorm"
)

// ContentItem is a story, image or other piece of newsroom content.
type ContentItem struct {
	ID             int64     `gorm:"primary_key" json:"id"`
	Title          string    `json:"title"`
	Body           string    `gorm:"type:text" json:"body"`
	State          string    `json:"state"`
	AssigneeID     string    `json:"assignee_id,omitempty"`
	WorkflowStepID int64     `json:"workflow_step_id"`
	Updated        time.Time `json:"updated"`
}

// WorkflowStep is a state in a content workflow. Entering a step runs its
// actions.
type WorkflowStep struct {
	ID      int64                `gorm:"primary_key" json:"id"`
	Name    string               `json:"name"`
	State   string               `json:"state"`
	Actions []WorkflowStepAction `json:"actions" gorm:"ForeignKey:WorkflowStepID"`
}

// WorkflowStepAction binds a workflow action plugin configuration to a step.
type WorkflowStepAction struct {
	ID                    int64               `gorm:"primary_key" json:"id"`
	WorkflowStepID        int64               `gorm:"index" json:"workflow_step_id"`
	PluginConfigurationID int64               `json:"plugin_configuration_id"`
	PluginConfiguration   PluginConfiguration `json:"plugin_configuration" gorm:"ForeignKey:PluginConfigurationID"`
	Sort                  int                 `json:"sort"`
}

// ContentRepo handles content items and their workflow.
type ContentRepo interface {
	ByID(id int64) (ContentItem, error)
	// Step returns a workflow step with its actions ordered.
	Step(id int64) (WorkflowStep, error)
	// StepAction returns a step action with its plugin configuration.
	StepAction(id int64) (WorkflowStepAction, error)
	// MoveToStep sets the workflow step and state of an item.
	MoveToStep(item *ContentItem, step WorkflowStep) error
}

type contentRepo struct{ db *gorm.DB }

// ContentDataSource returns the data source for content items.
func ContentDataSource(db *gorm.DB) ContentRepo {
	return &contentRepo{db: db}
}

func (repo *contentRepo) ByID(id int64) (ContentItem, error) {
	var item ContentItem
	err := repo.db.First(&item, "id = ?", id).Error
	return item, notFound(err)
}

func (repo *contentRepo) Step(id int64) (WorkflowStep, error) {
	var step WorkflowStep
	err := repo.db.Preload("Actions", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort")
	}).First(&step, "id = ?", id).Error
	return step, notFound(err)
}

func (repo *contentRepo) StepAction(id int64) (WorkflowStepAction, error) {
	var action WorkflowStepAction
	err := repo.db.Preload("PluginConfiguration").First(&action, "id = ?", id).Error
	return action, notFound(err)
}

func (repo *contentRepo) MoveToStep(item *ContentItem, step WorkflowStep) error {
	item.WorkflowStepID = step.ID
	item.State = step.State
	item.Updated = time.Now()
	return repo.db.Model(item).Updates(map[string]interface{}{
		"workflow_step_id": item.WorkflowStepID,
		"state":            item.State,
		"updated":          item.Updated,
	}).Error
}
