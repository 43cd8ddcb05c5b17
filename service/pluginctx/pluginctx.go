// Package pluginctx implements plugin.Context on top of the database and
// the newsroom services.
package pluginctx

import (
	"context"
	"fmt"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/service/index"
	"github.com/ReconfigureIO/converge/service/mail"
	"github.com/ReconfigureIO/converge/service/notification"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

var _ plugin.Context = &Context{}

// Transitioner moves content items between workflow steps.
type Transitioner interface {
	Transition(ctx context.Context, itemID, stepID int64) ([]models.QueueItem, error)
}

// Services are the collaborators a Context delegates to.
type Services struct {
	Logs     models.ActionLogRepo
	Indexer  index.Indexer
	Notifier notification.Notifier
	Mailer   mail.Mailer
	Workflow Transitioner
}

// Context is the plugin.Context given to every plugin invocation.
type Context struct {
	db *gorm.DB
	Services
}

// New creates a Context. db serves Find, Create and Update.
func New(db *gorm.DB, services Services) *Context {
	return &Context{db: db, Services: services}
}

func (c *Context) Find(ctx context.Context, out interface{}, id interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := c.db.First(out, "id = ?", id).Error
	if gorm.IsRecordNotFoundError(err) {
		return plugin.ErrNotFound
	}
	return err
}

func (c *Context) Create(ctx context.Context, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.db.Create(v).Error
}

func (c *Context) Update(ctx context.Context, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.db.Save(v).Error
}

// Log writes an action log entry and mirrors it to the process log.
// The template is a fmt format string. Failing to store the entry is not
// reported to the plugin.
func (c *Context) Log(ctx context.Context, severity models.Severity, action, instance, template string, args ...interface{}) {
	msg := fmt.Sprintf(template, args...)

	logger := log.WithFields(log.Fields{
		"action":   action,
		"instance": instance,
	})
	switch severity {
	case models.SeveritySevere:
		logger.Error(msg)
	case models.SeverityWarning:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}

	entry := models.ActionLog{
		Severity: severity,
		Action:   action,
		Instance: instance,
		Message:  msg,
		Created:  time.Now(),
	}
	if err := c.Logs.Append(&entry); err != nil {
		logger.WithError(err).Warn("could not store action log")
	}
}

func (c *Context) Index(ctx context.Context, item models.ContentItem) error {
	return c.Indexer.Index(ctx, item)
}

func (c *Context) Notify(ctx context.Context, n models.Notification) error {
	return c.Notifier.Notify(ctx, n)
}

func (c *Context) Mail(ctx context.Context, m mail.Message) error {
	return c.Mailer.Send(ctx, m)
}

func (c *Context) Transition(ctx context.Context, itemID, stepID int64) error {
	_, err := c.Workflow.Transition(ctx, itemID, stepID)
	return err
}
