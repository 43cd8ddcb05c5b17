package plugin

//go:generate mockgen -source=context.go -package=plugin -destination=context_mock.go

import (
	"context"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/service/mail"
)

// Context gives plugins access to persistence and the newsroom services.
type Context interface {
	// Find loads the record with id into out, ErrNotFound if it is missing.
	Find(ctx context.Context, out interface{}, id interface{}) error
	// Create stores a new record.
	Create(ctx context.Context, v interface{}) error
	// Update stores changes to a record.
	Update(ctx context.Context, v interface{}) error
	// Log records a message about an action working on an instance.
	Log(ctx context.Context, severity models.Severity, action, instance, template string, args ...interface{})
	// Index submits a content item to the search index.
	Index(ctx context.Context, item models.ContentItem) error
	// Notify creates a user notification.
	Notify(ctx context.Context, n models.Notification) error
	// Mail sends a mail message.
	Mail(ctx context.Context, msg mail.Message) error
	// Transition moves a content item to a workflow step.
	Transition(ctx context.Context, itemID, stepID int64) error
}
