// Package plugin defines the contracts between Converge and its plugins:
// edition actions, workflow actions, content actions and newswire decoders.
//
// Every plugin is constructed by a Factory with its Metadata, describes the
// properties it can be configured with, and validates its Configuration
// before doing any work. Missing or malformed configuration is reported as
// a *ConfigError, which callers treat as terminal. Any other failure is
// operational and may be retried.
package plugin

import (
	"context"
	"time"

	"github.com/ReconfigureIO/converge/models"
)

// Metadata describes a plugin.
type Metadata struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Vendor      string    `json:"vendor"`
	Date        time.Time `json:"date"`
}

// Plugin is implemented by every plugin family.
type Plugin interface {
	Metadata() Metadata
	// AvailableProperties maps a property label to its configuration key.
	AvailableProperties() map[string]string
}

// Base implements Plugin and is meant to be embedded.
type Base struct {
	meta       Metadata
	properties map[string]string
}

// NewBase creates a Base with metadata and a label to key property map.
func NewBase(meta Metadata, properties map[string]string) Base {
	return Base{meta: meta, properties: properties}
}

// Metadata returns the plugin metadata.
func (b Base) Metadata() Metadata { return b.meta }

// AvailableProperties returns a copy of the property schema.
func (b Base) AvailableProperties() map[string]string {
	props := make(map[string]string, len(b.properties))
	for label, key := range b.properties {
		props[label] = key
	}
	return props
}

// EditionInvocation is the input of an edition action.
type EditionInvocation struct {
	Edition models.Edition
	Action  models.EditionActionConfig
	Config  Configuration
}

// EditionAction runs against a whole edition, typically when it closes.
type EditionAction interface {
	Plugin
	Execute(ctx context.Context, pctx Context, inv EditionInvocation) error
}

// WorkflowInvocation is the input of a workflow action.
type WorkflowInvocation struct {
	Item       models.ContentItem
	Step       models.WorkflowStep
	StepAction models.WorkflowStepAction
	Config     Configuration
}

// WorkflowAction runs when a content item enters a workflow step.
type WorkflowAction interface {
	Plugin
	Execute(ctx context.Context, pctx Context, inv WorkflowInvocation) error
}

// ContentInvocation is the input of a content action.
type ContentInvocation struct {
	Item   models.ContentItem
	Config Configuration
}

// ContentAction runs against a single content item.
type ContentAction interface {
	Plugin
	Execute(ctx context.Context, pctx Context, inv ContentInvocation) error
}

// NewswireDecoder fetches and decodes the items of a newswire service.
type NewswireDecoder interface {
	Plugin
	Decode(ctx context.Context, pctx Context, service models.NewswireService, conf Configuration) ([]models.NewswireItem, error)
}
