// Package jobs holds the queue actions bundled with Converge.
package jobs

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/queue"
	"github.com/ReconfigureIO/converge/service/workflow"
	"github.com/abiosoft/errs"
	log "github.com/sirupsen/logrus"
)

const (
	// ContentIndex re-indexes the content item named by the instance id.
	ContentIndex = "content.index"
	// ContentPluginAction runs a content action plugin configuration
	// against a content item. The instance id is
	// "<pluginConfigurationID>:<contentItemID>".
	ContentPluginAction = "content.plugin-action"

	InstanceContentItem = "ContentItem"
	InstancePluginItem  = "PluginConfiguration"
)

// Deps are the collaborators of the bundled actions.
type Deps struct {
	Content       models.ContentRepo
	PluginConfigs models.PluginConfigRepo
	Plugins       *plugin.Registry
	Context       plugin.Context
}

// Register adds the bundled actions to r.
func Register(r *queue.Registry, d Deps) error {
	factories := map[string]queue.Factory{
		workflow.ActionType: func() (queue.Action, error) { return &stepAction{d}, nil },
		ContentIndex:        func() (queue.Action, error) { return &indexAction{d}, nil },
		ContentPluginAction: func() (queue.Action, error) { return &contentPluginAction{d}, nil },
	}
	for _, key := range []string{workflow.ActionType, ContentIndex, ContentPluginAction} {
		if err := r.Register(key, factories[key]); err != nil {
			return err
		}
	}
	return nil
}

// PluginInstance returns the instance id of a content plugin action item.
func PluginInstance(pluginConfigurationID, itemID int64) string {
	return fmt.Sprintf("%d:%d", pluginConfigurationID, itemID)
}

func malformed(item *models.QueueItem, err error) error {
	return &plugin.ConfigError{
		Key:    "instance_id",
		Reason: fmt.Sprintf("%q is malformed: %v", item.InstanceID, err),
	}
}

type stepAction struct{ Deps }

func (a *stepAction) Execute(ctx context.Context, item *models.QueueItem) error {
	stepActionID, itemID, err := workflow.ParseStepActionInstance(item.InstanceID)
	if err != nil {
		return malformed(item, err)
	}
	// each lookup depends on the previous one
	var e errs.Group
	var sa models.WorkflowStepAction
	var content models.ContentItem
	var step models.WorkflowStep
	e.Add(func() (err error) {
		if sa, err = a.Content.StepAction(stepActionID); err != nil {
			return fmt.Errorf("step action %d: %w", stepActionID, err)
		}
		return nil
	})
	e.Add(func() (err error) {
		if content, err = a.Content.ByID(itemID); err != nil {
			return fmt.Errorf("content item %d: %w", itemID, err)
		}
		return nil
	})
	e.Add(func() (err error) {
		if step, err = a.Content.Step(sa.WorkflowStepID); err != nil {
			return fmt.Errorf("workflow step %d: %w", sa.WorkflowStepID, err)
		}
		return nil
	})
	if err := e.Exec(); err != nil {
		return err
	}

	pc := sa.PluginConfiguration
	if !pc.Active {
		log.WithFields(log.Fields{
			"item":   item.ID,
			"plugin": pc.PluginKey,
		}).Info("plugin configuration inactive, skipping")
		return nil
	}
	p, err := a.Plugins.WorkflowAction(pc.PluginKey)
	if err != nil {
		return err
	}
	conf, err := plugin.ConfigurationOf(pc)
	if err != nil {
		return err
	}
	return p.Execute(ctx, a.Context, plugin.WorkflowInvocation{
		Item:       content,
		Step:       step,
		StepAction: sa,
		Config:     conf,
	})
}

type indexAction struct{ Deps }

func (a *indexAction) Execute(ctx context.Context, item *models.QueueItem) error {
	id, err := strconv.ParseInt(item.InstanceID, 10, 64)
	if err != nil {
		return malformed(item, err)
	}
	content, err := a.Content.ByID(id)
	if err != nil {
		return fmt.Errorf("content item %d: %w", id, err)
	}
	return a.Context.Index(ctx, content)
}

type contentPluginAction struct{ Deps }

func (a *contentPluginAction) Execute(ctx context.Context, item *models.QueueItem) error {
	parts := strings.Split(item.InstanceID, ":")
	if len(parts) != 2 {
		return malformed(item, fmt.Errorf("expected <configuration>:<item>"))
	}
	pcID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return malformed(item, err)
	}
	itemID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return malformed(item, err)
	}

	pc, err := a.PluginConfigs.ByID(pcID)
	if err != nil {
		return fmt.Errorf("plugin configuration %d: %w", pcID, err)
	}
	content, err := a.Content.ByID(itemID)
	if err != nil {
		return fmt.Errorf("content item %d: %w", itemID, err)
	}
	if !pc.Active {
		log.WithFields(log.Fields{
			"item":   item.ID,
			"plugin": pc.PluginKey,
		}).Info("plugin configuration inactive, skipping")
		return nil
	}
	p, err := a.Plugins.ContentAction(pc.PluginKey)
	if err != nil {
		return err
	}
	conf, err := plugin.ConfigurationOf(pc)
	if err != nil {
		return err
	}
	return p.Execute(ctx, a.Context, plugin.ContentInvocation{Item: content, Config: conf})
}
