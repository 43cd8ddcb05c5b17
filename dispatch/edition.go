package dispatch

import (
	"context"
	"fmt"

	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	log "github.com/sirupsen/logrus"
)

// EditionActionConsumer runs edition action plugins for edition action
// messages.
type EditionActionConsumer struct {
	editions models.EditionRepo
	plugins  *plugin.Registry
	pctx     plugin.Context
}

// NewEditionActionConsumer creates an EditionActionConsumer.
func NewEditionActionConsumer(editions models.EditionRepo, plugins *plugin.Registry, pctx plugin.Context) *EditionActionConsumer {
	return &EditionActionConsumer{editions: editions, plugins: plugins, pctx: pctx}
}

// Handle runs the action of msg against its edition. A failure is logged
// against the edition and returned; the message is not retried.
func (c *EditionActionConsumer) Handle(ctx context.Context, msg message.EditionActionMessage) error {
	err := c.handle(ctx, msg)
	if err != nil {
		c.pctx.Log(ctx, models.SeveritySevere, "edition-action", instance(msg), "edition action %d failed: %v", msg.ActionID, err)
	}
	return err
}

func (c *EditionActionConsumer) handle(ctx context.Context, msg message.EditionActionMessage) error {
	action, err := c.editions.Action(msg.ActionID)
	if err != nil {
		return fmt.Errorf("edition action %d: %w", msg.ActionID, err)
	}
	edition, err := c.editions.ByID(msg.EditionID)
	if err != nil {
		return fmt.Errorf("edition %d: %w", msg.EditionID, err)
	}

	pc := action.PluginConfiguration
	logger := log.WithFields(log.Fields{
		"edition": edition.ID,
		"action":  action.Label,
		"plugin":  pc.PluginKey,
	})
	if !pc.Active {
		logger.Info("plugin configuration inactive, skipping")
		return nil
	}

	p, err := c.plugins.EditionAction(pc.PluginKey)
	if err != nil {
		return err
	}
	conf, err := plugin.ConfigurationOf(pc)
	if err != nil {
		return err
	}
	err = p.Execute(ctx, c.pctx, plugin.EditionInvocation{
		Edition: edition,
		Action:  action,
		Config:  conf,
	})
	if err != nil {
		return err
	}
	logger.Info("edition action executed")
	return nil
}

// HandleDelivery decodes an EditionActionMessage and handles it.
func (c *EditionActionConsumer) HandleDelivery(ctx context.Context, d message.Delivery) error {
	var msg message.EditionActionMessage
	if err := d.Decode(&msg); err != nil {
		return fmt.Errorf("decode edition action message: %w", err)
	}
	return c.Handle(ctx, msg)
}

func instance(msg message.EditionActionMessage) string {
	return fmt.Sprintf("Edition:%d", msg.EditionID)
}
