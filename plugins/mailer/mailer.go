// Package mailer mails the newsroom when a content item reaches a
// workflow step.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/service/mail"
)

// Key is the registry key of the plugin.
const Key = "mailer"

// Plugin is the mailer workflow action.
type Plugin struct {
	plugin.Base
}

// New creates the plugin.
func New(meta plugin.Metadata) plugin.Plugin {
	return &Plugin{Base: plugin.NewBase(meta, map[string]string{
		"Recipient":           "recipient",
		"Subject":             "subject",
		"Notify the assignee": "notify-user",
	})}
}

// Execute mails the configured recipients and optionally notifies the
// assignee of the item.
func (p *Plugin) Execute(ctx context.Context, pctx plugin.Context, inv plugin.WorkflowInvocation) error {
	v := inv.Config.Validate()
	recipients := v.RequireAll("recipient")
	subject := v.Require("subject")
	notify := v.OptionalBool("notify-user", false)
	if err := v.Err(); err != nil {
		return err
	}
	for _, r := range recipients {
		if !strings.Contains(r, "@") {
			return &plugin.ConfigError{Key: "recipient", Reason: fmt.Sprintf("%q is not an e-mail address", r)}
		}
	}

	msg := mail.Message{
		To:      recipients,
		Subject: fmt.Sprintf("%s: %s", subject, inv.Item.Title),
		Body:    fmt.Sprintf("%q has moved to %s.", inv.Item.Title, inv.Step.Name),
	}
	if err := pctx.Mail(ctx, msg); err != nil {
		return plugin.Operational("send mail", err)
	}

	if notify && inv.Item.AssigneeID != "" {
		err := pctx.Notify(ctx, models.Notification{
			UserID:  inv.Item.AssigneeID,
			Message: fmt.Sprintf("%q has moved to %s", inv.Item.Title, inv.Step.Name),
			Link:    fmt.Sprintf("/content/%d", inv.Item.ID),
		})
		if err != nil {
			return plugin.Operational("notify assignee", err)
		}
	}
	return nil
}
