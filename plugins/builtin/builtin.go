// Package builtin registers the plugins shipped with Converge.
package builtin

import (
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/plugins/mailer"
	"github.com/ReconfigureIO/converge/plugins/reindex"
	"github.com/ReconfigureIO/converge/plugins/rss"
	"github.com/ReconfigureIO/converge/plugins/webhook"
)

// Factories maps the key of every bundled plugin to its factory.
var Factories = map[string]plugin.Factory{
	webhook.Key:     webhook.New,
	reindex.Key:     reindex.New,
	reindex.ItemKey: reindex.NewContentAction,
	mailer.Key:      mailer.New,
	rss.Key:         rss.New,
}

// Register adds the bundled plugins to r.
func Register(r *plugin.Registry) error {
	for key, factory := range Factories {
		if err := r.Register(key, factory); err != nil {
			return err
		}
	}
	return nil
}
