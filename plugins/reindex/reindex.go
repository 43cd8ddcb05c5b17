// Package reindex submits content to the search index again.
package reindex

import (
	"context"
	"fmt"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
)

const (
	// Key is the registry key of the edition action.
	Key = "reindex"
	// ItemKey is the registry key of the content action.
	ItemKey = "reindex.item"
)

// Plugin re-indexes the items of an edition, or a single item.
type Plugin struct {
	plugin.Base
}

// New creates the plugin.
func New(meta plugin.Metadata) plugin.Plugin {
	return &Plugin{Base: plugin.NewBase(meta, map[string]string{})}
}

// Execute indexes every placed item. A failing item is logged and the
// others are still indexed.
func (p *Plugin) Execute(ctx context.Context, pctx plugin.Context, inv plugin.EditionInvocation) error {
	instance := fmt.Sprintf("Edition:%d", inv.Edition.ID)
	failed := 0
	for _, pl := range inv.Edition.Placements {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pctx.Index(ctx, pl.ContentItem); err != nil {
			failed++
			pctx.Log(ctx, models.SeverityWarning, Key, instance, "could not index content item %d: %v", pl.ContentItemID, err)
		}
	}
	if failed > 0 {
		return plugin.Operational("reindex edition", fmt.Errorf("%d of %d items not indexed", failed, len(inv.Edition.Placements)))
	}
	pctx.Log(ctx, models.SeverityInfo, Key, instance, "indexed %d items", len(inv.Edition.Placements))
	return nil
}

// NewContentAction creates the content action form of the plugin.
func NewContentAction(meta plugin.Metadata) plugin.Plugin {
	return &ContentPlugin{Base: plugin.NewBase(meta, map[string]string{})}
}

// ContentPlugin re-indexes a single content item.
type ContentPlugin struct {
	plugin.Base
}

func (p *ContentPlugin) Execute(ctx context.Context, pctx plugin.Context, inv plugin.ContentInvocation) error {
	if err := pctx.Index(ctx, inv.Item); err != nil {
		return plugin.Operational("reindex item", err)
	}
	return nil
}
