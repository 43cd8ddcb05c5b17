package reindex

import (
	"context"
	"errors"
	"testing"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestReindexEdition(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	pctx := plugin.NewMockContext(mockCtrl)
	items := []models.ContentItem{{ID: 1}, {ID: 2}, {ID: 3}}

	pctx.EXPECT().Index(ctx, items[0]).Return(nil)
	pctx.EXPECT().Index(ctx, items[1]).Return(errors.New("index down"))
	pctx.EXPECT().Index(ctx, items[2]).Return(nil)
	pctx.EXPECT().Log(ctx, models.SeverityWarning, Key, "Edition:5", gomock.Any(), int64(2), gomock.Any())

	edition := models.Edition{ID: 5}
	for _, item := range items {
		edition.Placements = append(edition.Placements, models.Placement{ContentItemID: item.ID, ContentItem: item})
	}

	err := New(plugin.Metadata{Key: Key}).(*Plugin).Execute(ctx, pctx, plugin.EditionInvocation{Edition: edition})
	assert.Error(t, err)
	assert.False(t, plugin.IsTerminal(err))
}

func TestReindexEmptyEdition(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	pctx := plugin.NewMockContext(mockCtrl)
	pctx.EXPECT().Log(ctx, models.SeverityInfo, Key, "Edition:6", "indexed %d items", 0)

	err := New(plugin.Metadata{Key: Key}).(*Plugin).Execute(ctx, pctx, plugin.EditionInvocation{Edition: models.Edition{ID: 6}})
	assert.NoError(t, err)
}

func TestReindexItem(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	pctx := plugin.NewMockContext(mockCtrl)
	item := models.ContentItem{ID: 9}
	pctx.EXPECT().Index(ctx, item).Return(nil)

	p := NewContentAction(plugin.Metadata{Key: ItemKey})
	action, ok := p.(plugin.ContentAction)
	if !ok {
		t.Fatal("expected a content action")
	}
	assert.NoError(t, action.Execute(ctx, pctx, plugin.ContentInvocation{Item: item}))
}
