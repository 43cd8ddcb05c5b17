package index

import (
	"context"
	"errors"
	"testing"

	"github.com/ReconfigureIO/converge/models"
)

func TestMemoryIndex(t *testing.T) {
	idx := NewMemory()
	ctx := context.Background()

	item := models.ContentItem{ID: 4, Title: "Budget vote", State: "draft"}
	if err := idx.Index(ctx, item); err != nil {
		t.Fatal(err)
	}
	item.State = "published"
	if err := idx.Index(ctx, item); err != nil {
		t.Fatal(err)
	}

	doc, ok := idx.Get(4)
	if !ok || doc.State != "published" {
		t.Errorf("expected the latest document, got %+v", doc)
	}
	if idx.Count() != 2 {
		t.Errorf("expected 2 index calls, got %d", idx.Count())
	}

	boom := errors.New("index unavailable")
	idx.FailOn(5, boom)
	if err := idx.Index(ctx, models.ContentItem{ID: 5}); err != boom {
		t.Errorf("expected %v, got %v", boom, err)
	}
}
