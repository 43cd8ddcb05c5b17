package pluginctx

import (
	"context"
	"errors"
	"testing"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/service/index"
	"github.com/ReconfigureIO/converge/service/mail"
	"github.com/golang/mock/gomock"
)

type fakeWorkflow struct {
	item, step int64
	err        error
}

func (f *fakeWorkflow) Transition(ctx context.Context, itemID, stepID int64) ([]models.QueueItem, error) {
	f.item, f.step = itemID, stepID
	return nil, f.err
}

func TestLogFormatsAndStores(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logs := models.NewMockActionLogRepo(mockCtrl)
	logs.EXPECT().Append(gomock.Any()).Do(func(entry *models.ActionLog) {
		if entry.Message != "posted 3 placements to https://example.com" {
			t.Errorf("unexpected message %q", entry.Message)
		}
		if entry.Severity != models.SeverityWarning || entry.Action != "webhook" || entry.Instance != "Edition:5" {
			t.Errorf("unexpected entry %+v", entry)
		}
		if entry.Created.IsZero() {
			t.Error("expected a creation time")
		}
	}).Return(nil)

	c := New(nil, Services{Logs: logs})
	c.Log(context.Background(), models.SeverityWarning, "webhook", "Edition:5", "posted %d placements to %s", 3, "https://example.com")
}

func TestLogFormatsEscapedPercent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logs := models.NewMockActionLogRepo(mockCtrl)
	logs.EXPECT().Append(gomock.Any()).Do(func(entry *models.ActionLog) {
		if entry.Message != "100% done" {
			t.Errorf("unexpected message %q", entry.Message)
		}
	}).Return(errors.New("db down"))

	New(nil, Services{Logs: logs}).Log(context.Background(), models.SeverityInfo, "reindex", "Edition:5", "100%% done")
}

func TestDelegation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	mailer := mail.NewMockMailer(mockCtrl)
	idx := index.NewMemory()
	wf := &fakeWorkflow{err: models.ErrNotFound}

	msg := mail.Message{To: []string{"desk@example.com"}, Subject: "Ready"}
	mailer.EXPECT().Send(ctx, msg).Return(nil)

	c := New(nil, Services{Indexer: idx, Mailer: mailer, Workflow: wf})

	if err := c.Mail(ctx, msg); err != nil {
		t.Fatal(err)
	}
	if err := c.Index(ctx, models.ContentItem{ID: 3}); err != nil {
		t.Fatal(err)
	}
	if _, ok := idx.Get(3); !ok {
		t.Error("expected item 3 to be indexed")
	}
	if err := c.Transition(ctx, 3, 4); err != models.ErrNotFound {
		t.Errorf("expected the workflow error, got %v", err)
	}
	if wf.item != 3 || wf.step != 4 {
		t.Errorf("expected transition of 3 to 4, got %d to %d", wf.item, wf.step)
	}
}
