package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/service/mail"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func invocation(conf plugin.Configuration) plugin.WorkflowInvocation {
	return plugin.WorkflowInvocation{
		Item:   models.ContentItem{ID: 7, Title: "Budget vote", AssigneeID: "reporter"},
		Step:   models.WorkflowStep{ID: 3, Name: "Review"},
		Config: conf,
	}
}

func TestMailerSendsAndNotifies(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	pctx := plugin.NewMockContext(mockCtrl)
	pctx.EXPECT().Mail(ctx, mail.Message{
		To:      []string{"desk@example.com", "chief@example.com"},
		Subject: "Ready for review: Budget vote",
		Body:    `"Budget vote" has moved to Review.`,
	}).Return(nil)
	pctx.EXPECT().Notify(ctx, models.Notification{
		UserID:  "reporter",
		Message: `"Budget vote" has moved to Review`,
		Link:    "/content/7",
	}).Return(nil)

	err := New(plugin.Metadata{Key: Key}).(*Plugin).Execute(ctx, pctx, invocation(plugin.Configuration{
		"recipient":   {"desk@example.com", "chief@example.com"},
		"subject":     {"Ready for review"},
		"notify-user": {"true"},
	}))
	assert.NoError(t, err)
}

func TestMailerValidatesBeforeSending(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pctx := plugin.NewMockContext(mockCtrl)
	p := New(plugin.Metadata{Key: Key}).(*Plugin)

	for name, conf := range map[string]plugin.Configuration{
		"no recipient": {"subject": {"Ready"}},
		"no subject":   {"recipient": {"desk@example.com"}},
		"bad address":  {"recipient": {"desk"}, "subject": {"Ready"}},
		"bad notify":   {"recipient": {"desk@example.com"}, "subject": {"Ready"}, "notify-user": {"maybe"}},
	} {
		err := p.Execute(context.Background(), pctx, invocation(conf))
		assert.True(t, plugin.IsTerminal(err), "%s: expected a configuration error, got %v", name, err)
	}
}

func TestMailerFailureIsOperational(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pctx := plugin.NewMockContext(mockCtrl)
	pctx.EXPECT().Mail(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	err := New(plugin.Metadata{Key: Key}).(*Plugin).Execute(context.Background(), pctx, invocation(plugin.Configuration{
		"recipient": {"desk@example.com"},
		"subject":   {"Ready"},
	}))
	assert.Error(t, err)
	assert.False(t, plugin.IsTerminal(err))
}
