package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/service/edition"
	"github.com/gin-gonic/gin"
)

type fakeEditions struct {
	err error
}

func (f fakeEditions) Close(ctx context.Context, editionID int64) ([]message.EditionActionMessage, error) {
	return []message.EditionActionMessage{{EditionID: editionID, ActionID: 1}}, f.err
}

func (f fakeEditions) Trigger(ctx context.Context, editionID, actionID int64) (message.EditionActionMessage, error) {
	return message.EditionActionMessage{EditionID: editionID, ActionID: actionID}, f.err
}

func TestEditionClose(t *testing.T) {
	for _, tc := range []struct {
		err  error
		code int
	}{
		{nil, 202},
		{edition.ErrClosed, 409},
		{fmt.Errorf("edition 5: %w", models.ErrNotFound), 404},
	} {
		c, w := testContext("POST", "/editions/5/close", "", gin.Param{Key: "id", Value: "5"})
		Edition{Service: fakeEditions{err: tc.err}}.Close(c)
		if w.Code != tc.code {
			t.Errorf("%v: expected %d status, got: %d", tc.err, tc.code, w.Code)
		}
	}

	c, w := testContext("POST", "/editions/x/close", "", gin.Param{Key: "id", Value: "x"})
	Edition{Service: fakeEditions{}}.Close(c)
	if w.Code != 404 {
		t.Errorf("expected 404 status for a malformed id, got: %d", w.Code)
	}
}

func TestEditionTrigger(t *testing.T) {
	for err, code := range map[error]int{
		nil:                      202,
		edition.ErrForeignAction: 400,
	} {
		c, w := testContext("POST", "/editions/5/actions/2", "",
			gin.Param{Key: "id", Value: "5"},
			gin.Param{Key: "action", Value: "2"})
		Edition{Service: fakeEditions{err: err}}.Trigger(c)
		if w.Code != code {
			t.Errorf("%v: expected %d status, got: %d", err, code, w.Code)
		}
	}
}
