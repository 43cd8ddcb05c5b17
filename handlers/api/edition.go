package api

import (
	"github.com/ReconfigureIO/converge/service/edition"
	"github.com/ReconfigureIO/converge/sugar"
	"github.com/gin-gonic/gin"
)

// Edition handles edition requests.
type Edition struct {
	Service EditionService
}

// Close closes an edition and publishes its automatic actions.
func (e Edition) Close(c *gin.Context) {
	id, ok := sugar.Int64Param(c, "id")
	if !ok {
		return
	}
	published, err := e.Service.Close(c.Request.Context(), id)
	switch err {
	case nil:
		sugar.SuccessResponse(c, 202, published)
	case edition.ErrClosed:
		sugar.ErrResponse(c, 409, err)
	default:
		sugar.NotFoundOrError(c, err)
	}
}

// Trigger publishes one action against an edition.
func (e Edition) Trigger(c *gin.Context) {
	id, ok := sugar.Int64Param(c, "id")
	if !ok {
		return
	}
	actionID, ok := sugar.Int64Param(c, "action")
	if !ok {
		return
	}
	msg, err := e.Service.Trigger(c.Request.Context(), id, actionID)
	switch err {
	case nil:
		sugar.SuccessResponse(c, 202, msg)
	case edition.ErrForeignAction:
		sugar.ErrResponse(c, 400, err)
	default:
		sugar.NotFoundOrError(c, err)
	}
}
