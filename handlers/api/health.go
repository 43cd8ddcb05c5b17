package api

import (
	"github.com/ReconfigureIO/converge/sugar"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Health reports if the API can reach its database.
type Health struct {
	DB *gorm.DB
}

func (h Health) Get(c *gin.Context) {
	if h.DB != nil {
		if err := h.DB.DB().Ping(); err != nil {
			sugar.ErrResponse(c, 503, err)
			return
		}
	}
	sugar.SuccessResponse(c, 200, "ok")
}
