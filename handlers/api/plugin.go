package api

import (
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/sugar"
	"github.com/gin-gonic/gin"
)

// Plugin describes the registered plugins.
type Plugin struct {
	Registry *plugin.Registry
}

func (p Plugin) List(c *gin.Context) {
	sugar.SuccessResponse(c, 200, p.Registry.Describe())
}
