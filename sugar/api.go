package sugar

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Int64Param reads a numeric path parameter, responding 404 when it is
// not a number.
func Int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ErrResponse(c, 404, nil)
		return 0, false
	}
	return id, true
}

// IntQuery reads a numeric query parameter, responding 400 when it is
// malformed. def is returned when the parameter is absent.
func IntQuery(c *gin.Context, name string, def int) (int, bool) {
	value := c.Query(name)
	if value == "" {
		return def, true
	}
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		ErrResponse(c, 400, name+" must be a positive integer")
		return 0, false
	}
	return i, true
}

// BoolQuery reads a boolean query parameter, false when absent or malformed.
func BoolQuery(c *gin.Context, name string) bool {
	b, _ := strconv.ParseBool(c.Query(name))
	return b
}
