package api

import (
	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/sugar"
	"github.com/gin-gonic/gin"
)

// Newswire handles newswire requests.
type Newswire struct {
	Broker message.Broker
}

// PostFetch is the body of a fetch request. A missing service fetches
// every active service.
type PostFetch struct {
	ServiceID *int64 `json:"service_id"`
}

// Fetch asks the workers to fetch newswire services.
func (n Newswire) Fetch(c *gin.Context) {
	post := PostFetch{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&post); err != nil {
			sugar.ErrResponse(c, 400, err)
			return
		}
	}
	if post.ServiceID != nil && *post.ServiceID <= 0 {
		sugar.ErrResponse(c, 400, "service_id must be positive")
		return
	}
	msg := message.NewswireFetchMessage{ServiceID: post.ServiceID}
	if err := n.Broker.Publish(c.Request.Context(), message.TopicNewswireFetch, msg); err != nil {
		sugar.InternalError(c, err)
		return
	}
	sugar.SuccessResponse(c, 202, msg)
}
