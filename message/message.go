// Package message carries dispatch messages between the processes of
// Converge. Payloads are JSON documents pushed onto named topics.
package message

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// TopicEditionActions carries EditionActionMessage payloads.
	TopicEditionActions = "converge.edition-actions"
	// TopicNewswireFetch carries NewswireFetchMessage payloads.
	TopicNewswireFetch = "converge.newswire-fetch"
)

// ErrClosed is returned when publishing to a closed broker.
var ErrClosed = errors.New("message broker is closed")

// EditionActionMessage asks for an edition action to run against an edition.
type EditionActionMessage struct {
	EditionID int64 `json:"edition_id"`
	ActionID  int64 `json:"action_id"`
}

// NewswireFetchMessage asks for a newswire fetch. A nil ServiceID fetches
// every active service.
type NewswireFetchMessage struct {
	ServiceID *int64 `json:"service_id,omitempty"`
}

// Delivery is a message received from a topic.
type Delivery struct {
	Topic string
	Body  []byte
}

// Decode unmarshals the body of the delivery into v.
func (d Delivery) Decode(v interface{}) error {
	return json.Unmarshal(d.Body, v)
}

// Broker publishes and delivers messages.
type Broker interface {
	// Publish encodes v and appends it to topic.
	Publish(ctx context.Context, topic string, v interface{}) error
	// Subscribe delivers messages of topic until ctx is done, then closes
	// the channel.
	Subscribe(ctx context.Context, topic string) (<-chan Delivery, error)
	Close() error
}

// Encode marshals a payload the way brokers publish it.
func Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
