// Package dispatch consumes edition action and newswire fetch messages
// and runs the plugins they name.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/ReconfigureIO/converge/message"
	log "github.com/sirupsen/logrus"
)

// Handler handles one delivery.
type Handler func(ctx context.Context, d message.Delivery) error

// Consumer subscribes to a topic and hands every delivery to a Handler,
// one at a time.
type Consumer struct {
	broker  message.Broker
	topic   string
	handler Handler

	halt     chan struct{}
	haltOnce sync.Once
}

// NewConsumer creates a Consumer of topic.
func NewConsumer(broker message.Broker, topic string, handler Handler) *Consumer {
	return &Consumer{
		broker:  broker,
		topic:   topic,
		handler: handler,
		halt:    make(chan struct{}),
	}
}

// Start consumes deliveries until Halt is called or ctx is done. Deliveries
// already received when halting are still handled.
func (c *Consumer) Start(ctx context.Context) error {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	deliveries, err := c.broker.Subscribe(subCtx, c.topic)
	if err != nil {
		return err
	}
	log.WithField("topic", c.topic).Info("consumer started")

	for {
		select {
		case <-c.halt:
			cancel()
			for d := range deliveries {
				c.handle(ctx, d)
			}
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.handle(ctx, d)
		}
	}
}

// Halt stops the consumer.
func (c *Consumer) Halt() {
	c.haltOnce.Do(func() { close(c.halt) })
}

func (c *Consumer) handle(ctx context.Context, d message.Delivery) {
	logger := log.WithField("topic", d.Topic)
	defer func() {
		if r := recover(); r != nil {
			logger.WithError(fmt.Errorf("%v", r)).Error("message handler panicked")
		}
	}()
	if err := c.handler(ctx, d); err != nil {
		logger.WithError(err).Error("message handling failed")
	}
}
