package message

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

const memoryBacklog = 1024

// Memory is a Broker delivering messages within one process.
type Memory struct {
	topics map[string]chan []byte
	mu     sync.Mutex

	done      chan struct{}
	closeOnce sync.Once
}

// NewMemory creates an in-process broker.
func NewMemory() *Memory {
	return &Memory{
		topics: make(map[string]chan []byte),
		done:   make(chan struct{}),
	}
}

func (m *Memory) topic(name string) chan []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.topics[name]
	if !ok {
		q = make(chan []byte, memoryBacklog)
		m.topics[name] = q
	}
	return q
}

// Publish queues v on topic, blocking while the backlog is full.
func (m *Memory) Publish(ctx context.Context, topic string, v interface{}) error {
	body, err := Encode(v)
	if err != nil {
		return err
	}
	select {
	case <-m.done:
		return ErrClosed
	default:
	}
	select {
	case m.topic(topic) <- body:
		return nil
	case <-m.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe delivers messages of topic. A message that cannot be handed
// over before ctx is done goes back onto the topic.
func (m *Memory) Subscribe(ctx context.Context, topic string) (<-chan Delivery, error) {
	q := m.topic(topic)
	out := make(chan Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-m.done:
				return
			case body := <-q:
				select {
				case out <- Delivery{Topic: topic, Body: body}:
				case <-ctx.Done():
					m.requeue(q, body)
					return
				case <-m.done:
					return
				}
			}
		}
	}()
	return out, nil
}

// requeue puts body back onto q, waiting for room while the backlog is
// full. It returns false when the broker closed first.
func (m *Memory) requeue(q chan []byte, body []byte) bool {
	select {
	case q <- body:
		return true
	default:
	}
	log.WithField("backlog", cap(q)).Warn("message backlog full, waiting to requeue")
	select {
	case q <- body:
		return true
	case <-m.done:
		log.Warn("broker closed, undelivered message dropped")
		return false
	}
}

// Close stops every subscription.
func (m *Memory) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return nil
}
