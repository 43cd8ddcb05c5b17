package message

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/garyburd/redigo/redis"
	log "github.com/sirupsen/logrus"
)

// blockSeconds bounds each BRPOP so cancellation is noticed.
const blockSeconds = 1

// Redis is a Broker backed by Redis lists. Publishers LPUSH and
// subscribers BRPOP, so every message is delivered to one subscriber.
type Redis struct {
	pool *redis.Pool
}

// NewRedisPool creates a connection pool for a redis:// URL.
func NewRedisPool(url string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     4,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// NewRedis creates a broker using pool.
func NewRedis(pool *redis.Pool) *Redis {
	return &Redis{pool: pool}
}

func (r *Redis) Publish(ctx context.Context, topic string, v interface{}) error {
	body, err := Encode(v)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	conn := r.pool.Get()
	defer conn.Close()
	_, err = conn.Do("LPUSH", topic, body)
	return err
}

func (r *Redis) Subscribe(ctx context.Context, topic string) (<-chan Delivery, error) {
	// fail early when redis is unreachable
	conn := r.pool.Get()
	_, err := conn.Do("PING")
	conn.Close()
	if err != nil {
		return nil, err
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		b := backoff.NewExponentialBackOff()
		b.MaxElapsedTime = 0
		for ctx.Err() == nil {
			body, err := r.pop(topic)
			if err == redis.ErrNil {
				continue
			}
			if err != nil {
				wait := b.NextBackOff()
				log.WithError(err).WithFields(log.Fields{
					"topic": topic,
					"wait":  wait,
				}).Warn("could not receive message")
				select {
				case <-time.After(wait):
				case <-ctx.Done():
				}
				continue
			}
			b.Reset()
			select {
			case out <- Delivery{Topic: topic, Body: body}:
			case <-ctx.Done():
				r.putBack(topic, body)
				return
			}
		}
	}()
	return out, nil
}

func (r *Redis) pop(topic string) ([]byte, error) {
	conn := r.pool.Get()
	defer conn.Close()
	reply, err := redis.ByteSlices(conn.Do("BRPOP", topic, blockSeconds))
	if err != nil {
		return nil, err
	}
	// reply is [key, value]
	return reply[1], nil
}

func (r *Redis) putBack(topic string, body []byte) {
	conn := r.pool.Get()
	defer conn.Close()
	if _, err := conn.Do("RPUSH", topic, body); err != nil {
		log.WithError(err).WithField("topic", topic).Error("could not return undelivered message")
	}
}

func (r *Redis) Close() error {
	return r.pool.Close()
}
