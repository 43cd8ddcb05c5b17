// Package index submits content items to the search index.
package index

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/garyburd/redigo/redis"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultKey is the Redis list the external indexer consumes.
const DefaultKey = "converge.index"

// Indexer submits content items for indexing.
type Indexer interface {
	Index(ctx context.Context, item models.ContentItem) error
}

// Document is the representation of a content item sent to the indexer.
type Document struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	State   string    `json:"state"`
	Updated time.Time `json:"updated"`
}

// DocumentOf converts a content item to its index document.
func DocumentOf(item models.ContentItem) Document {
	return Document{
		ID:      item.ID,
		Title:   item.Title,
		Body:    item.Body,
		State:   item.State,
		Updated: item.Updated,
	}
}

// Redis pushes documents onto a Redis list for an external indexer.
type Redis struct {
	pool *redis.Pool
	key  string
}

// NewRedis creates an indexer pushing onto key. An empty key uses DefaultKey.
func NewRedis(pool *redis.Pool, key string) *Redis {
	if key == "" {
		key = DefaultKey
	}
	return &Redis{pool: pool, key: key}
}

func (r *Redis) Index(ctx context.Context, item models.ContentItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := json.Marshal(DocumentOf(item))
	if err != nil {
		return err
	}
	conn := r.pool.Get()
	defer conn.Close()
	if _, err := conn.Do("LPUSH", r.key, doc); err != nil {
		return fmt.Errorf("index content item %d: %w", item.ID, err)
	}
	return nil
}

// Memory keeps indexed documents in runtime memory.
type Memory struct {
	docs  map[int64]Document
	fail  map[int64]error
	count int
	sync.Mutex
}

// NewMemory creates an empty in-memory index.
func NewMemory() *Memory {
	return &Memory{
		docs: make(map[int64]Document),
		fail: make(map[int64]error),
	}
}

func (m *Memory) Index(ctx context.Context, item models.ContentItem) error {
	m.Lock()
	defer m.Unlock()
	if err, ok := m.fail[item.ID]; ok {
		return err
	}
	m.docs[item.ID] = DocumentOf(item)
	m.count++
	return nil
}

// FailOn makes indexing the item with id return err.
func (m *Memory) FailOn(id int64, err error) {
	m.Lock()
	defer m.Unlock()
	m.fail[id] = err
}

// Get returns the document stored for id.
func (m *Memory) Get(id int64) (Document, bool) {
	m.Lock()
	defer m.Unlock()
	doc, ok := m.docs[id]
	return doc, ok
}

// Count returns the number of successful Index calls.
func (m *Memory) Count() int {
	m.Lock()
	defer m.Unlock()
	return m.count
}
