// Package queue executes persisted queue items with actions resolved by
// name from a Registry.
//
// Execution is at least once: an action may run again for an item after a
// failure, or when an item is forced, and nothing deduplicates its side
// effects.
package queue

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ReconfigureIO/converge/models"
)

// Action is executed for a queue item.
type Action interface {
	// Execute runs the action. The item must not be persisted by the
	// action; the caller records the outcome.
	Execute(ctx context.Context, item *models.QueueItem) error
}

// ActionFunc adapts a function to an Action.
type ActionFunc func(ctx context.Context, item *models.QueueItem) error

// Execute calls f.
func (f ActionFunc) Execute(ctx context.Context, item *models.QueueItem) error {
	return f(ctx, item)
}

// Factory constructs an action.
type Factory func() (Action, error)

// UnknownActionError is returned when an item names an action type that
// is not registered.
type UnknownActionError struct {
	Key string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("queue action '%s' not found", e.Key)
}

// Registry maps action types to factories.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory for an action type.
func (r *Registry) Register(key string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("queue action '%s' already registered", key)
	}
	r.factories[key] = factory
	return nil
}

// RegisterAction adds a single stateless action for an action type.
func (r *Registry) RegisterAction(key string, action Action) error {
	return r.Register(key, func() (Action, error) { return action, nil })
}

// Exists returns if an action type is registered.
func (r *Registry) Exists(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[key]
	return exists
}

// Keys returns the registered action types in order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.factories))
	for key := range r.factories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Resolve constructs the action registered for key.
func (r *Registry) Resolve(key string) (Action, error) {
	r.mu.RLock()
	factory, exists := r.factories[key]
	r.mu.RUnlock()

	if !exists {
		return nil, &UnknownActionError{Key: key}
	}
	action, err := factory()
	if err != nil {
		return nil, fmt.Errorf("construct queue action '%s': %w", key, err)
	}
	return action, nil
}
