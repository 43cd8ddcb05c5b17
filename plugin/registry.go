package plugin

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a plugin with its metadata.
type Factory func(meta Metadata) Plugin

// Registry maps stable plugin keys to factories. It is populated at
// startup and resolves the key stored in a plugin configuration.
type Registry struct {
	catalog   *Catalog
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a registry reading metadata from catalog.
// A nil catalog yields metadata with only the key and name set.
func NewRegistry(catalog *Catalog) *Registry {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	return &Registry{
		catalog:   catalog,
		factories: make(map[string]Factory),
	}
}

// Register adds a plugin factory under key.
func (r *Registry) Register(key string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("plugin '%s' already registered", key)
	}
	r.factories[key] = factory
	return nil
}

// Keys returns the registered keys in order.
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

// New constructs the plugin registered under key.
func (r *Registry) New(key string) (Plugin, error) {
	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownPluginError{Key: key}
	}
	return factory(r.catalog.Lookup(key)), nil
}

// EditionAction constructs the edition action registered under key.
func (r *Registry) EditionAction(key string) (EditionAction, error) {
	p, err := r.New(key)
	if err != nil {
		return nil, err
	}
	action, ok := p.(EditionAction)
	if !ok {
		return nil, &UnknownPluginError{Family: "edition action", Key: key}
	}
	return action, nil
}

// WorkflowAction constructs the workflow action registered under key.
func (r *Registry) WorkflowAction(key string) (WorkflowAction, error) {
	p, err := r.New(key)
	if err != nil {
		return nil, err
	}
	action, ok := p.(WorkflowAction)
	if !ok {
		return nil, &UnknownPluginError{Family: "workflow action", Key: key}
	}
	return action, nil
}

// ContentAction constructs the content action registered under key.
func (r *Registry) ContentAction(key string) (ContentAction, error) {
	p, err := r.New(key)
	if err != nil {
		return nil, err
	}
	action, ok := p.(ContentAction)
	if !ok {
		return nil, &UnknownPluginError{Family: "content action", Key: key}
	}
	return action, nil
}

// NewswireDecoder constructs the newswire decoder registered under key.
func (r *Registry) NewswireDecoder(key string) (NewswireDecoder, error) {
	p, err := r.New(key)
	if err != nil {
		return nil, err
	}
	decoder, ok := p.(NewswireDecoder)
	if !ok {
		return nil, &UnknownPluginError{Family: "newswire decoder", Key: key}
	}
	return decoder, nil
}

// Description describes a registered plugin.
type Description struct {
	Metadata   Metadata          `json:"metadata"`
	Families   []string          `json:"families"`
	Properties map[string]string `json:"properties"`
}

// Describe returns a description of every registered plugin.
func (r *Registry) Describe() []Description {
	var descriptions []Description
	for _, key := range r.Keys() {
		p, err := r.New(key)
		if err != nil {
			continue
		}
		descriptions = append(descriptions, Description{
			Metadata:   p.Metadata(),
			Families:   Families(p),
			Properties: p.AvailableProperties(),
		})
	}
	return descriptions
}

// Families returns the plugin families p implements.
func Families(p Plugin) []string {
	var families []string
	if _, ok := p.(EditionAction); ok {
		families = append(families, "edition-action")
	}
	if _, ok := p.(WorkflowAction); ok {
		families = append(families, "workflow-action")
	}
	if _, ok := p.(ContentAction); ok {
		families = append(families, "content-action")
	}
	if _, ok := p.(NewswireDecoder); ok {
		families = append(families, "newswire-decoder")
	}
	return families
}
