package plugin

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

const catalogDateLayout = "2006-01-02"

type catalogEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Vendor      string `yaml:"vendor"`
	Date        string `yaml:"date"`
}

type catalogFile struct {
	Plugins map[string]catalogEntry `yaml:"plugins"`
}

// Catalog holds the metadata of plugins, keyed by plugin key.
type Catalog struct {
	path    string
	entries map[string]Metadata
	mu      sync.RWMutex
}

// NewCatalog creates a catalog from entries.
func NewCatalog(entries map[string]Metadata) *Catalog {
	c := &Catalog{entries: map[string]Metadata{}}
	for key, meta := range entries {
		meta.Key = key
		c.entries[key] = meta
	}
	return c
}

// LoadCatalog reads a YAML catalog file of the form
//
//	plugins:
//	  webhook:
//	    name: Webhook
//	    description: Posts the edition to a URL
//	    vendor: Converge
//	    date: 2018-10-17
func LoadCatalog(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseCatalog decodes catalog entries from YAML.
func ParseCatalog(data []byte) (map[string]Metadata, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	entries := make(map[string]Metadata, len(file.Plugins))
	for key, e := range file.Plugins {
		meta := Metadata{
			Key:         key,
			Name:        e.Name,
			Description: e.Description,
			Vendor:      e.Vendor,
		}
		if e.Date != "" {
			date, err := time.Parse(catalogDateLayout, e.Date)
			if err != nil {
				return nil, err
			}
			meta.Date = date
		}
		entries[key] = meta
	}
	return entries, nil
}

// Reload rereads the catalog file.
func (c *Catalog) Reload() error {
	data, err := ioutil.ReadFile(c.path)
	if err != nil {
		return err
	}
	entries, err := ParseCatalog(data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	return nil
}

// Lookup returns the metadata of key. Unknown keys get metadata named
// after the key.
func (c *Catalog) Lookup(key string) Metadata {
	c.mu.RLock()
	defer c.mu.RUnlock()

	meta, ok := c.entries[key]
	if !ok {
		return Metadata{Key: key, Name: key}
	}
	if meta.Name == "" {
		meta.Name = key
	}
	return meta
}

// Watch reloads the catalog whenever its file changes, until ctx is done.
// Plugins constructed after a reload see the new metadata.
func (c *Catalog) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors replace files, so watch the directory.
	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(c.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := c.Reload(); err != nil {
				log.WithError(err).WithField("path", c.path).Warn("could not reload plugin catalog")
				continue
			}
			log.WithField("path", c.path).Info("reloaded plugin catalog")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("plugin catalog watcher error")
		}
	}
}
