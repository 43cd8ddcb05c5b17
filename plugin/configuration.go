package plugin

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ReconfigureIO/converge/models"
)

// Configuration holds the property values of a plugin instance. Every
// property holds a list to support multi valued properties.
type Configuration map[string][]string

// ConfigurationOf decodes the properties of a stored plugin configuration.
func ConfigurationOf(pc models.PluginConfiguration) (Configuration, error) {
	return decoded(pc.Values())
}

// NewswireConfigurationOf decodes the decoder properties of a newswire service.
func NewswireConfigurationOf(s models.NewswireService) (Configuration, error) {
	return decoded(s.Values())
}

func decoded(values map[string][]string, err error) (Configuration, error) {
	if err != nil {
		return nil, &ConfigError{Key: "properties", Reason: "cannot be decoded: " + err.Error()}
	}
	return Configuration(values), nil
}

// Get returns the first non empty value of key.
func (c Configuration) Get(key string) string {
	for _, v := range c[key] {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// GetAll returns the non empty values of key.
func (c Configuration) GetAll(key string) []string {
	var values []string
	for _, v := range c[key] {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Has returns if key has a non empty value.
func (c Configuration) Has(key string) bool {
	return c.Get(key) != ""
}

// Validate starts validating the configuration.
func (c Configuration) Validate() *Validator {
	return &Validator{conf: c}
}

// Validator reads typed values out of a Configuration and keeps the first
// problem it finds. Reads after a problem return zero values.
type Validator struct {
	conf Configuration
	err  *ConfigError
}

func (v *Validator) fail(key, reason string) {
	if v.err == nil {
		v.err = &ConfigError{Key: key, Reason: reason}
	}
}

// Err returns the first problem found, nil if there is none.
func (v *Validator) Err() error {
	if v.err == nil {
		return nil
	}
	return v.err
}

// Require returns the value of a required key.
func (v *Validator) Require(key string) string {
	value := v.conf.Get(key)
	if value == "" {
		v.fail(key, "is required")
	}
	return value
}

// RequireAll returns the values of a required multi valued key.
func (v *Validator) RequireAll(key string) []string {
	values := v.conf.GetAll(key)
	if len(values) == 0 {
		v.fail(key, "is required")
	}
	return values
}

// RequireInt returns the value of a required integer key.
func (v *Validator) RequireInt(key string) int {
	value := v.Require(key)
	if value == "" {
		return 0
	}
	return v.parseInt(key, value)
}

// OptionalInt returns the value of an integer key or def when it is unset.
func (v *Validator) OptionalInt(key string, def int) int {
	value := v.conf.Get(key)
	if value == "" {
		return def
	}
	return v.parseInt(key, value)
}

func (v *Validator) parseInt(key, value string) int {
	i, err := strconv.Atoi(value)
	if err != nil {
		v.fail(key, "must be an integer")
		return 0
	}
	return i
}

// RequireBool returns the value of a required boolean key.
func (v *Validator) RequireBool(key string) bool {
	value := v.Require(key)
	if value == "" {
		return false
	}
	return v.parseBool(key, value, false)
}

// OptionalBool returns the value of a boolean key or def when it is unset.
func (v *Validator) OptionalBool(key string, def bool) bool {
	value := v.conf.Get(key)
	if value == "" {
		return def
	}
	return v.parseBool(key, value, def)
}

func (v *Validator) parseBool(key, value string, def bool) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		v.fail(key, "must be a boolean")
		return def
	}
	return b
}

// RequireURL returns the value of a required absolute http(s) URL key.
func (v *Validator) RequireURL(key string) *url.URL {
	value := v.Require(key)
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.fail(key, "must be an absolute http(s) URL")
		return nil
	}
	return u
}
