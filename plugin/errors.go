package plugin

import (
	"errors"
	"fmt"

	"github.com/ReconfigureIO/converge/models"
)

const (
	// KindConfiguration is the error kind of terminal configuration errors.
	KindConfiguration = "configuration"
	// KindOperational is the error kind of transient errors.
	KindOperational = "operational"
)

// ErrNotFound is returned by Context lookups for missing records.
var ErrNotFound = models.ErrNotFound

// ErrorClassifier is implemented by errors that declare their kind.
type ErrorClassifier interface {
	ErrorKind() string
}

// ConfigError reports a missing or malformed configuration property.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: property %q %s", e.Key, e.Reason)
}

// ErrorKind implements ErrorClassifier.
func (e *ConfigError) ErrorKind() string { return KindConfiguration }

// OperationalError wraps a transient failure of a downstream dependency.
type OperationalError struct {
	Op  string
	Err error
}

// Operational wraps err as an operational error of op.
func Operational(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationalError{Op: op, Err: err}
}

func (e *OperationalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationalError) Unwrap() error { return e.Err }

// ErrorKind implements ErrorClassifier.
func (e *OperationalError) ErrorKind() string { return KindOperational }

// UnknownPluginError is returned when no plugin of a family is registered
// under a key.
type UnknownPluginError struct {
	Family string
	Key    string
}

func (e *UnknownPluginError) Error() string {
	if e.Family == "" {
		return fmt.Sprintf("no plugin registered as %q", e.Key)
	}
	return fmt.Sprintf("no %s plugin registered as %q", e.Family, e.Key)
}

// ErrorKind implements ErrorClassifier.
func (e *UnknownPluginError) ErrorKind() string { return KindOperational }

// IsTerminal returns if err must not be retried without a configuration change.
func IsTerminal(err error) bool {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind() == KindConfiguration
	}
	return false
}
