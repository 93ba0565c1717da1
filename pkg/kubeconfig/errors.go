package kubeconfig

import (
	"errors"
	"fmt"
)

var (
	errIsNil   = errors.New("is nil")
	errIsEmpty = errors.New("is empty")

	// ErrConfigNotFound is returned when no kubeconfig override is set and the
	// default kubeconfig file does not exist.
	ErrConfigNotFound = errors.New("unable to locate the configuration file for your cluster")

	// ErrNotFound is matched by every LookupError.
	ErrNotFound = errors.New("not found")
)

// ConfigNotFoundError names the location that was expected to hold a kubeconfig.
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s does not exist, make sure you have your cluster configured locally", ErrConfigNotFound, e.Path)
}

func (e *ConfigNotFoundError) Unwrap() error { return ErrConfigNotFound }

// ParseError is returned when a kubeconfig document is malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse kubeconfig %q: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LookupKind is the kind of named entry a LookupError refers to.
type LookupKind string

const (
	LookupContext LookupKind = "context"
	LookupCluster LookupKind = "cluster"
	LookupUser    LookupKind = "user"
)

// LookupError is returned when a context, cluster or user cannot be found by name.
type LookupError struct {
	Kind LookupKind
	Name string
	// Context is the context the lookup was made for. It equals Name for context lookups.
	Context string
}

func (e *LookupError) Error() string {
	if e.Kind == LookupContext {
		return fmt.Sprintf("context not found: %q", e.Name)
	}
	return fmt.Sprintf("%s not found: %q (referenced by context %q)", e.Kind, e.Name, e.Context)
}

func (e *LookupError) Is(target error) bool { return target == ErrNotFound }
