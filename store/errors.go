package store

import (
	"errors"
	"fmt"
)

var (
	// ErrIO reports that a backing document or database could not be read.
	ErrIO = errors.New("store: read failed")
	// ErrParse reports that a backing document is not well-formed.
	ErrParse = errors.New("store: malformed document")
	// ErrNotFound reports a missing record or join partner.
	ErrNotFound = errors.New("store: not found")
)

// IOError is returned when a document path cannot be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// ParseError is returned when a document is not a JSON array of records.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// NotFoundError names the entity and key that could not be resolved.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
