package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("record not found")
var ErrInvalidReference = errors.New("referenced record does not exist")

// PersistenceError is returned when a write fails and its transaction was rolled back.
type PersistenceError struct {
	Record string // "Venue", "Artist", "Show"
	Name   string
	Op     string // "listed", "updated", "deleted"
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q could not be %s: %v", e.Record, e.Name, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Notice is the user-facing flash text for the failure.
func (e *PersistenceError) Notice() string {
	if e.Name == "" {
		return fmt.Sprintf("ERROR: %s could not be %s! Please try again", e.Record, e.Op)
	}
	return fmt.Sprintf("ERROR: %s %s could not be %s! Please try again", e.Record, e.Name, e.Op)
}

// NewPersistenceError wraps err unless it already is a PersistenceError or ErrNotFound.
func NewPersistenceError(record, name, op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) || errors.Is(err, ErrNotFound) {
		return err
	}
	return &PersistenceError{Record: record, Name: name, Op: op, Err: err}
}

// ValidationError carries per-field messages from form binding.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
