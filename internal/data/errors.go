package data

import "errors"

var (
	// ErrDuplicateID is returned when two catalog entries share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownElement is returned when an entry references an element the catalog lacks.
	ErrUnknownElement = errors.New("unknown damage element")
	// ErrNoDefaultElement is returned when no default damage element is configured.
	ErrNoDefaultElement = errors.New("no default damage element")
)
