package graph

import "errors"

// Sentinel errors for Store operations (§4.1, §7 "Structural" taxonomy).
var (
	// ErrEmptyID is returned when a node or edge ID is the empty string.
	ErrEmptyID = errors.New("graph: id is empty")

	// ErrDuplicateID is returned when AddNode/AddEdge is given an ID already
	// present in the Store.
	ErrDuplicateID = errors.New("graph: duplicate id")

	// ErrNoSuchEntity is returned when an operation references a node or
	// edge ID that is not present in the Store.
	ErrNoSuchEntity = errors.New("graph: no such entity")

	// ErrDanglingEndpoint is returned when AddEdge names a From/To node ID
	// that has not been added to the Store.
	ErrDanglingEndpoint = errors.New("graph: dangling edge endpoint")

	// ErrInvalidHierPath is returned when a node's HierPath has a non-root
	// parent prefix that is not itself a node ID already present in the Store
	// (§3: "every prefix is itself a node id (no dangling parents)").
	ErrInvalidHierPath = errors.New("graph: hier_path has a dangling parent")

	// ErrFieldTypeMismatch is returned when a field write's value does not
	// match the field's declared Go type (§4.3 TypeMismatch, a hard error).
	ErrFieldTypeMismatch = errors.New("graph: field value type mismatch")
)
