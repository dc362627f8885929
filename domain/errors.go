package domain

import "fmt"

// Error taxonomy for the recommendation pipeline. All core errors are
// returned to the immediate caller with the offending id/field attached;
// the serving layer owns the mapping to HTTP status codes.

// SchemaError reports a required column missing from a loaded table.
type SchemaError struct {
	Table  string
	Column string
}

func (e SchemaError) Error() string {
	return fmt.Sprintf("table %s: missing required column %q", e.Table, e.Column)
}

// ValidationError reports a malformed or missing profile field.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// NotFoundError reports an unknown entity id.
type NotFoundError struct {
	Entity string
	ID     uint64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// EmptyCatalogError signals that no products are available to score.
// This is a data problem reported as a hard error, never an empty success.
type EmptyCatalogError struct{}

func (EmptyCatalogError) Error() string {
	return "product catalog is empty: no products available to score"
}

// ComputationError reports an unexpected numeric failure, e.g. a
// degenerate similarity vector.
type ComputationError struct {
	Op     string
	Reason string
}

func (e ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
