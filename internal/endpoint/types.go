package endpoint

import "context"

// Record represents a single flattened resource instance as key-value pairs.
type Record = map[string]any

// Iterator provides streaming access to records across page boundaries.
type Iterator[T any] interface {
	// Next advances to the next record. Returns false when done or on error.
	Next() bool

	// Value returns the current record. Only valid after Next() returns true.
	Value() T

	// Err returns any error encountered during iteration.
	Err() error

	// Close releases resources. Must be called when done.
	Close() error
}

// Backend is the contract implemented by the Snyk REST and v1 backends.
type Backend interface {
	// Query fetches a single page of records for the query. The query's
	// pagination state is advanced in place; an empty pagination map after
	// the call means the result set is exhausted.
	Query(ctx context.Context, query *Query) ([]Record, error)

	// Records returns an iterator that fetches pages until exhaustion.
	Records(ctx context.Context, query *Query) Iterator[Record]

	// Create creates a new resource instance and returns the resulting record.
	Create(ctx context.Context, data Record, resource *Resource) (Record, error)

	// Update modifies an existing resource instance. The current record, when
	// available, supplies context for request building (e.g. membership
	// org-vs-group detection).
	Update(ctx context.Context, id string, data Record, current Record, resource *Resource) (Record, error)

	// Delete removes a resource instance.
	Delete(ctx context.Context, id string, data Record, resource *Resource) error
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
