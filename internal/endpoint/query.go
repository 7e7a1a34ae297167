package endpoint

import (
	"fmt"
	"strings"
)

// Query carries the per-request state for one resource: filter conditions,
// the requested record limit, and the pagination parameters for the next
// fetch. Pagination state is threaded explicitly: backends read it when
// building a request and replace it from the response before returning.
type Query struct {
	resource   *Resource
	conditions map[string]string
	pagination map[string]any
	limit      int
	err        error
}

// NewQuery creates a query against the given resource.
func NewQuery(resource *Resource) *Query {
	return &Query{
		resource:   resource,
		conditions: make(map[string]string),
		pagination: make(map[string]any),
	}
}

// Where adds a "field=value" condition. Conditions matching routing
// parameters are consumed by path substitution; the rest are sent as
// query-string filters.
func (q *Query) Where(condition string) *Query {
	field, value, ok := strings.Cut(condition, "=")
	if !ok || field == "" {
		q.err = fmt.Errorf("invalid condition %q: expected field=value", condition)
		return q
	}
	q.conditions[field] = value
	return q
}

// WithLimit sets the requested record limit per page.
func (q *Query) WithLimit(limit int) *Query {
	q.limit = limit
	return q
}

// Err returns the first error accumulated while building the query.
func (q *Query) Err() error {
	return q.err
}

// Resource returns the resource this query targets.
func (q *Query) Resource() *Resource {
	return q.resource
}

// Conditions returns the current condition map.
func (q *Query) Conditions() map[string]string {
	return q.conditions
}

// Condition returns one condition value ("" when absent).
func (q *Query) Condition(field string) string {
	return q.conditions[field]
}

// Limit returns the requested record limit (0 means backend default).
func (q *Query) Limit() int {
	return q.limit
}

// Pagination returns the current pagination parameters.
func (q *Query) Pagination() map[string]any {
	return q.pagination
}

// MergePagination replaces the pagination state with data extracted from the
// latest response. An empty map marks the query as exhausted.
func (q *Query) MergePagination(data map[string]any) {
	q.pagination = make(map[string]any, len(data))
	for key, value := range data {
		q.pagination[key] = value
	}
}

// HasNextPage reports whether pagination parameters are present.
func (q *Query) HasNextPage() bool {
	return len(q.pagination) > 0
}
