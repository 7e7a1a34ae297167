package endpoint

import "context"

// recordIterator walks a query page by page until the backend reports no
// further pagination data. Adapted for the query loop both Snyk backends
// share: fetch, consume, re-fetch while the query still has a next page.
type recordIterator struct {
	ctx   context.Context
	query *Query
	fetch func(ctx context.Context, query *Query) ([]Record, error)

	current []Record
	index   int
	started bool
	done    bool
	err     error
}

// NewRecordIterator returns an iterator that repeatedly invokes fetch,
// relying on the query's pagination state for the stop condition.
func NewRecordIterator(ctx context.Context, query *Query, fetch func(ctx context.Context, query *Query) ([]Record, error)) Iterator[Record] {
	return &recordIterator{ctx: ctx, query: query, fetch: fetch}
}

func (it *recordIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for it.index >= len(it.current) {
		if it.done {
			return false
		}
		if it.started && !it.query.HasNextPage() {
			it.done = true
			return false
		}
		records, err := it.fetch(it.ctx, it.query)
		if err != nil {
			it.err = err
			return false
		}
		it.started = true
		it.current = records
		it.index = 0
		if !it.query.HasNextPage() {
			it.done = true
		}
	}
	return true
}

func (it *recordIterator) Value() Record {
	if it.index < len(it.current) {
		record := it.current[it.index]
		it.index++
		return record
	}
	return nil
}

func (it *recordIterator) Err() error { return it.err }

func (it *recordIterator) Close() error {
	it.done = true
	it.current = nil
	return nil
}
