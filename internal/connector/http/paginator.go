package http

import (
	"net/url"
	"strconv"
)

// =============================================================================
// PAGINATION STRATEGIES
// =============================================================================

// PageState carries the pagination inputs from the caller's query: the
// pagination parameters sent with the current request and the requested
// record limit (0 means strategy default).
type PageState struct {
	Parameters map[string]any
	Limit      int
}

// Paginator computes the pagination parameters for the next request from the
// current response. An empty map means the result set is exhausted. Malformed
// or absent pagination structure is treated as exhaustion, never an error.
type Paginator interface {
	NextPageData(state PageState, resp *Response) map[string]any
}

// =============================================================================
// CURSOR PAGINATION (links.next)
// =============================================================================

// CursorPaginator extracts an opaque cursor from the response's
// `links.next` URL, as used by JSON:API style services.
type CursorPaginator struct {
	// ParameterName is the outgoing pagination parameter (default "starting_after").
	ParameterName string

	// CursorParameter is the query-string key read from links.next
	// (default "starting_after").
	CursorParameter string
}

// NextPageData parses links.next for the cursor value.
func (p *CursorPaginator) NextPageData(state PageState, resp *Response) map[string]any {
	nextPageData := map[string]any{}

	body, ok := resp.Decoded().(map[string]any)
	if !ok {
		return nextPageData
	}
	links, ok := body["links"].(map[string]any)
	if !ok {
		return nextPageData
	}
	nextURL, _ := links["next"].(string)
	if nextURL == "" {
		return nextPageData
	}

	parsed, err := url.Parse(nextURL)
	if err != nil {
		return nextPageData
	}
	cursor := parsed.Query().Get(p.cursorParameter())
	if cursor != "" {
		nextPageData[p.parameterName()] = cursor
	}

	return nextPageData
}

func (p *CursorPaginator) parameterName() string {
	if p.ParameterName == "" {
		return "starting_after"
	}
	return p.ParameterName
}

func (p *CursorPaginator) cursorParameter() string {
	if p.CursorParameter == "" {
		return "starting_after"
	}
	return p.CursorParameter
}

// =============================================================================
// PAGE PAGINATION (full-page heuristic)
// =============================================================================

// PagePaginator advances a client-side page counter while responses come back
// full. This is the only signal legacy APIs without cursors expose: when the
// fetched record count reaches the requested limit, more data might exist.
// An exactly-full last page therefore costs one extra empty-page fetch.
type PagePaginator struct {
	// ParameterName is the outgoing page parameter (default "page").
	ParameterName string

	// DefaultLimit applies when the query carries no limit (default 100).
	DefaultLimit int

	// ExtractRecords pulls the record list out of the decoded response body.
	ExtractRecords func(body any) []any
}

// NextPageData returns the incremented page number while pages come back full.
func (p *PagePaginator) NextPageData(state PageState, resp *Response) map[string]any {
	nextPageData := map[string]any{}

	currentPage := 1
	if raw, ok := state.Parameters[p.parameterName()]; ok {
		if page, ok := toInt(raw); ok {
			currentPage = page
		}
	}

	limit := state.Limit
	if limit <= 0 {
		limit = p.defaultLimit()
	}

	var records []any
	if p.ExtractRecords != nil {
		records = p.ExtractRecords(resp.Decoded())
	}

	if len(records) >= limit {
		nextPageData[p.parameterName()] = currentPage + 1
	}

	return nextPageData
}

func (p *PagePaginator) parameterName() string {
	if p.ParameterName == "" {
		return "page"
	}
	return p.ParameterName
}

func (p *PagePaginator) defaultLimit() int {
	if p.DefaultLimit <= 0 {
		return 100
	}
	return p.DefaultLimit
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
