package http

import (
	"reflect"
	"testing"
)

// =============================================================================
// PAGINATOR TESTS
// =============================================================================

func jsonResponse(body string) *Response {
	return &Response{StatusCode: 200, Body: []byte(body)}
}

func TestCursorPaginatorNextLink(t *testing.T) {
	paginator := &CursorPaginator{}
	resp := jsonResponse(`{
		"data": [],
		"links": {"next": "/rest/orgs?version=2025-11-05&starting_after=cur-2"}
	}`)

	got := paginator.NextPageData(PageState{}, resp)
	want := map[string]any{"starting_after": "cur-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NextPageData = %v, want %v", got, want)
	}
}

func TestCursorPaginatorCustomParameter(t *testing.T) {
	paginator := &CursorPaginator{ParameterName: "cursor", CursorParameter: "starting_after"}
	resp := jsonResponse(`{"links": {"next": "/rest/orgs?starting_after=abc"}}`)

	got := paginator.NextPageData(PageState{}, resp)
	if got["cursor"] != "abc" {
		t.Errorf("NextPageData = %v", got)
	}
}

func TestCursorPaginatorExhaustion(t *testing.T) {
	paginator := &CursorPaginator{}
	tests := []struct {
		name string
		body string
	}{
		{"no links", `{"data": []}`},
		{"empty links", `{"links": {}}`},
		{"next not a string", `{"links": {"next": 7}}`},
		{"next without cursor", `{"links": {"next": "/rest/orgs?limit=10"}}`},
		{"unparseable next", `{"links": {"next": "://bad"}}`},
		{"not json", `plain text`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginator.NextPageData(PageState{}, jsonResponse(tt.body))
			if len(got) != 0 {
				t.Errorf("expected exhaustion, got %v", got)
			}
		})
	}
}

func TestPagePaginatorFullPageAdvances(t *testing.T) {
	paginator := &PagePaginator{ExtractRecords: func(body any) []any {
		wrapped, _ := body.(map[string]any)
		list, _ := wrapped["orgs"].([]any)
		return list
	}}

	resp := jsonResponse(`{"orgs": [{"id":"1"},{"id":"2"}]}`)

	got := paginator.NextPageData(PageState{Limit: 2}, resp)
	if got["page"] != 2 {
		t.Errorf("first advance = %v, want page 2", got)
	}

	// The counter keeps incrementing from the carried state, including
	// string-typed page values.
	for _, current := range []any{2, "2", float64(2)} {
		got = paginator.NextPageData(PageState{
			Parameters: map[string]any{"page": current},
			Limit:      2,
		}, resp)
		if got["page"] != 3 {
			t.Errorf("advance from %v = %v, want page 3", current, got)
		}
	}
}

func TestPagePaginatorShortPageStops(t *testing.T) {
	paginator := &PagePaginator{ExtractRecords: func(body any) []any {
		list, _ := body.([]any)
		return list
	}}

	got := paginator.NextPageData(PageState{Limit: 5}, jsonResponse(`[{"id":"1"}]`))
	if len(got) != 0 {
		t.Errorf("short page should stop pagination, got %v", got)
	}
}

func TestPagePaginatorDefaultLimit(t *testing.T) {
	paginator := &PagePaginator{DefaultLimit: 1, ExtractRecords: func(body any) []any {
		list, _ := body.([]any)
		return list
	}}

	// No limit on the query: the strategy default applies.
	got := paginator.NextPageData(PageState{}, jsonResponse(`[{"id":"1"}]`))
	if got["page"] != 2 {
		t.Errorf("NextPageData = %v, want page 2", got)
	}
}

func TestPagePaginatorNoExtractor(t *testing.T) {
	paginator := &PagePaginator{}
	got := paginator.NextPageData(PageState{Limit: 1}, jsonResponse(`[{"id":"1"}]`))
	if len(got) != 0 {
		t.Errorf("missing extractor should stop pagination, got %v", got)
	}
}
