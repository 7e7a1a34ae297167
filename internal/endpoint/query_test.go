package endpoint

import "testing"

func TestQueryWhere(t *testing.T) {
	resource := &Resource{Name: "snyk.projects", Path: "orgs/{org_id}/projects"}
	query := NewQuery(resource).
		Where("org_id=org-1").
		Where("status=active").
		WithLimit(25)

	if err := query.Err(); err != nil {
		t.Fatalf("unexpected builder error: %v", err)
	}
	if query.Condition("org_id") != "org-1" {
		t.Errorf("org_id = %q", query.Condition("org_id"))
	}
	if query.Condition("status") != "active" {
		t.Errorf("status = %q", query.Condition("status"))
	}
	if query.Limit() != 25 {
		t.Errorf("limit = %d, want 25", query.Limit())
	}
}

func TestQueryWhereValueWithEquals(t *testing.T) {
	query := NewQuery(nil).Where("filter=a=b")
	if err := query.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Condition("filter") != "a=b" {
		t.Errorf("filter = %q, want a=b", query.Condition("filter"))
	}
}

func TestQueryWhereInvalid(t *testing.T) {
	for _, condition := range []string{"no-separator", "=value"} {
		query := NewQuery(nil).Where(condition)
		if query.Err() == nil {
			t.Errorf("Where(%q) should record an error", condition)
		}
	}
}

func TestQueryPaginationLifecycle(t *testing.T) {
	query := NewQuery(nil)
	if query.HasNextPage() {
		t.Error("fresh query should have no pagination state")
	}

	query.MergePagination(map[string]any{"starting_after": "cur-1"})
	if !query.HasNextPage() {
		t.Error("expected a next page after merge")
	}
	if query.Pagination()["starting_after"] != "cur-1" {
		t.Errorf("cursor = %v", query.Pagination()["starting_after"])
	}

	// Replacement, not accumulation.
	query.MergePagination(map[string]any{"page": 2})
	if _, stale := query.Pagination()["starting_after"]; stale {
		t.Error("old pagination key survived a merge")
	}

	query.MergePagination(nil)
	if query.HasNextPage() {
		t.Error("empty merge should exhaust the query")
	}
}
