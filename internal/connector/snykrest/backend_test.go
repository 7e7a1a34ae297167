package snykrest

import (
	"context"
	"testing"

	"github.com/nucleus/snyk-core/internal/connector/http"
	"github.com/nucleus/snyk-core/internal/endpoint"
)

// =============================================================================
// BACKEND TESTS
// All tests run against the in-process stub server.
// =============================================================================

func newStubBackend(t *testing.T) (*Backend, *StubServer) {
	t.Helper()
	stub := NewStubServer()
	backend, err := New(&Config{
		BaseURL:   stub.URL(),
		Auth:      http.TokenAuth{Token: "stub-token"},
		Transport: stub.Transport(),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return backend, stub
}

func TestBackend_QueryOrgs(t *testing.T) {
	backend, stub := newStubBackend(t)
	query := endpoint.NewQuery(Resources["snyk.orgs"])

	records, err := backend.Query(context.Background(), query)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first["id"] != stub.OrgIDs[0] {
		t.Errorf("id = %v, want %v", first["id"], stub.OrgIDs[0])
	}
	if first["slug"] != "alpha" {
		t.Errorf("slug = %v, want alpha", first["slug"])
	}
	if first["group_id"] != stub.GroupID {
		t.Errorf("group_id = %v, want %v", first["group_id"], stub.GroupID)
	}
	if _, leaked := first["attributes"]; leaked {
		t.Error("attributes envelope leaked into the record")
	}
}

func TestBackend_QueryAdvancesCursor(t *testing.T) {
	backend, _ := newStubBackend(t)
	query := endpoint.NewQuery(Resources["snyk.orgs"])

	if _, err := backend.Query(context.Background(), query); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if !query.HasNextPage() {
		t.Fatal("expected a next page after the first fetch")
	}
	if got := query.Pagination()["starting_after"]; got != "page-two" {
		t.Errorf("cursor = %v, want page-two", got)
	}

	records, err := backend.Query(context.Background(), query)
	if err != nil {
		t.Fatalf("second Query failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record on the last page, got %d", len(records))
	}
	if query.HasNextPage() {
		t.Error("expected pagination to be exhausted")
	}
}

func TestBackend_RecordsIteratesAllPages(t *testing.T) {
	backend, stub := newStubBackend(t)
	query := endpoint.NewQuery(Resources["snyk.orgs"])

	it := backend.Records(context.Background(), query)
	defer it.Close()

	var ids []string
	for it.Next() {
		record := it.Value()
		ids = append(ids, record["id"].(string))
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator error: %v", err)
	}
	if len(ids) != len(stub.OrgIDs) {
		t.Fatalf("expected %d records across pages, got %d", len(stub.OrgIDs), len(ids))
	}
	for i, id := range ids {
		if id != stub.OrgIDs[i] {
			t.Errorf("record %d id = %v, want %v", i, id, stub.OrgIDs[i])
		}
	}
}

func TestBackend_QueryProjects(t *testing.T) {
	backend, stub := newStubBackend(t)
	query := endpoint.NewQuery(Resources["snyk.projects"]).
		Where("org_id=" + stub.OrgIDs[0])

	records, err := backend.Query(context.Background(), query)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	project := records[0]
	if project["org_id"] != stub.OrgIDs[0] {
		t.Errorf("org_id = %v, want %v", project["org_id"], stub.OrgIDs[0])
	}
	if project["target_id"] != stub.TargetID {
		t.Errorf("target_id = %v, want %v", project["target_id"], stub.TargetID)
	}
	// The API's "type" attribute lands on project_type.
	if project["project_type"] != "npm" {
		t.Errorf("project_type = %v, want npm", project["project_type"])
	}
	if _, leaked := project["type"]; leaked {
		t.Error("raw type field leaked into the record")
	}
}

func TestBackend_QueryMissingRoutingValue(t *testing.T) {
	backend, _ := newStubBackend(t)
	query := endpoint.NewQuery(Resources["snyk.projects"])

	if _, err := backend.Query(context.Background(), query); err == nil {
		t.Fatal("expected an error for the unresolved org_id routing parameter")
	}
}

func TestBackend_QueryUnsupported(t *testing.T) {
	backend, _ := newStubBackend(t)
	query := endpoint.NewQuery(Resources["snyk.group_users"])

	if _, err := backend.Query(context.Background(), query); err == nil {
		t.Fatal("expected an error for a resource without query support")
	}
}

func TestBackend_QueryInvalidCondition(t *testing.T) {
	backend, _ := newStubBackend(t)
	query := endpoint.NewQuery(Resources["snyk.orgs"]).Where("not-a-condition")

	if _, err := backend.Query(context.Background(), query); err == nil {
		t.Fatal("expected the builder error to surface on Query")
	}
}

func TestBackend_VersionParameterAlwaysSent(t *testing.T) {
	backend, stub := newStubBackend(t)
	query := endpoint.NewQuery(Resources["snyk.orgs"])

	if _, err := backend.Query(context.Background(), query); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if got := stub.LastQuery.Get("version"); got != DefaultAPIVersion {
		t.Errorf("version = %q, want %q", got, DefaultAPIVersion)
	}
}

func TestBackend_CreateMembership(t *testing.T) {
	backend, stub := newStubBackend(t)
	resource := Resources["snyk.org_memberships"]

	record, err := backend.Create(context.Background(), endpoint.Record{
		"org_id":  stub.OrgIDs[0],
		"user_id": stub.UserID,
		"role_id": stub.RoleID,
	}, resource)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if record["id"] != stub.Membership {
		t.Errorf("id = %v, want %v", record["id"], stub.Membership)
	}
	if record["user_id"] != stub.UserID {
		t.Errorf("user_id = %v, want %v", record["user_id"], stub.UserID)
	}

	data, _ := stub.LastBody["data"].(map[string]any)
	if data["type"] != "org_membership" {
		t.Errorf("payload type = %v, want org_membership", data["type"])
	}
	if _, hasAttributes := data["attributes"]; hasAttributes {
		t.Error("create payload must not carry attributes")
	}
	relationships, _ := data["relationships"].(map[string]any)
	for _, name := range []string{"user", "role", "org"} {
		if _, ok := relationships[name]; !ok {
			t.Errorf("missing %s relationship in create payload", name)
		}
	}
	if _, ok := relationships["group"]; ok {
		t.Error("group relationship present on an org membership")
	}
}

func TestBackend_UpdateMembershipRole(t *testing.T) {
	backend, stub := newStubBackend(t)
	resource := Resources["snyk.org_memberships"]

	current := endpoint.Record{"org_id": stub.OrgIDs[0], "user_id": stub.UserID}
	_, err := backend.Update(context.Background(), stub.Membership,
		endpoint.Record{"role_id": stub.RoleID}, current, resource)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	data, _ := stub.LastBody["data"].(map[string]any)
	if data["id"] != stub.Membership {
		t.Errorf("payload id = %v, want %v", data["id"], stub.Membership)
	}
	if data["type"] != "org_membership" {
		t.Errorf("payload type = %v, want org_membership", data["type"])
	}
	attributes, ok := data["attributes"].(map[string]any)
	if !ok || len(attributes) != 0 {
		t.Errorf("expected an empty attributes object, got %v", data["attributes"])
	}
	relationships, _ := data["relationships"].(map[string]any)
	if len(relationships) != 1 {
		t.Errorf("expected only the role relationship, got %v", relationships)
	}
	role, _ := relationships["role"].(map[string]any)
	roleData, _ := role["data"].(map[string]any)
	if roleData["type"] != "org_role" {
		t.Errorf("role type = %v, want org_role", roleData["type"])
	}
}

func TestBackend_CreateUnsupported(t *testing.T) {
	backend, _ := newStubBackend(t)

	if _, err := backend.Create(context.Background(), endpoint.Record{}, Resources["snyk.orgs"]); err == nil {
		t.Fatal("expected an error for a resource without create support")
	}
}

func TestBackend_DeleteProject(t *testing.T) {
	backend, stub := newStubBackend(t)

	err := backend.Delete(context.Background(), stub.ProjectID,
		endpoint.Record{"org_id": stub.OrgIDs[0]}, Resources["snyk.projects"])
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}
