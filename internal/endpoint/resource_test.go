package endpoint

import (
	"reflect"
	"testing"
)

func TestRoutingParameters(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"orgs", nil},
		{"orgs/{org_id}/projects", []string{"org_id"}},
		{"orgs/{org_id}/projects/{project_id}/sbom", []string{"org_id", "project_id"}},
		{"tenants/{tenant_id}/brokers/connections/{connection_id}/integrations", []string{"tenant_id", "connection_id"}},
	}
	for _, tt := range tests {
		resource := &Resource{Name: "test", Path: tt.path}
		if got := resource.RoutingParameters(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("RoutingParameters(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	resource := &Resource{Name: "snyk.project_sboms", Path: "orgs/{org_id}/projects/{project_id}/sbom"}

	path, used, err := resource.ResolvePath(map[string]string{
		"org_id":     "org-1",
		"project_id": "proj-1",
		"extra":      "ignored",
	})
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if path != "orgs/org-1/projects/proj-1/sbom" {
		t.Errorf("path = %q", path)
	}
	if !reflect.DeepEqual(used, []string{"org_id", "project_id"}) {
		t.Errorf("used = %v", used)
	}
}

func TestResolvePathMissingValue(t *testing.T) {
	resource := &Resource{Name: "snyk.projects", Path: "orgs/{org_id}/projects"}

	for _, values := range []map[string]string{
		nil,
		{},
		{"org_id": ""},
		{"other": "x"},
	} {
		if _, _, err := resource.ResolvePath(values); err == nil {
			t.Errorf("ResolvePath(%v) should fail", values)
		}
	}
}

func TestIDColumnName(t *testing.T) {
	if got := (&Resource{}).IDColumnName(); got != "id" {
		t.Errorf("default id column = %q, want id", got)
	}
	if got := (&Resource{IDColumn: "public_id"}).IDColumnName(); got != "public_id" {
		t.Errorf("id column = %q, want public_id", got)
	}
}
