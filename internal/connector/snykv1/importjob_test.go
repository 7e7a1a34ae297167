package snykv1

import (
	"context"
	"strings"
	"testing"

	"github.com/nucleus/snyk-core/internal/endpoint"
)

// =============================================================================
// IMPORT JOB TESTS
// =============================================================================

func TestBackend_CreateImportJob(t *testing.T) {
	backend, stub := newStubBackend(t)

	record, err := backend.Create(context.Background(), endpoint.Record{
		"org_id":         stub.OrgIDs[0],
		"integration_id": stub.IntegrationID,
		"target":         map[string]any{"owner": "octo", "name": "alpha", "branch": "main"},
		"files":          []any{map[string]any{"path": "package.json"}},
	}, Resources["snyk.v1.github_imports"])
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	want := endpoint.Record{
		"job_id":         stub.JobID,
		"org_id":         stub.OrgIDs[0],
		"integration_id": stub.IntegrationID,
	}
	for key, value := range want {
		if record[key] != value {
			t.Errorf("%s = %v, want %v", key, record[key], value)
		}
	}

	// Routing parameters stay out of the request body.
	if _, ok := stub.LastBody["orgId"]; ok {
		t.Error("org routing parameter leaked into the import body")
	}
	if _, ok := stub.LastBody["target"]; !ok {
		t.Errorf("expected target in import body, got %v", stub.LastBody)
	}
}

func TestBackend_CreateImportJobAbsoluteLocation(t *testing.T) {
	backend, stub := newStubBackend(t)
	stub.AbsoluteLocation = true

	record, err := backend.Create(context.Background(), endpoint.Record{
		"org_id":         stub.OrgIDs[0],
		"integration_id": stub.IntegrationID,
		"target":         map[string]any{"name": "registry/image"},
	}, Resources["snyk.v1.target_imports"])
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if record["job_id"] != stub.JobID {
		t.Errorf("job_id = %v, want %v", record["job_id"], stub.JobID)
	}
}

func TestBackend_CreateImportJobMissingLocation(t *testing.T) {
	backend, stub := newStubBackend(t)
	stub.NoLocation = true

	_, err := backend.Create(context.Background(), endpoint.Record{
		"org_id":         stub.OrgIDs[0],
		"integration_id": stub.IntegrationID,
		"target":         map[string]any{"owner": "octo", "name": "alpha"},
	}, Resources["snyk.v1.github_imports"])
	if err == nil {
		t.Fatal("expected an error when the Location header is absent")
	}
	if !strings.Contains(err.Error(), "no Location header") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseImportLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantJob  string
		wantErr  bool
	}{
		{
			name:     "path only",
			location: "/org/org-1/integrations/int-1/import/job-1",
			wantJob:  "job-1",
		},
		{
			name:     "absolute url",
			location: "https://api.snyk.io/v1/org/org-1/integrations/int-1/import/job-1",
			wantJob:  "job-1",
		},
		{
			name:     "trailing slash",
			location: "/org/org-1/integrations/int-1/import/job-1/",
			wantJob:  "job-1",
		},
		{
			name:     "import segment last",
			location: "/org/org-1/integrations/int-1/import",
			wantErr:  true,
		},
		{
			name:     "missing org segment",
			location: "/integrations/int-1/import/job-1",
			wantErr:  true,
		},
		{
			name:     "unrelated url",
			location: "/somewhere/else",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobID, orgID, integrationID, err := parseImportLocation(tt.location)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseImportLocation failed: %v", err)
			}
			if jobID != tt.wantJob {
				t.Errorf("jobID = %q, want %q", jobID, tt.wantJob)
			}
			if orgID != "org-1" || integrationID != "int-1" {
				t.Errorf("org/integration = %q/%q, want org-1/int-1", orgID, integrationID)
			}
		})
	}
}
