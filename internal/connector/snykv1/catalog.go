package snykv1

import "github.com/nucleus/snyk-core/internal/endpoint"

// =============================================================================
// RESOURCE CATALOG
// Declarative definitions for the legacy v1 API resources. The v1 surface is
// mostly the endpoints the REST API has not absorbed yet: project history,
// ignores, integrations, webhooks, and the import machinery.
// =============================================================================

// Resources contains all Snyk v1 API resource definitions, keyed by
// resource name.
var Resources = map[string]*endpoint.Resource{

	"snyk.v1.orgs": {
		Name: "snyk.v1.orgs",
		Path: "orgs",
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "name", DataType: "STRING", Nullable: false},
			{Name: "slug", DataType: "STRING", Nullable: true},
			{Name: "url", DataType: "STRING", Nullable: true},
			{Name: "group", DataType: "JSON", Nullable: true},
		},
		CanQuery: true,
	},
	"snyk.v1.project_snapshots": {
		Name: "snyk.v1.project_snapshots",
		Path: "org/{org_id}/project/{project_id}/history",
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "org_id", DataType: "STRING", Nullable: false},
			{Name: "project_id", DataType: "STRING", Nullable: false},
			{Name: "created", DataType: "DATETIME", Nullable: true},
			{Name: "issue_counts", DataType: "JSON", Nullable: true},
		},
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.v1.project_ignores": {
		Name:      "snyk.v1.project_ignores",
		Path:      "org/{org_id}/project/{project_id}/ignores",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.v1.dependencies": {
		// Listing dependencies is a POST in the v1 API.
		Name:      "snyk.v1.dependencies",
		Path:      "org/{org_id}/dependencies",
		CanCreate: true,
	},
	"snyk.v1.entitlements": {
		Name:      "snyk.v1.entitlements",
		Path:      "org/{org_id}/entitlements",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.v1.group_roles": {
		Name:       "snyk.v1.group_roles",
		Path:       "group/{group_id}/roles",
		APIToModel: map[string]string{"publicId": "public_id"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
	"snyk.v1.group_settings": {
		Name:      "snyk.v1.group_settings",
		Path:      "group/{group_id}/settings",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.v1.group_tags": {
		Name:     "snyk.v1.group_tags",
		Path:     "group/{group_id}/tags",
		CanQuery: true,
	},
	"snyk.v1.integrations": {
		Name:       "snyk.v1.integrations",
		Path:       "org/{org_id}/integrations",
		APIToModel: map[string]string{"type": "integration_type"},
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "org_id", DataType: "STRING", Nullable: false},
			{Name: "integration_type", DataType: "STRING", Nullable: true, Comment: "Provider slug, e.g. github or docker-hub."},
			{Name: "credentials", DataType: "JSON", Nullable: true},
		},
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
	},
	"snyk.v1.integration_settings": {
		Name:      "snyk.v1.integration_settings",
		Path:      "org/{org_id}/integrations/{integration_id}/settings",
		CanQuery:  true,
		CanUpdate: true,
	},
	"snyk.v1.licenses": {
		// Listing licenses is a POST in the v1 API.
		Name:      "snyk.v1.licenses",
		Path:      "org/{org_id}/licenses",
		CanCreate: true,
	},
	"snyk.v1.webhooks": {
		Name: "snyk.v1.webhooks",
		Path: "org/{org_id}/webhooks",
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "org_id", DataType: "STRING", Nullable: false},
			{Name: "url", DataType: "STRING", Nullable: false},
			{Name: "secret", DataType: "STRING", Nullable: true},
		},
		CanQuery:  true,
		CanCreate: true,
		CanDelete: true,
	},

	// -------------------------------------------------------------------------
	// Imports. Creating a job answers 201 with the job URL in the Location
	// header; resources with the import request style parse it into a record.
	// Job status polling goes through snyk.v1.import_jobs.
	// -------------------------------------------------------------------------

	"snyk.v1.import_jobs": {
		Name:      "snyk.v1.import_jobs",
		Path:      "org/{org_id}/integrations/{integration_id}/import",
		CanQuery:  true,
		CanCreate: true,
	},
	"snyk.v1.github_imports": {
		Name:         "snyk.v1.github_imports",
		Path:         "org/{org_id}/integrations/{integration_id}/import",
		RequestStyle: endpoint.RequestStyleImport,
		Fields: []endpoint.FieldDef{
			{Name: "org_id", DataType: "STRING", Nullable: false},
			{Name: "integration_id", DataType: "STRING", Nullable: false},
			{Name: "target", DataType: "JSON", Nullable: false, Comment: "Repository owner/name/branch."},
			{Name: "files", DataType: "JSON", Nullable: true, Comment: "Optional manifest paths; omit to auto-detect."},
		},
		CanCreate: true,
	},
	"snyk.v1.target_imports": {
		Name:         "snyk.v1.target_imports",
		Path:         "org/{org_id}/integrations/{integration_id}/import",
		RequestStyle: endpoint.RequestStyleImport,
		CanCreate:    true,
	},
	"snyk.v1.azure_repos_imports": {
		Name:      "snyk.v1.azure_repos_imports",
		Path:      "org/{org_id}/integrations/{integration_id}/import",
		CanCreate: true,
	},
	"snyk.v1.bitbucket_cloud_imports": {
		Name:      "snyk.v1.bitbucket_cloud_imports",
		Path:      "org/{org_id}/integrations/{integration_id}/import",
		CanCreate: true,
	},
	"snyk.v1.bitbucket_server_imports": {
		Name:      "snyk.v1.bitbucket_server_imports",
		Path:      "org/{org_id}/integrations/{integration_id}/import",
		CanCreate: true,
	},
	"snyk.v1.container_registry_imports": {
		Name:      "snyk.v1.container_registry_imports",
		Path:      "org/{org_id}/integrations/{integration_id}/import",
		CanCreate: true,
	},
	"snyk.v1.dockerhub_imports": {
		Name:      "snyk.v1.dockerhub_imports",
		Path:      "org/{org_id}/integrations/{integration_id}/import",
		CanCreate: true,
	},
}

// Resource looks up a catalog entry by name.
func Resource(name string) (*endpoint.Resource, bool) {
	resource, ok := Resources[name]
	return resource, ok
}
