package snykrest

import "github.com/nucleus/snyk-core/internal/endpoint"

// =============================================================================
// RESOURCE CATALOG
// Declarative definitions for the Snyk REST API resources this connector
// exposes. Each entry names the collection path (with routing parameters in
// braces), the JSON:API type used in write envelopes, per-resource field
// renames, and the operations the API permits.
// =============================================================================

// Resources contains all Snyk REST API resource definitions, keyed by
// resource name.
var Resources = map[string]*endpoint.Resource{

	// -------------------------------------------------------------------------
	// Orgs, groups, projects, targets
	// -------------------------------------------------------------------------

	"snyk.orgs": {
		Name: "snyk.orgs",
		Path: "orgs",
		Type: "org",
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "group_id", DataType: "STRING", Nullable: true, Comment: "Owning group, absent for personal orgs."},
			{Name: "name", DataType: "STRING", Nullable: false},
			{Name: "slug", DataType: "STRING", Nullable: false},
			{Name: "is_personal", DataType: "BOOLEAN", Nullable: true},
		},
		CanQuery:  true,
		CanUpdate: true,
	},
	"snyk.groups": {
		Name: "snyk.groups",
		Path: "groups",
		Type: "group",
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "name", DataType: "STRING", Nullable: false},
		},
		CanQuery: true,
	},
	"snyk.projects": {
		Name:       "snyk.projects",
		Path:       "orgs/{org_id}/projects",
		Type:       "project",
		APIToModel: map[string]string{"type": "project_type"},
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "org_id", DataType: "STRING", Nullable: false},
			{Name: "group_id", DataType: "STRING", Nullable: true},
			{Name: "name", DataType: "STRING", Nullable: false},
			{Name: "origin", DataType: "STRING", Nullable: true, Comment: "Integration the project was imported from."},
			{Name: "project_type", DataType: "STRING", Nullable: true},
			{Name: "build_args", DataType: "JSON", Nullable: true},
			{Name: "created", DataType: "DATETIME", Nullable: true},
			{Name: "business_criticality", DataType: "STRING", Nullable: true},
			{Name: "environment", DataType: "STRING", Nullable: true},
			{Name: "lifecycle", DataType: "STRING", Nullable: true},
			{Name: "read_only", DataType: "BOOLEAN", Nullable: true},
			{Name: "settings", DataType: "JSON", Nullable: true},
			{Name: "status", DataType: "STRING", Nullable: true, Comment: "active or inactive."},
			{Name: "tags", DataType: "JSON", Nullable: true, Comment: "List of {key, value} objects."},
			{Name: "target_file", DataType: "STRING", Nullable: true},
			{Name: "target_reference", DataType: "STRING", Nullable: true},
			{Name: "target_runtime", DataType: "STRING", Nullable: true},
			{Name: "importer_id", DataType: "STRING", Nullable: true},
			{Name: "owner_id", DataType: "STRING", Nullable: true},
			{Name: "target_id", DataType: "STRING", Nullable: true},
		},
		CanQuery:  true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.targets": {
		Name: "snyk.targets",
		Path: "orgs/{org_id}/targets",
		Type: "target",
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "org_id", DataType: "STRING", Nullable: false},
			{Name: "display_name", DataType: "STRING", Nullable: true},
			{Name: "url", DataType: "STRING", Nullable: true},
			{Name: "is_private", DataType: "BOOLEAN", Nullable: true},
			{Name: "origin", DataType: "STRING", Nullable: true},
			{Name: "created_at", DataType: "DATETIME", Nullable: true},
		},
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.custom_base_images": {
		Name:       "snyk.custom_base_images",
		Path:       "custom_base_images",
		Type:       "custom_base_image",
		APIToModel: map[string]string{"type": "image_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
	"snyk.container_images": {
		Name:       "snyk.container_images",
		Path:       "orgs/{org_id}/container_images",
		Type:       "container_image",
		APIToModel: map[string]string{"type": "resource_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
	"snyk.container_image_target_refs": {
		Name:     "snyk.container_image_target_refs",
		Path:     "orgs/{org_id}/container_images/{id}/relationships/image_target_refs",
		Type:     "image_target_ref",
		CanQuery: true,
	},
	"snyk.collections": {
		Name:       "snyk.collections",
		Path:       "orgs/{org_id}/collections",
		Type:       "collection",
		APIToModel: map[string]string{"type": "collection_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
	"snyk.collection_projects": {
		Name:      "snyk.collection_projects",
		Path:      "orgs/{org_id}/collections/{collection_id}/relationships/projects",
		Type:      "project",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},

	// -------------------------------------------------------------------------
	// Memberships and users
	// -------------------------------------------------------------------------

	"snyk.org_memberships": {
		Name:         "snyk.org_memberships",
		Path:         "orgs/{org_id}/memberships",
		Type:         "org_membership",
		RequestStyle: endpoint.RequestStyleRelationships,
		APIToModel:   map[string]string{"type": "membership_type"},
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "org_id", DataType: "STRING", Nullable: false},
			{Name: "group_id", DataType: "STRING", Nullable: true},
			{Name: "user_id", DataType: "STRING", Nullable: false},
			{Name: "role_id", DataType: "STRING", Nullable: false},
			{Name: "membership_type", DataType: "STRING", Nullable: true},
		},
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.org_members": {
		Name:      "snyk.org_members",
		Path:      "orgs/{org_id}/memberships",
		Type:      "member",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.group_memberships": {
		Name:         "snyk.group_memberships",
		Path:         "groups/{group_id}/memberships",
		Type:         "group_membership",
		RequestStyle: endpoint.RequestStyleRelationships,
		APIToModel:   map[string]string{"type": "membership_type"},
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "group_id", DataType: "STRING", Nullable: false},
			{Name: "user_id", DataType: "STRING", Nullable: false},
			{Name: "role_id", DataType: "STRING", Nullable: false},
			{Name: "membership_type", DataType: "STRING", Nullable: true},
		},
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.group_members": {
		Name:      "snyk.group_members",
		Path:      "groups/{group_id}/memberships",
		Type:      "member",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.group_org_memberships": {
		Name:       "snyk.group_org_memberships",
		Path:       "groups/{group_id}/org_memberships",
		Type:       "org_membership",
		APIToModel: map[string]string{"type": "membership_type"},
		CanQuery:   true,
	},
	"snyk.org_users": {
		Name:      "snyk.org_users",
		Path:      "orgs/{org_id}/users",
		Type:      "user",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.group_users": {
		// Role changes only: the API exposes no listing on this endpoint.
		Name:      "snyk.group_users",
		Path:      "groups/{group_id}/users",
		Type:      "user",
		CanUpdate: true,
	},
	"snyk.org_invites": {
		Name:      "snyk.org_invites",
		Path:      "orgs/{org_id}/invites",
		Type:      "org_invitation",
		CanQuery:  true,
		CanCreate: true,
		CanDelete: true,
	},
	"snyk.group_sso_connections": {
		Name:       "snyk.group_sso_connections",
		Path:       "groups/{group_id}/sso_connections",
		Type:       "sso_connection",
		APIToModel: map[string]string{"type": "connection_type"},
		CanQuery:   true,
	},
	"snyk.group_sso_connection_users": {
		Name:       "snyk.group_sso_connection_users",
		Path:       "groups/{group_id}/sso_connections/{sso_id}/users",
		Type:       "user",
		APIToModel: map[string]string{"type": "user_type"},
		CanQuery:   true,
		CanDelete:  true,
	},
	"snyk.access_requests": {
		Name:       "snyk.access_requests",
		Path:       "self/access_requests",
		Type:       "access_request",
		APIToModel: map[string]string{"type": "request_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},

	// -------------------------------------------------------------------------
	// Service accounts and apps
	// -------------------------------------------------------------------------

	"snyk.org_service_accounts": {
		Name:      "snyk.org_service_accounts",
		Path:      "orgs/{org_id}/service_accounts",
		Type:      "service_account",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.group_service_accounts": {
		Name:      "snyk.group_service_accounts",
		Path:      "groups/{group_id}/service_accounts",
		Type:      "service_account",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.org_apps": {
		Name:      "snyk.org_apps",
		Path:      "orgs/{org_id}/apps",
		Type:      "app",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.org_app_bots": {
		Name:      "snyk.org_app_bots",
		Path:      "orgs/{org_id}/app_bots",
		Type:      "app_bot",
		CanQuery:  true,
		CanDelete: true,
	},
	"snyk.org_app_installs": {
		Name:      "snyk.org_app_installs",
		Path:      "orgs/{org_id}/apps/installs",
		Type:      "app_install",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.group_app_installs": {
		Name:      "snyk.group_app_installs",
		Path:      "groups/{group_id}/apps/installs",
		Type:      "app_install",
		CanQuery:  true,
		CanCreate: true,
		CanDelete: true,
	},
	"snyk.self": {
		Name:     "snyk.self",
		Path:     "self",
		Type:     "user",
		CanQuery: true,
	},
	"snyk.self_apps": {
		Name:       "snyk.self_apps",
		Path:       "self/apps",
		Type:       "app",
		APIToModel: map[string]string{"type": "app_type"},
		CanQuery:   true,
		CanDelete:  true,
	},
	"snyk.self_app_sessions": {
		Name:       "snyk.self_app_sessions",
		Path:       "self/apps/{app_id}/sessions",
		Type:       "session",
		APIToModel: map[string]string{"type": "session_type"},
		CanQuery:   true,
		CanDelete:  true,
	},

	// -------------------------------------------------------------------------
	// Issues, policies, tests
	// -------------------------------------------------------------------------

	"snyk.org_issues": {
		Name:       "snyk.org_issues",
		Path:       "orgs/{org_id}/issues",
		Type:       "issue",
		APIToModel: map[string]string{"type": "issue_type"},
		Fields: []endpoint.FieldDef{
			{Name: "id", DataType: "STRING", Nullable: false},
			{Name: "org_id", DataType: "STRING", Nullable: false},
			{Name: "project_id", DataType: "STRING", Nullable: true},
			{Name: "scan_item_id", DataType: "STRING", Nullable: true},
			{Name: "scan_item_type", DataType: "STRING", Nullable: true},
			{Name: "title", DataType: "STRING", Nullable: true},
			{Name: "issue_type", DataType: "STRING", Nullable: true},
			{Name: "effective_severity_level", DataType: "STRING", Nullable: true},
			{Name: "status", DataType: "STRING", Nullable: true},
			{Name: "ignored", DataType: "BOOLEAN", Nullable: true},
			{Name: "key", DataType: "STRING", Nullable: true},
			{Name: "problems", DataType: "JSON", Nullable: true},
			{Name: "coordinates", DataType: "JSON", Nullable: true},
			{Name: "risk", DataType: "JSON", Nullable: true},
			{Name: "created_at", DataType: "DATETIME", Nullable: true},
			{Name: "updated_at", DataType: "DATETIME", Nullable: true},
		},
		CanQuery: true,
	},
	"snyk.group_issues": {
		Name:       "snyk.group_issues",
		Path:       "groups/{group_id}/issues",
		Type:       "issue",
		APIToModel: map[string]string{"type": "issue_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
	"snyk.org_policies": {
		Name:      "snyk.org_policies",
		Path:      "orgs/{org_id}/policies",
		Type:      "policy",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.org_policy_events": {
		Name:     "snyk.org_policy_events",
		Path:     "orgs/{org_id}/policies/{policy_id}/events",
		Type:     "policy_event",
		CanQuery: true,
	},
	"snyk.group_policies": {
		Name:      "snyk.group_policies",
		Path:      "groups/{group_id}/policies",
		Type:      "policy",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.test_jobs": {
		Name:       "snyk.test_jobs",
		Path:       "orgs/{org_id}/test_jobs",
		Type:       "test_job",
		APIToModel: map[string]string{"type": "job_type"},
		CanQuery:   true,
	},
	"snyk.sbom_tests": {
		Name:      "snyk.sbom_tests",
		Path:      "orgs/{org_id}/sbom_tests",
		Type:      "sbom_test",
		CanQuery:  true,
		CanCreate: true,
	},
	"snyk.project_sboms": {
		Name:     "snyk.project_sboms",
		Path:     "orgs/{org_id}/projects/{project_id}/sbom",
		Type:     "sbom",
		CanQuery: true,
	},
	"snyk.fix_pull_requests": {
		Name:       "snyk.fix_pull_requests",
		Path:       "orgs/{org_id}/projects/{project_id}/fix_pull_requests",
		Type:       "fix_pull_request",
		APIToModel: map[string]string{"type": "pr_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
	"snyk.ai_boms": {
		Name:       "snyk.ai_boms",
		Path:       "orgs/{org_id}/ai_boms",
		Type:       "ai_bom",
		APIToModel: map[string]string{"type": "bom_type"},
		CanQuery:   true,
		CanCreate:  true,
	},

	// -------------------------------------------------------------------------
	// Cloud
	// -------------------------------------------------------------------------

	"snyk.cloud_environments": {
		Name:      "snyk.cloud_environments",
		Path:      "orgs/{org_id}/cloud/environments",
		Type:      "environment",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.cloud_resources": {
		Name:     "snyk.cloud_resources",
		Path:     "orgs/{org_id}/cloud/resources",
		Type:     "resource",
		CanQuery: true,
	},
	"snyk.cloud_scans": {
		Name:      "snyk.cloud_scans",
		Path:      "orgs/{org_id}/cloud/scans",
		Type:      "scan",
		CanQuery:  true,
		CanCreate: true,
	},

	// -------------------------------------------------------------------------
	// Settings
	// -------------------------------------------------------------------------

	"snyk.org_settings_iac": {
		Name:       "snyk.org_settings_iac",
		Path:       "orgs/{org_id}/settings/iac",
		Type:       "iac_settings",
		APIToModel: map[string]string{"type": "settings_type"},
		CanQuery:   true,
		CanUpdate:  true,
	},
	"snyk.org_settings_opensource": {
		Name:       "snyk.org_settings_opensource",
		Path:       "orgs/{org_id}/settings/opensource",
		Type:       "opensource_settings",
		APIToModel: map[string]string{"type": "settings_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
	"snyk.org_settings_sast": {
		Name:       "snyk.org_settings_sast",
		Path:       "orgs/{org_id}/settings/sast",
		Type:       "sast_settings",
		APIToModel: map[string]string{"type": "settings_type"},
		CanQuery:   true,
		CanUpdate:  true,
	},
	"snyk.group_settings_iac": {
		Name:       "snyk.group_settings_iac",
		Path:       "groups/{group_id}/settings/iac",
		Type:       "iac",
		APIToModel: map[string]string{"type": "settings_type"},
		CanQuery:   true,
		CanUpdate:  true,
	},
	"snyk.pull_request_templates": {
		Name:       "snyk.pull_request_templates",
		Path:       "groups/{group_id}/settings/pull_request_template",
		Type:       "pull_request_template",
		APIToModel: map[string]string{"type": "template_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanDelete:  true,
	},
	"snyk.slack_channels": {
		Name:       "snyk.slack_channels",
		Path:       "orgs/{org_id}/slack_app/{tenant_id}/channels",
		Type:       "channel",
		APIToModel: map[string]string{"type": "channel_type"},
		CanQuery:   true,
	},
	"snyk.slack_settings": {
		Name:       "snyk.slack_settings",
		Path:       "orgs/{org_id}/slack_app/{bot_id}",
		Type:       "slack_settings",
		APIToModel: map[string]string{"type": "settings_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanDelete:  true,
	},

	// -------------------------------------------------------------------------
	// Broker and tenants
	// -------------------------------------------------------------------------

	"snyk.broker_connections": {
		Name:     "snyk.broker_connections",
		Path:     "orgs/{org_id}/brokers/connections",
		Type:     "broker_connection",
		CanQuery: true,
	},
	"snyk.broker_integrations": {
		Name:     "snyk.broker_integrations",
		Path:     "tenants/{tenant_id}/brokers/connections/{connection_id}/integrations",
		Type:     "broker_integration",
		CanQuery: true,
	},
	"snyk.broker_deployments": {
		Name:      "snyk.broker_deployments",
		Path:      "tenants/{tenant_id}/brokers/deployments",
		Type:      "broker_deployment",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.tenants": {
		Name:      "snyk.tenants",
		Path:      "tenants",
		Type:      "tenant",
		CanQuery:  true,
		CanUpdate: true,
	},
	"snyk.tenant_memberships": {
		Name:      "snyk.tenant_memberships",
		Path:      "tenants/{tenant_id}/memberships",
		Type:      "tenant_membership",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.tenant_roles": {
		Name:      "snyk.tenant_roles",
		Path:      "tenants/{tenant_id}/roles",
		Type:      "tenant_role",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},

	// -------------------------------------------------------------------------
	// Audit logs, exports, learn, packages
	// -------------------------------------------------------------------------

	"snyk.org_audit_logs": {
		Name:      "snyk.org_audit_logs",
		Path:      "orgs/{org_id}/audit_logs/search",
		Type:      "audit_log",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.group_audit_logs": {
		Name:     "snyk.group_audit_logs",
		Path:     "groups/{group_id}/audit_logs/search",
		Type:     "audit_log",
		CanQuery: true,
	},
	"snyk.org_exports": {
		Name:      "snyk.org_exports",
		Path:      "orgs/{org_id}/export",
		Type:      "export",
		CanQuery:  true,
		CanCreate: true,
	},
	"snyk.group_exports": {
		Name:      "snyk.group_exports",
		Path:      "groups/{group_id}/export",
		Type:      "export",
		CanQuery:  true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
	},
	"snyk.learn_assignments": {
		Name:       "snyk.learn_assignments",
		Path:       "orgs/{org_id}/learn/assignments",
		Type:       "assignment",
		APIToModel: map[string]string{"type": "assignment_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
	"snyk.learn_catalog": {
		Name:       "snyk.learn_catalog",
		Path:       "learn/catalog",
		Type:       "lesson",
		APIToModel: map[string]string{"type": "resource_type"},
		CanQuery:   true,
	},
	"snyk.packages": {
		Name:       "snyk.packages",
		Path:       "orgs/{org_id}/ecosystems/{ecosystem}/packages/{package_name}",
		Type:       "package",
		APIToModel: map[string]string{"type": "package_type"},
		CanQuery:   true,
		CanCreate:  true,
		CanUpdate:  true,
		CanDelete:  true,
	},
}

// Resource looks up a catalog entry by name.
func Resource(name string) (*endpoint.Resource, bool) {
	resource, ok := Resources[name]
	return resource, ok
}
