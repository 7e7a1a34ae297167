// Package snykv1 implements an endpoint backend for the legacy Snyk v1 API.
//
// The v1 API predates JSON:API: list responses arrive wrapped under a
// resource-specific key ({"orgs": [...]}, {"projects": [...]}), field names
// are camelCase, and pagination is offset-based with page/perPage parameters.
// The backend unwraps those envelopes, converts field names to snake_case,
// and advances the page number while responses stay full.
//
// Import endpoints are the odd ones out: creating an import job answers
// 201 with an empty body and the job URL in the Location header. Resources
// flagged with the import request style route creates through that flow and
// return the job, org, and integration IDs parsed from the header.
package snykv1
