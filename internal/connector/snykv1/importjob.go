package snykv1

import (
	"context"
	"fmt"
	"strings"

	"github.com/nucleus/snyk-core/internal/endpoint"
)

// =============================================================================
// IMPORT JOBS
// =============================================================================

// createImportJob posts an import request and builds the result record from
// the Location response header. The import endpoints answer 201 with an
// empty body; the job URL in the header is the only handle on the new job.
func (b *Backend) createImportJob(ctx context.Context, path string, body endpoint.Record) (endpoint.Record, error) {
	resp, err := b.client.Post(ctx, path, nil, body)
	if err != nil {
		return nil, err
	}

	location := resp.Location()
	if location == "" {
		return nil, fmt.Errorf(
			"Snyk API import endpoint returned no Location header. "+
				"According to API specification, the import endpoint must return a Location header with the job ID. "+
				"Response status: %d, Body: %s",
			resp.StatusCode, bodyPreview(resp.Body))
	}

	jobID, orgID, integrationID, err := parseImportLocation(location)
	if err != nil {
		return nil, err
	}

	return endpoint.Record{
		"job_id":         jobID,
		"org_id":         orgID,
		"integration_id": integrationID,
	}, nil
}

// parseImportLocation extracts the job, org, and integration IDs from an
// import job URL. Both path-only and absolute forms are accepted:
//
//	/org/{orgId}/integrations/{integrationId}/import/{jobId}
//	https://api.snyk.io/v1/org/{orgId}/integrations/{integrationId}/import/{jobId}
func parseImportLocation(location string) (jobID, orgID, integrationID string, err error) {
	parts := strings.Split(strings.TrimRight(location, "/"), "/")

	jobID = segmentAfter(parts, "import")
	orgID = segmentAfter(parts, "org")
	integrationID = segmentAfter(parts, "integrations")

	if jobID == "" || orgID == "" || integrationID == "" {
		return "", "", "", fmt.Errorf(
			"Could not extract job ID from Location header: %s. "+
				"Expected format: /org/{orgId}/integrations/{integrationId}/import/{jobId}",
			location)
	}
	return jobID, orgID, integrationID, nil
}

// segmentAfter returns the path segment following the first occurrence of
// marker, or "" when the marker is absent or last.
func segmentAfter(parts []string, marker string) string {
	for i, part := range parts {
		if part == marker && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func bodyPreview(body []byte) string {
	if len(body) == 0 {
		return "empty"
	}
	if len(body) > 200 {
		return string(body[:200])
	}
	return string(body)
}
