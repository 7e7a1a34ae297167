// Package http provides the shared HTTP transport for the Snyk API backends.
//
// Structure:
//
//	client.go    - HTTP client with rate limiting and retry
//	auth.go      - Authentication strategies (Snyk token, Bearer, none)
//	paginator.go - Pagination strategies (cursor link, page heuristic)
package http
