// Package snykrest implements the backend for the Snyk REST API.
//
// The REST API speaks JSON:API: list responses wrap resource objects in a
// `data` array and paginate with an opaque `starting_after` cursor carried in
// `links.next`. This backend flattens resource objects (id + attributes +
// relationship foreign keys) into plain records, threads the cursor through
// the caller's query, and stamps the mandatory `version` parameter onto every
// request.
//
// Membership resources are the one deviation: the API accepts their writes
// only as relationships, never attributes, so those payloads are built by a
// dedicated request builder selected through the resource catalog.
package snykrest
