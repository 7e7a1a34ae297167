// Package endpoint defines the contracts shared by the Snyk API backends.
//
// Architecture:
//
//	Resource  - declarative schema for one remote resource (path template,
//	            id column, capability flags, field renames)
//	Query     - per-request state (conditions, limit, pagination cursor)
//	Backend   - contract implemented by the REST and v1 backends
//	Registry  - catalog of registered resources indexed by name
//
// Backends register their resource catalogs with the default registry at
// init time; callers look resources up by name and drive queries through
// whichever backend owns the resource.
package endpoint
