package snykrest

import "github.com/nucleus/snyk-core/internal/endpoint"

// =============================================================================
// MEMBERSHIP REQUEST BUILDER
// =============================================================================

// MembershipRequestBuilder builds write payloads for membership resources
// (org and group memberships). Unlike other REST resources, the API accepts
// membership data only as JSON:API relationships, never attributes:
//
//	{"data": {"type": "org_membership", "relationships": {
//	    "user": {"data": {"id": ..., "type": "user"}},
//	    "role": {"data": {"id": ..., "type": "org_role"}},
//	    "org":  {"data": {"id": ..., "type": "org"}}}}}
//
// A truthy org_id selects the org_membership/org_role type pair; otherwise
// the group pair applies. The role is the only mutable field on update.
type MembershipRequestBuilder struct{}

// BuildCreate builds the relationships-only create payload from user_id,
// role_id, and exactly one of org_id/group_id.
func (MembershipRequestBuilder) BuildCreate(data endpoint.Record, resource *endpoint.Resource) endpoint.Record {
	isOrg := truthy(data["org_id"])
	membershipType, roleType := membershipTypes(isOrg)

	relationships := endpoint.Record{
		"user": relationshipRef(data["user_id"], "user"),
		"role": relationshipRef(data["role_id"], roleType),
	}
	if isOrg {
		relationships["org"] = relationshipRef(data["org_id"], "org")
	} else {
		relationships["group"] = relationshipRef(data["group_id"], "group")
	}

	return endpoint.Record{
		"data": endpoint.Record{
			"type":          membershipType,
			"relationships": relationships,
		},
	}
}

// BuildUpdate builds the role-change payload. Org-vs-group context comes
// from the update data, falling back to the membership's current org_id.
// The empty attributes object is required by the API's schema validation.
func (MembershipRequestBuilder) BuildUpdate(id string, data endpoint.Record, current endpoint.Record, resource *endpoint.Resource) endpoint.Record {
	isOrg := truthy(data["org_id"])
	if !isOrg && current != nil {
		isOrg = truthy(current["org_id"])
	}
	membershipType, roleType := membershipTypes(isOrg)

	return endpoint.Record{
		"data": endpoint.Record{
			"type":       membershipType,
			"id":         id,
			"attributes": endpoint.Record{},
			"relationships": endpoint.Record{
				"role": relationshipRef(data["role_id"], roleType),
			},
		},
	}
}

func membershipTypes(isOrg bool) (membershipType, roleType string) {
	if isOrg {
		return "org_membership", "org_role"
	}
	return "group_membership", "group_role"
}

func relationshipRef(id any, resourceType string) endpoint.Record {
	return endpoint.Record{
		"data": endpoint.Record{
			"id":   id,
			"type": resourceType,
		},
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	default:
		return true
	}
}
