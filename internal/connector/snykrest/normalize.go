package snykrest

import "github.com/nucleus/snyk-core/internal/endpoint"

// =============================================================================
// RESPONSE SHAPE DETECTION
// =============================================================================

// responseShape discriminates the JSON:API response envelopes the REST API
// answers with. Detection runs once per response; every downstream branch
// switches on the tag instead of re-probing the payload.
type responseShape int

const (
	// shapePassthrough: no JSON:API envelope (error bodies, bare values).
	shapePassthrough responseShape = iota

	// shapeResourceList: {"data": [...]}.
	shapeResourceList

	// shapeResourceObject: {"data": {...}} single-record response.
	shapeResourceObject
)

// detectShape classifies a decoded response body and returns the payload
// under the `data` key for the two envelope shapes.
func detectShape(body any) (responseShape, any) {
	envelope, ok := body.(map[string]any)
	if !ok {
		return shapePassthrough, body
	}
	switch data := envelope["data"].(type) {
	case []any:
		return shapeResourceList, data
	case map[string]any:
		return shapeResourceObject, data
	default:
		return shapePassthrough, body
	}
}

// =============================================================================
// RESOURCE FLATTENING
// =============================================================================

// relationshipNameMap renames JSON:API relationship names to model column
// prefixes. Relationships not listed keep their name.
var relationshipNameMap = map[string]string{
	"organization": "org",
}

func mapRelationshipName(name string) string {
	if mapped, ok := relationshipNameMap[name]; ok {
		return mapped
	}
	return name
}

// flattenResource flattens one JSON:API resource object into a plain record:
// the id, every attribute, and one <name>_id foreign key per relationship.
// Non-object entries pass through unchanged; missing or malformed
// substructure is treated as absent rather than an error.
func flattenResource(entry any) any {
	record, ok := entry.(map[string]any)
	if !ok {
		return entry
	}

	flattened := endpoint.Record{"id": record["id"]}

	if attributes, ok := record["attributes"].(map[string]any); ok {
		for key, value := range attributes {
			flattened[key] = value
		}
	}

	if relationships, ok := record["relationships"].(map[string]any); ok {
		for name, relationship := range relationships {
			relData, ok := relationship.(map[string]any)
			if !ok {
				continue
			}
			inner, ok := relData["data"].(map[string]any)
			if !ok {
				continue
			}
			flattened[mapRelationshipName(name)+"_id"] = inner["id"]
		}
	}

	return flattened
}
