package snykrest

import "encoding/json"

// =============================================================================
// PROJECT TAGS
// =============================================================================

// ProjectTag is a key/value pair used to categorize and filter projects.
type ProjectTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ToMap converts the tag to the API's object form.
func (t ProjectTag) ToMap() map[string]string {
	return map[string]string{"key": t.Key, "value": t.Value}
}

// ParseProjectTags converts a record's tags field into typed tags. The API
// answers with a list of {key, value} objects; a JSON-encoded string of the
// same list is accepted too. Anything unparseable yields no tags.
func ParseProjectTags(value any) []ProjectTag {
	var tags []ProjectTag
	switch v := value.(type) {
	case nil:
		return tags
	case []ProjectTag:
		return append(tags, v...)
	case []any:
		for _, entry := range v {
			if tag, ok := tagFromEntry(entry); ok {
				tags = append(tags, tag)
			}
		}
	case string:
		var decoded []map[string]string
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return tags
		}
		for _, entry := range decoded {
			tags = append(tags, ProjectTag{Key: entry["key"], Value: entry["value"]})
		}
	}
	return tags
}

// ProjectTagsToAPI converts typed tags back to the API's list-of-objects form.
func ProjectTagsToAPI(tags []ProjectTag) []map[string]string {
	out := make([]map[string]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.ToMap())
	}
	return out
}

func tagFromEntry(entry any) (ProjectTag, bool) {
	switch e := entry.(type) {
	case ProjectTag:
		return e, true
	case map[string]any:
		key, _ := e["key"].(string)
		value, _ := e["value"].(string)
		return ProjectTag{Key: key, Value: value}, true
	case map[string]string:
		return ProjectTag{Key: e["key"], Value: e["value"]}, true
	default:
		return ProjectTag{}, false
	}
}
