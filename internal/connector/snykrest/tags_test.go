package snykrest

import (
	"reflect"
	"testing"
)

func TestParseProjectTags(t *testing.T) {
	want := []ProjectTag{{Key: "team", Value: "platform"}, {Key: "env", Value: "prod"}}

	tests := []struct {
		name  string
		value any
		want  []ProjectTag
	}{
		{
			name: "list of objects",
			value: []any{
				map[string]any{"key": "team", "value": "platform"},
				map[string]any{"key": "env", "value": "prod"},
			},
			want: want,
		},
		{
			name:  "json string",
			value: `[{"key":"team","value":"platform"},{"key":"env","value":"prod"}]`,
			want:  want,
		},
		{
			name:  "typed slice",
			value: want,
			want:  want,
		},
		{name: "nil", value: nil, want: nil},
		{name: "garbage string", value: "not json", want: nil},
		{name: "scalar", value: 12, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseProjectTags(tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseProjectTags(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestProjectTagsRoundTrip(t *testing.T) {
	tags := []ProjectTag{{Key: "team", Value: "platform"}}
	api := ProjectTagsToAPI(tags)

	if len(api) != 1 || api[0]["key"] != "team" || api[0]["value"] != "platform" {
		t.Fatalf("unexpected API form: %v", api)
	}

	var asAny []any
	for _, entry := range api {
		asAny = append(asAny, entry)
	}
	if got := ParseProjectTags(asAny); !reflect.DeepEqual(got, tags) {
		t.Errorf("round trip = %v, want %v", got, tags)
	}
}
