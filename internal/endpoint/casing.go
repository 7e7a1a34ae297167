package endpoint

import (
	"strings"
	"unicode"
)

// Casing identifies a field naming convention.
type Casing string

// Supported casing conventions.
const (
	SnakeCase Casing = "snake_case"
	CamelCase Casing = "camelCase"
	TitleCase Casing = "TitleCase"
)

// ParseCasing validates a casing value. Unknown values are rejected eagerly
// at configuration time instead of surfacing as silent mis-mapping later.
func ParseCasing(value string) (Casing, error) {
	switch Casing(value) {
	case SnakeCase, CamelCase, TitleCase:
		return Casing(value), nil
	default:
		return "", &ValidationError{Field: "casing", Message: "unknown casing " + value}
	}
}

// ConvertCase converts a field name between casing conventions.
func ConvertCase(name string, from, to Casing) string {
	if from == to || name == "" {
		return name
	}
	words := splitWords(name, from)
	return joinWords(words, to)
}

// ConvertKeys returns a copy of the record with every top-level key converted
// between casing conventions. Values are not touched.
func ConvertKeys(record Record, from, to Casing) Record {
	if from == to {
		return record
	}
	converted := make(Record, len(record))
	for key, value := range record {
		converted[ConvertCase(key, from, to)] = value
	}
	return converted
}

func splitWords(name string, from Casing) []string {
	if from == SnakeCase {
		return strings.Split(name, "_")
	}
	var words []string
	var current strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
		current.WriteRune(unicode.ToLower(r))
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}

func joinWords(words []string, to Casing) string {
	switch to {
	case SnakeCase:
		return strings.Join(words, "_")
	case CamelCase:
		var b strings.Builder
		for i, word := range words {
			if i == 0 {
				b.WriteString(word)
			} else {
				b.WriteString(capitalize(word))
			}
		}
		return b.String()
	default: // TitleCase
		var b strings.Builder
		for _, word := range words {
			b.WriteString(capitalize(word))
		}
		return b.String()
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
