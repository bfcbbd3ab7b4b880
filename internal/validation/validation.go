package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldErrors maps a field name to a single human-readable message.
type FieldErrors map[string]string

// Fields returns the offending field names in sorted order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for k := range fe {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe.Fields() {
		parts = append(parts, f+": "+fe[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Schema is a compiled JSON schema plus the message shown for each failing field.
type Schema struct {
	schema   *gojsonschema.Schema
	messages map[string]string
}

// NewSchema compiles a JSON schema document. messages overrides the library's
// description for a field; fields without an entry get the library text.
func NewSchema(doc string, messages map[string]string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{schema: s, messages: messages}, nil
}

// MustSchema is NewSchema for package-level schemas; it panics on a malformed document.
func MustSchema(doc string, messages map[string]string) *Schema {
	s, err := NewSchema(doc, messages)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks v (marshalled as JSON) and returns nil when it conforms.
// At most one message is reported per field.
func (s *Schema) Validate(v any) FieldErrors {
	res, err := s.schema.Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return FieldErrors{"_": err.Error()}
	}
	if res.Valid() {
		return nil
	}

	out := FieldErrors{}
	for _, e := range res.Errors() {
		field := e.Field()
		if field == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
			if p, ok := e.Details()["property"].(string); ok {
				field = p
			}
		}
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := s.messages[field]; ok {
			out[field] = msg
		} else {
			out[field] = e.Description()
		}
	}
	return out
}
