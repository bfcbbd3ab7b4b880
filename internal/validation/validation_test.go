package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["name", "rating"],
  "properties": {
    "name":   {"type": "string", "minLength": 2},
    "rating": {"type": "integer", "minimum": 1, "maximum": 5},
    "link":   {"anyOf": [{"type": "string", "maxLength": 0}, {"type": "string", "format": "uri"}]}
  }
}`

type sample struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Link   string `json:"link"`
}

func TestSchema_Validate(t *testing.T) {
	s, err := NewSchema(testSchema, map[string]string{"name": "Name must be at least 2 characters."})
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, s.Validate(sample{Name: "Jane", Rating: 5}))
		assert.Nil(t, s.Validate(sample{Name: "Jane", Rating: 1, Link: "https://example.com"}))
	})

	t.Run("one message per offending field", func(t *testing.T) {
		fe := s.Validate(sample{Name: "J", Rating: 6, Link: "not a url"})
		require.NotNil(t, fe)
		assert.Equal(t, []string{"link", "name", "rating"}, fe.Fields())
		assert.Equal(t, "Name must be at least 2 characters.", fe["name"])
		assert.NotEmpty(t, fe["rating"])
	})

	t.Run("rating zero", func(t *testing.T) {
		fe := s.Validate(sample{Name: "Jane", Rating: 0})
		assert.Equal(t, []string{"rating"}, fe.Fields())
	})

	t.Run("missing required property", func(t *testing.T) {
		fe := s.Validate(map[string]any{"rating": 3})
		assert.Contains(t, fe, "name")
	})
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{"b": "second", "a": "first"}
	assert.Equal(t, "validation failed: a: first; b: second", fe.Error())
}

func TestNewSchema_Malformed(t *testing.T) {
	_, err := NewSchema(`{"type": 12}`, nil)
	assert.Error(t, err)
	assert.Panics(t, func() { MustSchema(`{`, nil) })
}
