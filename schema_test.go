package instructor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaForStruct(t *testing.T) {
	type BookInfo struct {
		Title string   `json:"title"`
		Pages int      `json:"pages"`
		Tags  []string `json:"tags,omitempty"`
		Note  *string  `json:"note"`
	}

	raw, err := SchemaFor[BookInfo]()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "string"}, props["title"])
	assert.Equal(t, map[string]any{"type": "integer"}, props["pages"])
	assert.Equal(t, map[string]any{"type": "array", "items": map[string]any{"type": "string"}}, props["tags"])
	assert.Equal(t, map[string]any{"type": "string"}, props["note"])

	// Pointer and omitempty fields are optional, matching the decoder.
	assert.ElementsMatch(t, []any{"title", "pages"}, schema["required"])
}

func TestSchemaForNestedStruct(t *testing.T) {
	type Author struct {
		Name string `json:"name"`
	}
	type Book struct {
		Title   string   `json:"title"`
		Authors []Author `json:"authors"`
	}

	raw, err := SchemaFor[Book]()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))

	props := schema["properties"].(map[string]any)
	authors := props["authors"].(map[string]any)
	assert.Equal(t, "array", authors["type"])

	items := authors["items"].(map[string]any)
	assert.Equal(t, "object", items["type"])
	itemProps := items["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, itemProps["name"])
}

func TestSchemaForNonStruct(t *testing.T) {
	_, err := SchemaFor[string]()
	assert.Error(t, err)

	_, err = SchemaFor[[]int]()
	assert.Error(t, err)
}

func TestSchemaForPointerType(t *testing.T) {
	type Item struct {
		ID string `json:"id"`
	}
	raw, err := SchemaFor[*Item]()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id"`)
}

func TestMustSchemaForPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustSchemaFor[int]()
	})
}

func TestSchemaNameFor(t *testing.T) {
	type SentimentAnalysis struct{}
	assert.Equal(t, "sentiment_analysis", schemaNameFor[SentimentAnalysis]())
	assert.Equal(t, "sentiment_analysis", schemaNameFor[*SentimentAnalysis]())
	assert.Equal(t, "response", schemaNameFor[any]())
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Book", "book"},
		{"BookInfo", "book_info"},
		{"lowercase", "lowercase"},
		{"A", "a"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, toSnakeCase(tc.input))
		})
	}
}
