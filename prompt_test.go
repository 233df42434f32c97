package instructor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "json fence",
			content:  "Here you go:\n```json\n{\"name\":\"Ada\"}\n```\nLet me know!",
			expected: `{"name":"Ada"}`,
		},
		{
			name:     "bare fence",
			content:  "```\n{\"ok\":true}\n```",
			expected: `{"ok":true}`,
		},
		{
			name:     "no fence falls back to braces",
			content:  `The answer is {"name":"Ada"} as requested.`,
			expected: `{"name":"Ada"}`,
		},
		{
			name:     "nested braces",
			content:  `{"outer":{"inner":1}}`,
			expected: `{"outer":{"inner":1}}`,
		},
		{
			name:     "nothing to extract passes through",
			content:  "I cannot help with that.",
			expected: "I cannot help with that.",
		},
		{
			name:     "unterminated fence falls back",
			content:  "```json\n{\"a\":1}",
			expected: `{"a":1}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, JSONBlock(tc.content))
		})
	}
}

func TestSchemaPrompt(t *testing.T) {
	t.Run("nil schema", func(t *testing.T) {
		assert.Equal(t, "Respond only with a valid JSON object.", SchemaPrompt(nil))
	})

	t.Run("includes schema and name", func(t *testing.T) {
		prompt := SchemaPrompt(&ResponseSchema{
			Name:   "person",
			Schema: []byte(`{"type":"object"}`),
		})
		assert.Contains(t, prompt, "(person)")
		assert.Contains(t, prompt, `{"type":"object"}`)
	})

	t.Run("includes description", func(t *testing.T) {
		prompt := SchemaPrompt(&ResponseSchema{
			Description: "A person record.",
			Schema:      []byte(`{}`),
		})
		assert.Contains(t, prompt, "A person record.")
	})
}
