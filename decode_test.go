package instructor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON[T any](t *testing.T, raw string) (T, []DecodeError) {
	t.Helper()
	var tree any
	require.NoError(t, json.Unmarshal([]byte(raw), &tree))
	return StructDecoder[T]{}.Decode(tree)
}

func TestStructDecoderSuccess(t *testing.T) {
	type address struct {
		City string `json:"city"`
		Zip  string `json:"zip,omitempty"`
	}
	type profile struct {
		Name    string   `json:"name"`
		Age     int      `json:"age"`
		Score   float64  `json:"score"`
		Active  bool     `json:"active"`
		Tags    []string `json:"tags"`
		Address address  `json:"address"`
		Nick    *string  `json:"nick"`
	}

	got, errs := decodeJSON[profile](t, `{
		"name": "Ada",
		"age": 36,
		"score": 99.5,
		"active": true,
		"tags": ["math", "engines"],
		"address": {"city": "London"}
	}`)
	require.Empty(t, errs)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, 36, got.Age)
	assert.Equal(t, 99.5, got.Score)
	assert.True(t, got.Active)
	assert.Equal(t, []string{"math", "engines"}, got.Tags)
	assert.Equal(t, "London", got.Address.City)
	assert.Nil(t, got.Nick, "pointer fields are optional")
}

func TestStructDecoderTypeMismatches(t *testing.T) {
	type target struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name string
		raw  string
		line string
	}{
		{
			name: "integer for string",
			raw:  `{"name": 42, "age": 1}`,
			line: "Expected string but found integer at path name",
		},
		{
			name: "string for integer",
			raw:  `{"name": "Ada", "age": "old"}`,
			line: "Expected integer but found string at path age",
		},
		{
			name: "fractional for integer",
			raw:  `{"name": "Ada", "age": 36.5}`,
			line: "Expected integer but found number at path age",
		},
		{
			name: "null for string",
			raw:  `{"name": null, "age": 1}`,
			line: "Expected string but found nothing at path name",
		},
		{
			name: "array for object",
			raw:  `[1, 2, 3]`,
			line: "Expected object but found array at path (root)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := decodeJSON[target](t, tc.raw)
			require.NotEmpty(t, errs)
			lines := formatDecodeErrors(errs)
			assert.Contains(t, lines, tc.line)
		})
	}
}

func TestStructDecoderMissingRequiredField(t *testing.T) {
	type target struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	_, errs := decodeJSON[target](t, `{"name":"Ada"}`)
	require.Len(t, errs, 1)
	assert.Equal(t, DecodeError{Expected: "integer", Found: "nothing", Path: []string{"age"}}, errs[0])
}

func TestStructDecoderOptionalFields(t *testing.T) {
	type target struct {
		Name  string  `json:"name"`
		Note  string  `json:"note,omitempty"`
		Score *int    `json:"score"`
		Alias *string `json:"alias,omitempty"`
	}

	got, errs := decodeJSON[target](t, `{"name":"Ada"}`)
	require.Empty(t, errs)
	assert.Equal(t, "Ada", got.Name)
	assert.Nil(t, got.Score)
	assert.Nil(t, got.Alias)
}

func TestStructDecoderNestedPaths(t *testing.T) {
	type inner struct {
		Value int `json:"value"`
	}
	type outer struct {
		Items []inner `json:"items"`
	}

	_, errs := decodeJSON[outer](t, `{"items":[{"value":1},{"value":"two"},{}]}`)
	lines := formatDecodeErrors(errs)
	assert.Contains(t, lines, "Expected integer but found string at path items.1.value")
	assert.Contains(t, lines, "Expected integer but found nothing at path items.2.value")
}

func TestStructDecoderCollectsMultipleErrors(t *testing.T) {
	type target struct {
		A string `json:"a"`
		B int    `json:"b"`
		C bool   `json:"c"`
	}

	_, errs := decodeJSON[target](t, `{"a":1,"b":"x","c":"y"}`)
	assert.Len(t, errs, 3, "one error per invalid field")
}

func TestStructDecoderMapTarget(t *testing.T) {
	type target struct {
		Counts map[string]int `json:"counts"`
	}

	got, errs := decodeJSON[target](t, `{"counts":{"a":1,"b":2}}`)
	require.Empty(t, errs)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got.Counts)
}

func TestStructDecoderSkipsIgnoredAndUnexported(t *testing.T) {
	type target struct {
		Name   string `json:"name"`
		Secret string `json:"-"`
		hidden string `json:"hidden"`
	}

	got, errs := decodeJSON[target](t, `{"name":"Ada","hidden":"x"}`)
	require.Empty(t, errs)
	assert.Equal(t, "Ada", got.Name)
	assert.Empty(t, got.Secret)
}

func TestDecodeErrorString(t *testing.T) {
	tests := []struct {
		name     string
		err      DecodeError
		expected string
	}{
		{
			name:     "simple path",
			err:      DecodeError{Expected: "string", Found: "integer", Path: []string{"age"}},
			expected: "Expected string but found integer at path age",
		},
		{
			name:     "nested path",
			err:      DecodeError{Expected: "boolean", Found: "null", Path: []string{"user", "active"}},
			expected: "Expected boolean but found null at path user.active",
		},
		{
			name:     "empty path",
			err:      DecodeError{Expected: "object", Found: "array"},
			expected: "Expected object but found array at path (root)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.String())
		})
	}
}

func TestDecoderFunc(t *testing.T) {
	upper := DecoderFunc[string](func(v any) (string, []DecodeError) {
		s, ok := v.(string)
		if !ok {
			return "", []DecodeError{{Expected: "string", Found: foundTypeName(v)}}
		}
		return s, nil
	})

	got, errs := upper.Decode("hello")
	assert.Empty(t, errs)
	assert.Equal(t, "hello", got)

	_, errs = upper.Decode(1.0)
	require.Len(t, errs, 1)
	assert.Equal(t, "integer", errs[0].Found)
}
