package instructor

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// ResponseSchema describes the desired output shape for structured responses.
type ResponseSchema struct {
	// Name identifies the schema (used as the tool or schema name).
	Name string

	// Description explains the schema to the model.
	Description string

	// Schema is the JSON Schema document.
	Schema json.RawMessage
}

// SchemaFor generates a JSON Schema for the struct type T. Field names are
// taken from json tags; fields that are neither pointers nor tagged omitempty
// are marked required, matching the StructDecoder's rules.
func SchemaFor[T any]() (json.RawMessage, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return nil, fmt.Errorf("schema: cannot use nil type")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct type", t)
	}
	return json.Marshal(structSchema(t))
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() json.RawMessage {
	schema, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return schema
}

// structSchema builds the schema map for a struct type.
func structSchema(t reflect.Type) map[string]any {
	properties := map[string]any{}
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, optional := fieldInfo(field)
		if name == "" {
			continue
		}
		properties[name] = typeSchema(field.Type)
		if !optional {
			required = append(required, name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// typeSchema maps a Go type to its JSON Schema fragment.
func typeSchema(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return map[string]any{
			"type":  "array",
			"items": typeSchema(t.Elem()),
		}
	case reflect.Struct:
		return structSchema(t)
	case reflect.Map:
		return map[string]any{"type": "object"}
	default:
		return map[string]any{"type": jsonTypeName(t)}
	}
}

// schemaNameFor derives a snake_case schema name from the type name of T.
func schemaNameFor[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return "response"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := toSnakeCase(t.Name())
	if name == "" {
		return "response"
	}
	return name
}

// toSnakeCase converts a CamelCase string to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
