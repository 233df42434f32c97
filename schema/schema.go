package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// Builder is the interface implemented by all schema builders.
// It provides a fluent API for constructing JSON Schema objects.
type Builder interface {
	// Build serializes the schema to json.RawMessage.
	// Returns an error if the schema is invalid.
	Build() (json.RawMessage, error)

	// MustBuild is like Build but panics on error.
	MustBuild() json.RawMessage

	// node returns the internal representation for composition.
	node() *schemaNode
}

// schemaNode is the internal representation of a JSON Schema.
type schemaNode struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// String constraints
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Numeric constraints
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Array constraints
	Items    *schemaNode `json:"items,omitempty"`
	MinItems *int        `json:"minItems,omitempty"`
	MaxItems *int        `json:"maxItems,omitempty"`

	// Object constraints
	Properties           map[string]*schemaNode `json:"properties,omitempty"`
	Required             []string               `json:"required,omitempty"`
	AdditionalProperties *bool                  `json:"additionalProperties,omitempty"`
}

// Sentinel errors for schema construction.
var (
	// ErrInvalidRange is returned when min exceeds max.
	ErrInvalidRange = errors.New("schema: minimum exceeds maximum")

	// ErrInvalidPattern is returned when a regex pattern is invalid.
	ErrInvalidPattern = errors.New("schema: invalid regex pattern")
)

// validate checks the schema for internal consistency.
func (s *schemaNode) validate() error {
	switch s.Type {
	case "string":
		if s.MinLength != nil && s.MaxLength != nil && *s.MinLength > *s.MaxLength {
			return fmt.Errorf("%w: minLength %d > maxLength %d", ErrInvalidRange, *s.MinLength, *s.MaxLength)
		}
		if s.Pattern != "" {
			if _, err := regexp.Compile(s.Pattern); err != nil {
				return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, s.Pattern, err)
			}
		}
	case "integer", "number":
		if s.Minimum != nil && s.Maximum != nil && *s.Minimum > *s.Maximum {
			return fmt.Errorf("%w: minimum %v > maximum %v", ErrInvalidRange, *s.Minimum, *s.Maximum)
		}
	case "array":
		if s.MinItems != nil && s.MaxItems != nil && *s.MinItems > *s.MaxItems {
			return fmt.Errorf("%w: minItems %d > maxItems %d", ErrInvalidRange, *s.MinItems, *s.MaxItems)
		}
		if err := s.Items.validate(); err != nil {
			return err
		}
	case "object":
		for _, prop := range s.Properties {
			if err := prop.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// build validates and serializes a node.
func build(n *schemaNode) (json.RawMessage, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

// mustBuild is like build but panics on error.
func mustBuild(n *schemaNode) json.RawMessage {
	data, err := build(n)
	if err != nil {
		panic(err)
	}
	return data
}

func ptr[T any](v T) *T { return &v }
