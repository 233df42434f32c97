package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	instructor "github.com/mikkihugo/instructor-go"
)

// Check validates a decoded JSON value against the schema and returns one
// DecodeError per violation, with paths locating each failure. An empty
// result means the value conforms.
func Check(b Builder, value any) []instructor.DecodeError {
	var errs []instructor.DecodeError
	checkNode(b.node(), value, nil, &errs)
	return errs
}

// Decoder adapts a schema into an instructor decoder: the value is returned
// untyped when it conforms, otherwise the violations drive the retry loop's
// corrective protocol.
func Decoder(b Builder) instructor.DecoderFunc[any] {
	return func(value any) (any, []instructor.DecodeError) {
		if errs := Check(b, value); len(errs) > 0 {
			return nil, errs
		}
		return value, nil
	}
}

func checkNode(n *schemaNode, v any, path []string, errs *[]instructor.DecodeError) {
	switch n.Type {
	case "string":
		s, ok := v.(string)
		if !ok {
			addErr(errs, "string", v, path)
			return
		}
		if n.MinLength != nil && len(s) < *n.MinLength {
			addConstraintErr(errs, fmt.Sprintf("string with length >= %d", *n.MinLength), strconv.Quote(s), path)
		}
		if n.MaxLength != nil && len(s) > *n.MaxLength {
			addConstraintErr(errs, fmt.Sprintf("string with length <= %d", *n.MaxLength), strconv.Quote(s), path)
		}
		if n.Pattern != "" {
			if re, err := regexp.Compile(n.Pattern); err == nil && !re.MatchString(s) {
				addConstraintErr(errs, fmt.Sprintf("string matching %q", n.Pattern), strconv.Quote(s), path)
			}
		}
		checkEnum(n, s, path, errs)

	case "integer":
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			addErr(errs, "integer", v, path)
			return
		}
		checkRange(n, f, "integer", path, errs)
		checkEnum(n, f, path, errs)

	case "number":
		f, ok := v.(float64)
		if !ok {
			addErr(errs, "number", v, path)
			return
		}
		checkRange(n, f, "number", path, errs)
		checkEnum(n, f, path, errs)

	case "boolean":
		if _, ok := v.(bool); !ok {
			addErr(errs, "boolean", v, path)
		}

	case "array":
		items, ok := v.([]any)
		if !ok {
			addErr(errs, "array", v, path)
			return
		}
		if n.MinItems != nil && len(items) < *n.MinItems {
			addConstraintErr(errs, fmt.Sprintf("array with at least %d items", *n.MinItems), fmt.Sprintf("%d items", len(items)), path)
		}
		if n.MaxItems != nil && len(items) > *n.MaxItems {
			addConstraintErr(errs, fmt.Sprintf("array with at most %d items", *n.MaxItems), fmt.Sprintf("%d items", len(items)), path)
		}
		if n.Items != nil {
			for i, item := range items {
				checkNode(n.Items, item, extendPath(path, strconv.Itoa(i)), errs)
			}
		}

	case "object":
		obj, ok := v.(map[string]any)
		if !ok {
			addErr(errs, "object", v, path)
			return
		}
		for _, name := range n.Required {
			if _, present := obj[name]; !present {
				prop := n.Properties[name]
				expected := "value"
				if prop != nil {
					expected = prop.Type
				}
				*errs = append(*errs, instructor.DecodeError{
					Expected: expected,
					Found:    "nothing",
					Path:     extendPath(path, name),
				})
			}
		}
		for name, prop := range n.Properties {
			if value, present := obj[name]; present {
				checkNode(prop, value, extendPath(path, name), errs)
			}
		}
		if n.AdditionalProperties != nil && !*n.AdditionalProperties {
			for name := range obj {
				if _, declared := n.Properties[name]; !declared {
					*errs = append(*errs, instructor.DecodeError{
						Expected: "declared property",
						Found:    fmt.Sprintf("unknown property %q", name),
						Path:     extendPath(path, name),
					})
				}
			}
		}
	}
}

func checkRange(n *schemaNode, f float64, kind string, path []string, errs *[]instructor.DecodeError) {
	if n.Minimum != nil && f < *n.Minimum {
		addConstraintErr(errs, fmt.Sprintf("%s >= %v", kind, *n.Minimum), formatNumber(f), path)
	}
	if n.Maximum != nil && f > *n.Maximum {
		addConstraintErr(errs, fmt.Sprintf("%s <= %v", kind, *n.Maximum), formatNumber(f), path)
	}
}

func checkEnum(n *schemaNode, v any, path []string, errs *[]instructor.DecodeError) {
	if len(n.Enum) == 0 {
		return
	}
	for _, allowed := range n.Enum {
		if allowed == v {
			return
		}
	}
	values := make([]string, len(n.Enum))
	for i, allowed := range n.Enum {
		values[i] = fmt.Sprintf("%v", allowed)
	}
	addConstraintErr(errs, "one of ["+strings.Join(values, ", ")+"]", fmt.Sprintf("%v", v), path)
}

func addErr(errs *[]instructor.DecodeError, expected string, v any, path []string) {
	*errs = append(*errs, instructor.DecodeError{
		Expected: expected,
		Found:    jsonName(v),
		Path:     append([]string(nil), path...),
	})
}

func addConstraintErr(errs *[]instructor.DecodeError, expected, found string, path []string) {
	*errs = append(*errs, instructor.DecodeError{
		Expected: expected,
		Found:    found,
		Path:     append([]string(nil), path...),
	})
}

// extendPath returns a fresh path slice so sibling errors never share a
// backing array.
func extendPath(path []string, elem string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, elem)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// jsonName names the JSON type of a decoded value for error reporting.
func jsonName(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		if val == math.Trunc(val) {
			return "integer"
		}
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
