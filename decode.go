package instructor

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// DecodeError describes a single failure to interpret part of an untyped
// value as the target type. Multiple decode errors may describe one failed
// attempt, one per invalid field.
type DecodeError struct {
	// Expected describes the type that was required.
	Expected string

	// Found describes what was actually present.
	Found string

	// Path locates the failure within the value.
	Path []string
}

// String formats the error as a single corrective line.
func (e DecodeError) String() string {
	path := strings.Join(e.Path, ".")
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("Expected %s but found %s at path %s", e.Expected, e.Found, path)
}

// Decoder attempts to interpret an untyped value (a parsed JSON tree) as a
// target type T. Implementations are total: they never panic and return a
// non-empty error list on failure.
type Decoder[T any] interface {
	Decode(value any) (T, []DecodeError)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc[T any] func(value any) (T, []DecodeError)

// Decode calls f(value).
func (f DecoderFunc[T]) Decode(value any) (T, []DecodeError) {
	return f(value)
}

// StructDecoder decodes a parsed JSON tree into T by reflecting over struct
// fields and their json tags. Fields that are neither pointers nor tagged
// omitempty are required; a missing required field is reported as a
// DecodeError at that field's path.
type StructDecoder[T any] struct{}

// Decode interprets value as a T.
func (StructDecoder[T]) Decode(value any) (T, []DecodeError) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	var errs []DecodeError
	decodeValue(rv, value, nil, &errs)
	if len(errs) > 0 {
		var zero T
		return zero, errs
	}
	return out, nil
}

// decodeValue assigns v into the addressable destination dst, accumulating
// decode errors with their paths.
func decodeValue(dst reflect.Value, v any, path []string, errs *[]DecodeError) {
	rt := dst.Type()

	switch rt.Kind() {
	case reflect.Pointer:
		if v == nil {
			return
		}
		elem := reflect.New(rt.Elem())
		decodeValue(elem.Elem(), v, path, errs)
		dst.Set(elem)

	case reflect.Interface:
		if rt.NumMethod() == 0 {
			if v != nil {
				dst.Set(reflect.ValueOf(v))
			}
			return
		}
		fail(errs, "object", v, path)

	case reflect.String:
		s, ok := v.(string)
		if !ok {
			fail(errs, "string", v, path)
			return
		}
		dst.SetString(s)

	case reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			fail(errs, "boolean", v, path)
			return
		}
		dst.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			fail(errs, "integer", v, path)
			return
		}
		dst.SetInt(int64(f))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) || f < 0 {
			fail(errs, "integer", v, path)
			return
		}
		dst.SetUint(uint64(f))

	case reflect.Float32, reflect.Float64:
		f, ok := v.(float64)
		if !ok {
			fail(errs, "number", v, path)
			return
		}
		dst.SetFloat(f)

	case reflect.Slice:
		items, ok := v.([]any)
		if !ok {
			fail(errs, "array", v, path)
			return
		}
		out := reflect.MakeSlice(rt, len(items), len(items))
		for i, item := range items {
			decodeValue(out.Index(i), item, childPath(path, strconv.Itoa(i)), errs)
		}
		dst.Set(out)

	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok || rt.Key().Kind() != reflect.String {
			fail(errs, "object", v, path)
			return
		}
		out := reflect.MakeMapWithSize(rt, len(obj))
		for key, item := range obj {
			elem := reflect.New(rt.Elem()).Elem()
			decodeValue(elem, item, childPath(path, key), errs)
			out.SetMapIndex(reflect.ValueOf(key).Convert(rt.Key()), elem)
		}
		dst.Set(out)

	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			fail(errs, "object", v, path)
			return
		}
		decodeStruct(dst, obj, path, errs)

	default:
		fail(errs, rt.String(), v, path)
	}
}

func decodeStruct(dst reflect.Value, obj map[string]any, path []string, errs *[]DecodeError) {
	rt := dst.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name, optional := fieldInfo(field)
		if name == "" {
			continue
		}

		fieldPath := childPath(path, name)
		value, present := obj[name]
		if !present || value == nil {
			if !optional {
				*errs = append(*errs, DecodeError{
					Expected: jsonTypeName(field.Type),
					Found:    "nothing",
					Path:     fieldPath,
				})
			}
			continue
		}
		decodeValue(dst.Field(i), value, fieldPath, errs)
	}
}

// fieldInfo resolves the JSON name of a struct field and whether it is
// optional. Pointer fields and fields tagged omitempty are optional.
func fieldInfo(field reflect.StructField) (name string, optional bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			optional = true
		}
	}
	if field.Type.Kind() == reflect.Pointer {
		optional = true
	}
	return name, optional
}

func fail(errs *[]DecodeError, expected string, v any, path []string) {
	*errs = append(*errs, DecodeError{
		Expected: expected,
		Found:    foundTypeName(v),
		Path:     append([]string(nil), path...),
	})
}

// childPath returns a fresh path slice so sibling errors never share a
// backing array.
func childPath(path []string, elem string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, elem)
}

// foundTypeName names the JSON type of a decoded value for error reporting.
// Integral numbers are reported as "integer" to make type mismatches precise.
func foundTypeName(v any) string {
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

// jsonTypeName maps a Go type to its JSON Schema type name.
func jsonTypeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return "string"
	}
}
