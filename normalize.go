package sanity

import (
	"reflect"
	"strings"
)

// isNil reports whether v is the "no value" marker: a nil any, or a nil
// pointer boxed into one. Nil slices and nil maps are not the marker, they
// are legitimate empty collections.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// normalizeTypes flattens a type specification into a non-empty slice of
// types. The spec may be a single reflect.Type or a []reflect.Type.
func normalizeTypes(arg string, spec any) ([]reflect.Type, error) {
	switch s := spec.(type) {
	case reflect.Type:
		if s == nil {
			return nil, configError(arg, "type specification for <%s> must not be nil", arg)
		}
		return []reflect.Type{s}, nil
	case []reflect.Type:
		if len(s) == 0 {
			return nil, configError(arg, "type specification for <%s> must not be empty", arg)
		}
		for _, t := range s {
			if t == nil {
				return nil, configError(arg, "type specification for <%s> must not contain nil types", arg)
			}
		}
		return s, nil
	case nil:
		return nil, configError(arg, "type specification for <%s> is required", arg)
	default:
		return nil, configError(arg,
			"type specification for <%s> must be a reflect.Type or a []reflect.Type, but is of type %s",
			arg, typeName(spec))
	}
}

// normalizeValues flattens a value specification into a non-empty slice of
// candidates. A slice or array target is expanded into its elements unless
// exact is set; the second return reports whether expansion happened.
func normalizeValues(arg string, target any, exact bool) ([]any, bool, error) {
	if isNil(target) {
		return nil, false, configError(arg, "value specification for <%s> is required", arg)
	}
	if !exact {
		rv := reflect.ValueOf(target)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			if rv.Len() == 0 {
				return nil, false, configError(arg, "value specification for <%s> must not be empty", arg)
			}
			out := make([]any, rv.Len())
			for i := range out {
				out[i] = rv.Index(i).Interface()
			}
			return out, true, nil
		}
	}
	return []any{target}, false, nil
}

// matchesType reports whether v's runtime type is the target type or a type
// assignable to it, which covers interface implementation.
func matchesType(v any, t reflect.Type) bool {
	vt := reflect.TypeOf(v)
	if vt == nil {
		return false
	}
	return vt == t || vt.AssignableTo(t)
}

func matchesAnyType(v any, types []reflect.Type) bool {
	for _, t := range types {
		if matchesType(v, t) {
			return true
		}
	}
	return false
}

// typeName renders the runtime type of v for diagnostics; a nil any renders
// as "nil".
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func typeNames(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
