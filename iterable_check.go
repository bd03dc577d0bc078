package sanity

import "reflect"

// Iterable checks that argValue is an iterable collection satisfying the
// configured length and per-element constraints. Slices, arrays, strings,
// and maps iterate; strings yield runes and maps yield their keys. Channels
// are not iterated because draining one is a side effect.
//
// Constraints run in order: nil marker, iterability, length, then the
// per-element rules for each element in iteration order (nil element, then
// element type, then the element callback), stopping at the first failure.
//
// Honored options: ElementsType, TargetLength, MinLength, MaxLength,
// AllowNil, AllowNilElements, ElementCheck, ErrorMessage.
func Iterable(argName string, argValue any, opts ...Option) error {
	cfg := buildConfig(opts)

	if cfg.targetLength != nil && (cfg.minLength != nil || cfg.maxLength != nil) {
		return configError(argName,
			"iterable check for <%s> cannot combine TargetLength with MinLength or MaxLength", argName)
	}
	for _, n := range []*int{cfg.targetLength, cfg.minLength, cfg.maxLength} {
		if n != nil && *n < 0 {
			return configError(argName, "length options for <%s> must not be negative, got %d", argName, *n)
		}
	}
	var elemTypes []reflect.Type
	if cfg.elementsType != nil {
		var err error
		elemTypes, err = normalizeTypes(argName, cfg.elementsType)
		if err != nil {
			return err
		}
	}

	if isNil(argValue) {
		if cfg.allowNil {
			return nil
		}
		return failure(ErrTypeMismatch, argName, cfg.errorMsg,
			"parameter <%s> must be iterable, but is nil", argName)
	}

	elements, ok := iterate(argValue)
	if !ok {
		return failure(ErrTypeMismatch, argName, cfg.errorMsg,
			"parameter <%s> must be iterable, but is of type %s", argName, typeName(argValue))
	}

	if err := checkLength(cfg, argName, len(elements)); err != nil {
		return err
	}

	for i, e := range elements {
		if isNil(e) {
			if cfg.allowNilElements {
				continue
			}
			return failure(ErrInvalidValue, argName, cfg.errorMsg,
				"parameter <%s> must not contain nil elements, but element %d is nil", argName, i)
		}
		if elemTypes != nil && !matchesAnyType(e, elemTypes) {
			return elementTypeFailure(cfg, argName, i, e, elemTypes)
		}
		if cfg.elementCheck != nil {
			if err := cfg.elementCheck(e); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkLength(cfg config, arg string, length int) error {
	if cfg.targetLength != nil && length != *cfg.targetLength {
		return failure(ErrInvalidValue, arg, cfg.errorMsg,
			"parameter <%s> must have exactly %d elements, but has %d", arg, *cfg.targetLength, length)
	}
	switch {
	case cfg.minLength != nil && cfg.maxLength != nil:
		if length < *cfg.minLength || length > *cfg.maxLength {
			return failure(ErrInvalidValue, arg, cfg.errorMsg,
				"parameter <%s> must have between %d and %d elements, but has %d",
				arg, *cfg.minLength, *cfg.maxLength, length)
		}
	case cfg.minLength != nil:
		if length < *cfg.minLength {
			return failure(ErrInvalidValue, arg, cfg.errorMsg,
				"parameter <%s> must have at least %d elements, but has %d", arg, *cfg.minLength, length)
		}
	case cfg.maxLength != nil:
		if length > *cfg.maxLength {
			return failure(ErrInvalidValue, arg, cfg.errorMsg,
				"parameter <%s> must have at most %d elements, but has %d", arg, *cfg.maxLength, length)
		}
	}
	return nil
}

func elementTypeFailure(cfg config, arg string, pos int, e any, types []reflect.Type) error {
	if len(types) == 1 {
		return failure(ErrTypeMismatch, arg, cfg.errorMsg,
			"elements of <%s> must be of type %s, but element %d is of type %s",
			arg, types[0], pos, typeName(e))
	}
	return failure(ErrTypeMismatch, arg, cfg.errorMsg,
		"elements of <%s> must be of any type in %s, but element %d is of type %s",
		arg, typeNames(types), pos, typeName(e))
}

// iterate materializes the elements of v in iteration order.
func iterate(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.String:
		var out []any
		for _, r := range rv.String() {
			out = append(out, r)
		}
		return out, true
	case reflect.Map:
		out := make([]any, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			out = append(out, k.Interface())
		}
		return out, true
	}
	return nil, false
}
