package sanity

import "reflect"

// Type checks that the runtime type of argValue matches at least one of the
// permitted types. The types spec is a single reflect.Type or a non-empty
// []reflect.Type; reflect.TypeFor is the convenient way to produce one. A
// value matches an interface type by implementing it.
//
// Honored options: AllowNil, ErrorMessage.
func Type(argName string, argValue any, types any, opts ...Option) error {
	cfg := buildConfig(opts)

	permitted, err := normalizeTypes(argName, types)
	if err != nil {
		return err
	}

	if isNil(argValue) && cfg.allowNil {
		return nil
	}

	if matchesAnyType(argValue, permitted) {
		return nil
	}
	return typeFailure(cfg, argName, argValue, permitted)
}

func typeFailure(cfg config, arg string, value any, permitted []reflect.Type) error {
	var spec string
	if len(permitted) == 1 {
		spec = "of type " + permitted[0].String()
	} else {
		spec = "of any type in " + typeNames(permitted)
	}
	if cfg.asElement {
		return failure(ErrTypeMismatch, arg, cfg.errorMsg,
			"elements of <%s> must be %s, but %s was encountered", arg, spec, typeName(value))
	}
	return failure(ErrTypeMismatch, arg, cfg.errorMsg,
		"parameter <%s> must be %s, but is of type %s", arg, spec, typeName(value))
}
