package sanity

import (
	"fmt"
	"reflect"
)

// Range checks that argValue lies within the interval described by the Min
// and Max options, each bound inclusive unless MinExclusive or MaxExclusive
// is given. When both bounds are present they combine conjunctively;
// Complement negates the whole interval test as a unit, not per bound. At
// least one bound is required.
//
// Any integer, unsigned, or float value is accepted and compared on the
// float64 ordering domain; anything else is a type mismatch.
//
// Honored options: Min, Max, MinExclusive, MaxExclusive, Complement,
// AllowNil, ErrorMessage.
func Range(argName string, argValue any, opts ...Option) error {
	cfg := buildConfig(opts)

	if cfg.min == nil && cfg.max == nil {
		return configError(argName, "range check for <%s> requires at least one of the Min and Max options", argName)
	}
	if cfg.min != nil && cfg.max != nil && *cfg.min > *cfg.max {
		return configError(argName, "range check for <%s> has Min %v greater than Max %v", argName, *cfg.min, *cfg.max)
	}

	if isNil(argValue) && cfg.allowNil {
		return nil
	}

	v, ok := toFloat(argValue)
	if !ok {
		if cfg.asElement {
			return failure(ErrTypeMismatch, argName, cfg.errorMsg,
				"elements of <%s> must be numeric, but %s was encountered", argName, typeName(argValue))
		}
		return failure(ErrTypeMismatch, argName, cfg.errorMsg,
			"parameter <%s> must be numeric, but is of type %s", argName, typeName(argValue))
	}

	in := true
	if cfg.min != nil {
		if cfg.minExclusive {
			in = in && v > *cfg.min
		} else {
			in = in && v >= *cfg.min
		}
	}
	if cfg.max != nil {
		if cfg.maxExclusive {
			in = in && v < *cfg.max
		} else {
			in = in && v <= *cfg.max
		}
	}

	if in != cfg.complement {
		return nil
	}
	return rangeFailure(cfg, argName, argValue)
}

func rangeFailure(cfg config, arg string, value any) error {
	// Symbols describe the admissible side, so they flip under Complement.
	var minSym, maxSym string
	if cfg.complement {
		minSym, maxSym = "<", ">"
		if cfg.minExclusive {
			minSym = "<="
		}
		if cfg.maxExclusive {
			maxSym = ">="
		}
	} else {
		minSym, maxSym = ">=", "<="
		if cfg.minExclusive {
			minSym = ">"
		}
		if cfg.maxExclusive {
			maxSym = "<"
		}
	}

	var spec string
	switch {
	case cfg.min != nil && cfg.max != nil:
		conj := "and"
		if cfg.complement {
			conj = "or"
		}
		spec = fmt.Sprintf("%s %v %s %s %v", minSym, *cfg.min, conj, maxSym, *cfg.max)
	case cfg.min != nil:
		spec = fmt.Sprintf("%s %v", minSym, *cfg.min)
	default:
		spec = fmt.Sprintf("%s %v", maxSym, *cfg.max)
	}

	if cfg.asElement {
		return failure(ErrInvalidValue, arg, cfg.errorMsg,
			"elements of <%s> must be %s, but %v was encountered", arg, spec, value)
	}
	return failure(ErrInvalidValue, arg, cfg.errorMsg,
		"parameter <%s> must be %s, but is %v", arg, spec, value)
}

// toFloat coerces a numeric value onto the float64 ordering domain.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
