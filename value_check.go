package sanity

import (
	"fmt"
	"reflect"
	"strings"
)

// defaultEquality is deep equality. Go's == panics on uncomparable operand
// types, so deep equality is the safe zero-configuration default.
func defaultEquality(candidate, value any) bool {
	return reflect.DeepEqual(candidate, value)
}

// Value checks that argValue is admissible with respect to target. The
// target is one admissible value or a slice/array of them, expanded into
// candidates unless Exact is given. Candidates are tried in order with the
// equality predicate, short-circuiting on the first match.
//
// Honored options: Complement, Equality, Exact, AllowNil, ErrorMessage.
func Value(argName string, argValue any, target any, opts ...Option) error {
	cfg := buildConfig(opts)

	candidates, expanded, err := normalizeValues(argName, target, cfg.exact)
	if err != nil {
		return err
	}

	if isNil(argValue) && cfg.allowNil {
		return nil
	}

	eq := cfg.equality
	if eq == nil {
		eq = defaultEquality
	}

	matched := false
	for _, c := range candidates {
		if eq(c, argValue) {
			matched = true
			break
		}
	}

	if matched != cfg.complement {
		return nil
	}
	return valueFailure(cfg, argName, argValue, candidates, expanded)
}

func valueFailure(cfg config, arg string, value any, candidates []any, expanded bool) error {
	var spec string
	if expanded {
		parts := make([]string, len(candidates))
		for i, c := range candidates {
			parts[i] = fmt.Sprintf("%v", c)
		}
		list := "[" + strings.Join(parts, ", ") + "]"
		if cfg.complement {
			spec = "none of " + list
		} else {
			spec = "any of " + list
		}
	} else {
		if cfg.complement {
			spec = fmt.Sprintf("different from %v", candidates[0])
		} else {
			spec = fmt.Sprintf("equal to %v", candidates[0])
		}
	}
	if cfg.asElement {
		return failure(ErrInvalidValue, arg, cfg.errorMsg,
			"elements of <%s> must be %s, but %v was encountered", arg, spec, value)
	}
	return failure(ErrInvalidValue, arg, cfg.errorMsg,
		"parameter <%s> must be %s, but is %v", arg, spec, value)
}
