// Package sanity provides argument sanity checks: small predicate functions
// invoked at the top of a routine to assert that a parameter has an expected
// type, lies within an admissible set of values, falls in a numeric range, or
// is an iterable meeting length and per-element constraints. A check returns
// nil on success and a descriptive typed error on failure; it never mutates
// the argument or any shared state.
//
// # Architecture
//
// Each source file holds one check family (`type_check.go`, `value_check.go`,
// `range_check.go`, `iterable_check.go`) plus shared helpers for option
// handling, spec normalization, and message rendering. There is no hidden
// global state, so the package is completely stateless, re-entrant, and
// goroutine-safe; every call is an independent predicate evaluation.
//
// Core building blocks:
//   - Type, Value, Range, Iterable – the four checks
//   - RangeFn, ValueFn            – builders producing per-element callbacks
//   - Option                      – per-call functional configuration
//   - Error                       – structured failure with argument name
//
// # Usage
//
//	func Connect(addr string, retries int, ports []int) error {
//	    if err := sanity.Range("retries", retries, sanity.Min(0), sanity.Max(10)); err != nil {
//	        return err
//	    }
//	    if err := sanity.Iterable("ports", ports,
//	        sanity.MinLength(1),
//	        sanity.ElementCheck(sanity.RangeFn("ports", sanity.Min(1), sanity.Max(65535))),
//	    ); err != nil {
//	        return err
//	    }
//	    // ...
//	}
//
// # Error Handling
//
// Every failure is a *Error that unwraps to one of three sentinel kinds:
// ErrInvalidConfig when the check's own options are malformed, ErrTypeMismatch
// when the argument's runtime type is unacceptable, and ErrInvalidValue when
// the type is fine but the value is not. Use errors.Is to branch on the kind
// and errors.As to recover the argument name. The ErrorMessage option
// replaces the diagnostic text but never the kind, and configuration errors
// ignore it. Errors returned by caller-supplied element callbacks propagate
// unmodified.
package sanity
