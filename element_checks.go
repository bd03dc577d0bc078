package sanity

// RangeFn returns an element check that applies Range with the given
// configuration fixed, accepting only the element value at call time. The
// default messages are phrased for elements rather than for the parameter
// itself. The result is meant to be passed to Iterable via ElementCheck.
func RangeFn(argName string, opts ...Option) func(any) error {
	fixed := append([]Option{elementPhrased()}, opts...)
	return func(v any) error {
		return Range(argName, v, fixed...)
	}
}

// ValueFn returns an element check that applies Value with the given target
// and configuration fixed, accepting only the element value at call time.
func ValueFn(argName string, target any, opts ...Option) func(any) error {
	fixed := append([]Option{elementPhrased()}, opts...)
	return func(v any) error {
		return Value(argName, v, target, fixed...)
	}
}
