package sanity

// Option adjusts how a single check call is evaluated. Each check documents
// the options it honors; an option a check does not honor is inert for that
// check. Options carry per-call configuration only, there is no state shared
// between calls.
type Option func(*config)

type config struct {
	allowNil         bool
	allowNilElements bool
	complement       bool
	exact            bool
	errorMsg         string
	equality         func(candidate, value any) bool

	min          *float64
	max          *float64
	minExclusive bool
	maxExclusive bool

	elementsType any
	targetLength *int
	minLength    *int
	maxLength    *int
	elementCheck func(any) error

	asElement bool
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// AllowNil makes a nil argument pass the check unconditionally. It is
// evaluated before anything else about the argument, including Complement.
func AllowNil() Option {
	return func(c *config) { c.allowNil = true }
}

// Complement inverts the admissibility sense of the Value and Range checks:
// membership becomes exclusion and in-range becomes out-of-range. It has no
// effect on how AllowNil is evaluated.
func Complement() Option {
	return func(c *config) { c.complement = true }
}

// Equality replaces the default deep equality of the Value check. The
// predicate receives the candidate from the value specification first and
// the argument value second.
func Equality(fn func(candidate, value any) bool) Option {
	return func(c *config) { c.equality = fn }
}

// Exact makes the Value check treat a slice or array target as the single
// admissible value itself instead of expanding it into candidates.
func Exact() Option {
	return func(c *config) { c.exact = true }
}

// ErrorMessage replaces the default message of type and value failures. It
// never changes which kind of error is returned, and configuration errors
// ignore it.
func ErrorMessage(msg string) Option {
	return func(c *config) { c.errorMsg = msg }
}

// Min sets the lower bound of the Range check, inclusive unless MinExclusive
// is also given.
func Min(v float64) Option {
	return func(c *config) { c.min = &v }
}

// Max sets the upper bound of the Range check, inclusive unless MaxExclusive
// is also given.
func Max(v float64) Option {
	return func(c *config) { c.max = &v }
}

// MinExclusive excludes the Min bound itself from the admissible interval.
func MinExclusive() Option {
	return func(c *config) { c.minExclusive = true }
}

// MaxExclusive excludes the Max bound itself from the admissible interval.
func MaxExclusive() Option {
	return func(c *config) { c.maxExclusive = true }
}

// ElementsType sets the type specification applied to every non-nil element
// of the Iterable check. The spec is a single reflect.Type or a non-empty
// slice of them, as in the Type check.
func ElementsType(spec any) Option {
	return func(c *config) { c.elementsType = spec }
}

// TargetLength requires the iterable to have exactly n elements. It cannot
// be combined with MinLength or MaxLength.
func TargetLength(n int) Option {
	return func(c *config) { c.targetLength = &n }
}

// MinLength requires the iterable to have at least n elements.
func MinLength(n int) Option {
	return func(c *config) { c.minLength = &n }
}

// MaxLength requires the iterable to have at most n elements.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = &n }
}

// AllowNilElements makes nil elements acceptable to the Iterable check. Nil
// elements are then skipped by the element type check and the element
// callback.
func AllowNilElements() Option {
	return func(c *config) { c.allowNilElements = true }
}

// ElementCheck sets a callback invoked once per non-nil element of the
// Iterable check. A non-nil error it returns aborts the check and is
// returned to the caller unmodified.
func ElementCheck(fn func(any) error) Option {
	return func(c *config) { c.elementCheck = fn }
}

// elementPhrased switches default messages from parameter phrasing to
// element phrasing. Used by the RangeFn and ValueFn builders.
func elementPhrased() Option {
	return func(c *config) { c.asElement = true }
}
