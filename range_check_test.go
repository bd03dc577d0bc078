package sanity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sanity"
)

func TestRange(t *testing.T) {
	t.Run("half-open unit interval", func(t *testing.T) {
		opts := []sanity.Option{sanity.Min(0), sanity.Max(1), sanity.MaxExclusive()}

		assert.NoError(t, sanity.Range("p", 0, opts...))
		assert.NoError(t, sanity.Range("p", 0.999, opts...))

		err := sanity.Range("p", 1, opts...)
		require.Error(t, err)
		assert.ErrorIs(t, err, sanity.ErrInvalidValue)

		err = sanity.Range("p", -0.0001, opts...)
		require.Error(t, err)
		assert.ErrorIs(t, err, sanity.ErrInvalidValue)
	})

	t.Run("no bounds is a configuration error regardless of value", func(t *testing.T) {
		for _, v := range []any{0, 42.5, "not a number", nil} {
			err := sanity.Range("n", v)
			require.Error(t, err)
			assert.ErrorIs(t, err, sanity.ErrInvalidConfig)
		}
	})

	t.Run("min greater than max is a configuration error", func(t *testing.T) {
		err := sanity.Range("n", 5, sanity.Min(10), sanity.Max(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, sanity.ErrInvalidConfig)
	})

	t.Run("single lower bound", func(t *testing.T) {
		assert.NoError(t, sanity.Range("n", 0, sanity.Min(0)))
		assert.NoError(t, sanity.Range("n", 100, sanity.Min(0)))

		err := sanity.Range("n", -1, sanity.Min(0))
		require.Error(t, err)
		assert.ErrorIs(t, err, sanity.ErrInvalidValue)
		assert.Contains(t, err.Error(), ">= 0")

		err = sanity.Range("n", 0, sanity.Min(0), sanity.MinExclusive())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "> 0")
	})

	t.Run("single upper bound", func(t *testing.T) {
		assert.NoError(t, sanity.Range("n", 10, sanity.Max(10)))

		err := sanity.Range("n", 10, sanity.Max(10), sanity.MaxExclusive())
		require.Error(t, err)
		assert.ErrorIs(t, err, sanity.ErrInvalidValue)
		assert.Contains(t, err.Error(), "< 10")
	})

	t.Run("both bounds message", func(t *testing.T) {
		err := sanity.Range("threshold", 1.5, sanity.Min(0), sanity.Max(1))
		require.Error(t, err)
		assert.Equal(t, "parameter <threshold> must be >= 0 and <= 1, but is 1.5", err.Error())
	})

	t.Run("complement negates the interval as a unit", func(t *testing.T) {
		opts := []sanity.Option{sanity.Min(0), sanity.Max(1), sanity.Complement()}

		assert.NoError(t, sanity.Range("n", -1, opts...))
		assert.NoError(t, sanity.Range("n", 2, opts...))

		err := sanity.Range("n", 0.5, opts...)
		require.Error(t, err)
		assert.ErrorIs(t, err, sanity.ErrInvalidValue)
		assert.Contains(t, err.Error(), "< 0 or > 1")
	})

	t.Run("complement of a single bound", func(t *testing.T) {
		err := sanity.Range("n", 3, sanity.Min(0), sanity.Complement())
		require.Error(t, err)
		assert.ErrorIs(t, err, sanity.ErrInvalidValue)
		assert.Contains(t, err.Error(), "< 0")

		assert.NoError(t, sanity.Range("n", -3, sanity.Min(0), sanity.Complement()))
	})

	t.Run("complement boundary uses inclusivity of the original interval", func(t *testing.T) {
		// [0, 1] complemented: both endpoints are in range, so both fail.
		opts := []sanity.Option{sanity.Min(0), sanity.Max(1), sanity.Complement()}
		assert.Error(t, sanity.Range("n", 0, opts...))
		assert.Error(t, sanity.Range("n", 1, opts...))

		// (0, 1) complemented: endpoints are out of range, so both pass.
		open := []sanity.Option{
			sanity.Min(0), sanity.MinExclusive(),
			sanity.Max(1), sanity.MaxExclusive(),
			sanity.Complement(),
		}
		assert.NoError(t, sanity.Range("n", 0, open...))
		assert.NoError(t, sanity.Range("n", 1, open...))
	})

	t.Run("nil allowed short-circuits before complement", func(t *testing.T) {
		assert.NoError(t, sanity.Range("n", nil, sanity.Min(0), sanity.AllowNil()))
		assert.NoError(t, sanity.Range("n", nil, sanity.Min(0), sanity.AllowNil(), sanity.Complement()))
	})

	t.Run("non-numeric value is a type mismatch", func(t *testing.T) {
		for _, v := range []any{"ten", nil, []int{1}, struct{}{}} {
			err := sanity.Range("n", v, sanity.Min(0))
			require.Error(t, err)
			assert.ErrorIs(t, err, sanity.ErrTypeMismatch, "value %v", v)
		}
	})

	t.Run("all numeric kinds are comparable", func(t *testing.T) {
		values := []any{int(5), int8(5), int16(5), int32(5), int64(5),
			uint(5), uint8(5), uint16(5), uint32(5), uint64(5),
			float32(5), float64(5)}

		for _, v := range values {
			assert.NoError(t, sanity.Range("n", v, sanity.Min(0), sanity.Max(10)), "value %T", v)
		}
	})

	t.Run("custom message replaces text but not kind", func(t *testing.T) {
		err := sanity.Range("n", -1, sanity.Min(0), sanity.ErrorMessage("must not be negative"))
		require.Error(t, err)
		assert.ErrorIs(t, err, sanity.ErrInvalidValue)
		assert.Equal(t, "must not be negative", err.Error())
	})
}
