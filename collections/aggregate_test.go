package collections_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/collections"
)

func add(a, b int) int { return a + b }

func TestReduce(t *testing.T) {
	t.Run("seeds from the first element when no initial value is given", func(t *testing.T) {
		var seen []int
		got, err := collections.Reduce(collections.Of(1, 2, 3), func(acc, n int) int {
			seen = append(seen, n)
			return acc + n
		})
		require.NoError(t, err)
		assert.Equal(t, 6, got)
		assert.Equal(t, []int{2, 3}, seen)
	})

	t.Run("starts from the initial value when given", func(t *testing.T) {
		got, err := collections.Reduce(collections.Of(1, 2, 3), add, 10)
		require.NoError(t, err)
		assert.Equal(t, 16, got)
	})

	t.Run("returns the initial value for an empty collection", func(t *testing.T) {
		got, err := collections.Reduce(collections.Of[int](), add, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("single element without initial value is returned unchanged", func(t *testing.T) {
		got, err := collections.Reduce(collections.Of(42), func(int, int) int {
			t.Fatal("fold function must not be called")
			return 0
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("fails on an empty collection without initial value", func(t *testing.T) {
		_, err := collections.Reduce(collections.FromMapping(collections.NewMapping[int]()), add)

		var rerr *collections.EmptyReduceError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, collections.KindMapping, rerr.Kind)
		assert.ErrorIs(t, err, collections.ErrEmptyCollection)
		assert.Contains(t, err.Error(), "mapping")
	})

	t.Run("rejects more than one initial value", func(t *testing.T) {
		_, err := collections.Reduce(collections.Of(1), add, 1, 2)
		assert.ErrorIs(t, err, collections.ErrTooManyInitialValues)
	})

	t.Run("folds mappings in enumeration order", func(t *testing.T) {
		m := collections.NewMapping(collections.P("x", "a"), collections.P("y", "b"), collections.P("z", "c"))
		got, err := collections.Reduce(collections.FromMapping(m), func(acc, s string) string { return acc + s })
		require.NoError(t, err)
		assert.Equal(t, "abc", got)
	})
}

func TestReduceTo(t *testing.T) {
	got := collections.ReduceTo(collections.Of(1, 2, 3), func(acc string, n int) string {
		return acc + strconv.Itoa(n)
	}, ">")
	assert.Equal(t, ">123", got)
}

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		input  collections.Collection[any]
		target any
		want   bool
	}{
		{"found", collections.Of[any](1, 2, 3), 2, true},
		{"not found", collections.Of[any](1, 2, 3), 4, false},
		{"no coercion between types", collections.Of[any](1, 2, 3), "2", false},
		{"no coercion between int kinds", collections.Of[any](1, 2, 3), int64(2), false},
		{"empty", collections.Of[any](), 1, false},
		{"mapping values", collections.FromMapping(collections.NewMapping[any](collections.P[string, any]("a", "x"))), "x", true},
		{"NaN never matches", collections.Of[any](math.NaN()), math.NaN(), false},
		{"nil matches nil", collections.Of[any](1, nil), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collections.Contains(tt.input, tt.target))
		})
	}
}

func TestEvery(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	assert.True(t, collections.Every(collections.Of(2, 4, 6), isEven))
	assert.False(t, collections.Every(collections.Of(2, 3, 6), isEven))
	assert.True(t, collections.Every(collections.Of[int](), isEven), "vacuously true")

	t.Run("uses truthiness without a predicate", func(t *testing.T) {
		assert.True(t, collections.Every(collections.Of[any](1, "a", true, []int{})))
		assert.False(t, collections.Every(collections.Of[any](1, 0, true)))
		assert.False(t, collections.Every(collections.Of[any](1, "", true)))
		assert.False(t, collections.Every(collections.Of[any](nil)))
	})

	t.Run("stops calling the predicate after the first failure", func(t *testing.T) {
		calls := 0
		collections.Every(collections.Of(1, 2, 3, 4), func(n int) bool {
			calls++
			return n < 2
		})
		assert.Equal(t, 2, calls)
	})
}

func TestSome(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	assert.True(t, collections.Some(collections.Of(1, 3, 4), isEven))
	assert.False(t, collections.Some(collections.Of(1, 3, 5), isEven))
	assert.False(t, collections.Some(collections.Of[int](), isEven), "vacuously false")

	t.Run("uses truthiness without a predicate", func(t *testing.T) {
		assert.True(t, collections.Some(collections.Of[any](0, "", "yes")))
		assert.False(t, collections.Some(collections.Of[any](0, "", false, nil)))
	})

	t.Run("works on mappings", func(t *testing.T) {
		m := collections.NewMapping(collections.P("a", false), collections.P("b", true))
		assert.True(t, collections.Some(collections.FromMapping(m)))
		assert.False(t, collections.Every(collections.FromMapping(m)))
	})
}

func TestEmptyReduceErrorIsDistinct(t *testing.T) {
	err := error(&collections.EmptyReduceError{})
	assert.False(t, errors.Is(err, collections.ErrNotCallable))
	assert.Equal(t, "collections: reduce of empty sequence with no initial value", err.Error())
}
