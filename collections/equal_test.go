package collections_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underbar/collections"
)

func TestStrictEqual(t *testing.T) {
	s := []int{1, 2}
	m := map[string]int{"a": 1}
	p := &person{Name: "A"}
	type wrapper struct{ Items []int }

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"int vs int64", 1, int64(1), false},
		{"int vs string", 1, "1", false},
		{"nil vs nil", nil, nil, true},
		{"nil vs zero", nil, 0, false},
		{"NaN", math.NaN(), math.NaN(), false},
		{"same slice", s, s, true},
		{"equal but distinct slices", s, []int{1, 2}, false},
		{"sub-slice", s, s[:1], false},
		{"same map", m, m, true},
		{"distinct maps", m, map[string]int{"a": 1}, false},
		{"same pointer", p, p, true},
		{"distinct pointers", p, &person{Name: "A"}, false},
		{"equal structs", person{"A", 1}, person{"A", 1}, true},
		{"incomparable structs", wrapper{s}, wrapper{s}, false},
		{"funcs", func() {}, func() {}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collections.StrictEqual(tt.a, tt.b))
		})
	}
}

func TestTruthy(t *testing.T) {
	var nilSlice []int
	var nilPtr *person

	truthy := []any{1, -1, 0.5, "a", true, []int{}, map[string]int{}, person{}, [0]int{}, &person{}}
	falsy := []any{nil, 0, 0.0, math.NaN(), "", false, nilSlice, nilPtr, uint8(0)}

	for _, v := range truthy {
		assert.True(t, collections.Truthy(v), "%#v", v)
	}
	for _, v := range falsy {
		assert.False(t, collections.Truthy(v), "%#v", v)
	}
}
