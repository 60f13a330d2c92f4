package collections_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/collections"
)

type address struct {
	City string `mapstructure:"city"`
}

type customer struct {
	Name    string
	Address address
	Home    *address
	secret  string
}

type audited struct {
	Created time.Time
}

type account struct {
	audited
	ID     string
	Id     string
	Hidden string `mapstructure:"-"`
	Owner  customer
}

func TestProperty(t *testing.T) {
	c := customer{Name: "Ann", Address: address{City: "Oslo"}, Home: &address{City: "Bergen"}, secret: "s"}

	tests := []struct {
		name   string
		v      any
		key    string
		want   any
		wantOK bool
	}{
		{"struct field", c, "Name", "Ann", true},
		{"case-insensitive field", c, "name", "Ann", true},
		{"pointer to struct", &c, "Name", "Ann", true},
		{"tagged field through path", c, "Address.city", "Oslo", true},
		{"pointer field through path", c, "Home.city", "Bergen", true},
		{"unexported field", c, "secret", nil, false},
		{"missing field", c, "Age", nil, false},
		{"map[string]any", map[string]any{"a": 1}, "a", 1, true},
		{"typed map", map[string]int{"a": 1}, "a", 1, true},
		{"non-string map keys", map[int]int{1: 1}, "1", nil, false},
		{"literal dotted key wins", map[string]any{"a.b": 1, "a": map[string]any{"b": 2}}, "a.b", 1, true},
		{"dotted path", map[string]any{"a": map[string]any{"b": 2}}, "a.b", 2, true},
		{"broken path", map[string]any{"a": 1}, "a.b", nil, false},
		{"mapping", collections.NewMapping(collections.P("k", "v")), "k", "v", true},
		{"nil", nil, "a", nil, false},
		{"nil pointer", (*customer)(nil), "Name", nil, false},
		{"scalar", 42, "a", nil, false},
		{"struct-valued field is returned as is", c, "Address", address{City: "Oslo"}, true},
		{"pointer field is returned as is", c, "Home", c.Home, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := collections.Property(tt.v, tt.key)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyStructFields(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	acc := account{
		audited: audited{Created: created},
		ID:      "upper",
		Id:      "mixed",
		Hidden:  "h",
		Owner:   customer{Name: "Ann"},
	}

	t.Run("time fields keep their type", func(t *testing.T) {
		got, ok := collections.Property(acc, "Created")
		require.True(t, ok)
		assert.Equal(t, created, got)
	})

	t.Run("exact name beats case-insensitive match", func(t *testing.T) {
		got, _ := collections.Property(acc, "Id")
		assert.Equal(t, "mixed", got)
	})

	t.Run("case-insensitive match follows field order", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			got, _ := collections.Property(acc, "id")
			require.Equal(t, "upper", got)
		}
	})

	t.Run("dash tag hides a field", func(t *testing.T) {
		_, ok := collections.Property(acc, "Hidden")
		assert.False(t, ok)
	})

	t.Run("nested struct through a path", func(t *testing.T) {
		got, ok := collections.Property(&acc, "Owner.Name")
		require.True(t, ok)
		assert.Equal(t, "Ann", got)
	})

	t.Run("pluck returns struct values unconverted", func(t *testing.T) {
		rows := []customer{{Address: address{City: "a"}}, {Address: address{City: "b"}}}
		got := collections.Pluck(collections.FromSlice(rows), "Address")
		assert.Equal(t, []any{address{City: "a"}, address{City: "b"}}, got)
	})
}
