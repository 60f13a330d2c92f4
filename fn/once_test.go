package fn_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underbar/fn"
)

func TestOnce(t *testing.T) {
	t.Run("calls f exactly once with the first arguments", func(t *testing.T) {
		calls := 0
		square := fn.Once(func(n ...int) int {
			calls++
			return n[0] * n[0]
		})

		assert.Equal(t, 9, square(3))
		for i := 1; i <= 4; i++ {
			assert.Equal(t, 9, square(i*10))
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("wrappers are independent", func(t *testing.T) {
		var calls int
		f := func(_ ...struct{}) int { calls++; return calls }
		a, b := fn.Once(f), fn.Once(f)

		assert.Equal(t, 1, a())
		assert.Equal(t, 2, b())
		assert.Equal(t, 1, a())
	})

	t.Run("concurrent callers share one call", func(t *testing.T) {
		var calls atomic.Int32
		once := fn.Once(func(_ ...int) int32 { return calls.Add(1) })

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, int32(1), once(i))
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), calls.Load())
	})
}
