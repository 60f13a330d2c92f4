package fn

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Option configures a [Throttler].
type Option func(*options)

type options struct {
	scheduler Scheduler
	logger    *zap.Logger
}

// WithScheduler sets the scheduler used for cooldown timers.
// The default is [RealTime].
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithLogger sets the logger for queued and trailing calls, both logged at
// debug level. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Throttler rate-limits calls to a function to at most one per cooldown
// window.
//
// A call while idle starts a window and calls the function at once. Calls
// during a window do not call the function; they are counted and get the
// most recent result back. When a window ends with a non-zero count, the
// count is decremented and the function is called once more, with no
// arguments, starting a new window. Bursts therefore drain one trailing call
// per window until the count reaches zero, and the arguments of collapsed
// calls are dropped.
//
// A Throttler is safe for concurrent use. Calls to the wrapped function never
// overlap.
type Throttler[A, R any] struct {
	f    func(...A) R
	wait time.Duration
	opts options

	mu      sync.Mutex
	cooling bool
	pending int
	last    R

	callMu sync.Mutex
}

// Throttle wraps f so that it runs at most once per wait.
//
//	t := fn.Throttle(refresh, 100*time.Millisecond)
//	t.Call() // runs refresh
//	t.Call() // queued, returns the previous result
func Throttle[A, R any](f func(...A) R, wait time.Duration, opts ...Option) *Throttler[A, R] {
	o := options{
		scheduler: RealTime,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Throttler[A, R]{f: f, wait: wait, opts: o}
}

// Call invokes the wrapped function or queues the call, as described on
// [Throttler], and returns the latest result.
func (t *Throttler[A, R]) Call(args ...A) R {
	t.mu.Lock()
	if t.cooling {
		t.pending++
		pending, last := t.pending, t.last
		t.mu.Unlock()

		t.opts.logger.Debug("throttled call queued", zap.Int("pending", pending))
		return last
	}
	t.cooling = true
	t.mu.Unlock()

	return t.fire(args)
}

// Func returns t.Call as a plain function value.
func (t *Throttler[A, R]) Func() func(...A) R { return t.Call }

// Pending returns the number of queued calls not yet drained.
func (t *Throttler[A, R]) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Cooling reports whether a cooldown window is active.
func (t *Throttler[A, R]) Cooling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cooling
}

// fire arms the cooldown timer and calls f. The caller has already moved t
// into the cooling state.
func (t *Throttler[A, R]) fire(args []A) R {
	t.opts.scheduler.AfterFunc(t.wait, t.expire)

	t.callMu.Lock()
	defer t.callMu.Unlock()
	r := t.f(args...)

	t.mu.Lock()
	t.last = r
	t.mu.Unlock()
	return r
}

func (t *Throttler[A, R]) expire() {
	t.mu.Lock()
	if t.pending == 0 {
		t.cooling = false
		t.mu.Unlock()
		return
	}
	t.pending--
	pending := t.pending
	t.mu.Unlock()

	t.opts.logger.Debug("throttle trailing call", zap.Int("pending", pending))
	t.fire(nil)
}
