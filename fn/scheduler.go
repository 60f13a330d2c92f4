package fn

import (
	"slices"
	"time"
)

// Scheduler runs f once, no sooner than d from now, on a goroutine of its
// choosing. Scheduled callbacks cannot be cancelled.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// SchedulerFunc adapts a function to a [Scheduler].
type SchedulerFunc func(d time.Duration, f func())

// AfterFunc calls s(d, f).
func (s SchedulerFunc) AfterFunc(d time.Duration, f func()) { s(d, f) }

// RealTime schedules callbacks with [time.AfterFunc].
var RealTime Scheduler = SchedulerFunc(func(d time.Duration, f func()) {
	time.AfterFunc(d, f)
})

// Delay calls f(args...) once, after at least wait has elapsed, and returns
// immediately. The arguments are copied when Delay is called.
func Delay[A any](f func(...A), wait time.Duration, args ...A) {
	DelayOn(RealTime, f, wait, args...)
}

// DelayOn is [Delay] with an explicit scheduler.
func DelayOn[A any](s Scheduler, f func(...A), wait time.Duration, args ...A) {
	args = slices.Clone(args)
	s.AfterFunc(wait, func() {
		f(args...)
	})
}
