// Package fn provides higher-order combinators that wrap an arbitrary
// function to add single-invocation semantics, memoization, deferred
// execution and rate limiting.
//
// Every wrapper owns its own state. Two wrappers built from the same function
// share nothing.
//
//	init := fn.Once(func(_ ...struct{}) *Config { return load() })
//	fib := fn.Memoize(slowFib)
//	fn.Delay(func(msg ...string) { log.Println(msg) }, time.Second, "hello")
//	save := fn.Throttle(write, 100*time.Millisecond).Func()
//
// # Time
//
// [Delay] and [Throttle] schedule callbacks through a [Scheduler]. The
// default, [RealTime], uses [time.AfterFunc]; tests can inject a manual
// scheduler with [DelayOn] and [WithScheduler].
package fn
