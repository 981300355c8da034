// Package uio derives values from observable UI sources.
//
// Computations are declared as plain data with Observe, Subscribe and
// Context. An Observer reconciles each declaration into a graph of pooled,
// reference counted Instances: identical computations over identical inputs
// share one Instance across every Observer, so a source such as the scroll
// position is subscribed to once no matter how many consumers read it.
//
// Resolution is lazy and memoized by identity. Event sources push
// invalidations into a two phase scheduler which re-resolves affected
// Observers in a measure phase and notifies them in the following mutate
// phase.
//
//	sys := uio.NewSystem(frame.NewScheduler(frame.NewManual()))
//	sum := uio.Func2("sum", func(a, b int) int { return a + b })
//	o, _ := sys.Observe(uio.Observe(sum, 2, 3))
//	o.Value() // 5
package uio
