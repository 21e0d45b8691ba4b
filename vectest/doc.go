// Package vectest provides test collaborators for exercising the
// failure paths of the vec container: a deterministic fault injector
// that makes element operations fail on demand, an instance-counted
// element type for leak detection, and an order-tracking element type
// for verifying reverse-of-construction teardown.
//
// The injector is global, so tests using it must not run in parallel.
package vectest
