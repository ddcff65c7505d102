package list

type props[T any] struct {
	release  func(T)
	traceOps bool
}

// Option is a type to help initializing lists at creation time. Lists
// derived from a list by Prepend, Tail or Clone inherit its options.
type Option[T any] struct {
	config func(props[T]) props[T]
}

// OnRelease registers a hook which is called once for every element reclaimed
// when a list is dropped, i.e. when its node has lost its last owner.
func OnRelease[T any](hook func(T)) Option[T] {
	conf := func(p props[T]) props[T] {
		p.release = hook
		return p
	}
	return Option[T]{config: conf}
}

// TraceTeardown switches on tracing of teardown at info level.
func TraceTeardown[T any](b bool) Option[T] {
	conf := func(p props[T]) props[T] {
		p.traceOps = b
		return p
	}
	return Option[T]{config: conf}
}

func (p props[T]) reclaim(elem T) {
	if p.release != nil {
		p.release(elem)
	}
}

func (p props[T]) tracef(format string, args ...interface{}) {
	if p.traceOps {
		tracer().Infof(format, args...)
		return
	}
	tracer().Debugf(format, args...)
}
