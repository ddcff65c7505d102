package stack

// props holds the configuration of a list.
type props[T any] struct {
	release  func(T) // called for every element reclaimed by Drop
	traceOps bool    // trace teardown statistics at info level
}

// Option is a type to help initializing lists at creation time.
type Option[T any] struct {
	config func(props[T]) props[T]
}

// OnRelease registers a hook which is called once for every element a list
// reclaims during teardown. Elements handed out to clients, by Pop or by
// a consuming cursor, are owned by the client and will not be reported.
//
// Use it like this:
//
//     l := stack.New(stack.OnRelease(func(f *os.File) { f.Close() }))
//
func OnRelease[T any](hook func(T)) Option[T] {
	conf := func(p props[T]) props[T] {
		p.release = hook
		return p
	}
	return Option[T]{config: conf}
}

// TraceTeardown switches on tracing of teardown statistics at info level.
// Without it, these statistics are traced at debug level.
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
