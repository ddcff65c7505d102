package list

import (
	"iter"

	"github.com/npillmayer/chains/maybe"
)

// Iter yields the elements of a list front to back. It does not own any
// nodes and does not change reference counts.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns a cursor positioned at the head of l. Every call returns an
// independent cursor.
func (l List[T]) Iter() *Iter[T] {
	l.assertLive()
	return &Iter[T]{next: l.head}
}

// Next returns the next element, or nothing if the cursor is exhausted.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	n := it.next
	if n == nil {
		return maybe.Nothing[T]()
	}
	assertThat(n.refs > 0, "cursor reached a reclaimed node")
	it.next = n.next
	return maybe.Just(n.elem)
}

// All returns a sequence of the elements of l, for use with range-over-func.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for v, ok := it.Next().Get(); ok; v, ok = it.Next().Get() {
			if !yield(v) {
				return
			}
		}
	}
}
