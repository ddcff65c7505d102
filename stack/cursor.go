package stack

import (
	"iter"

	"github.com/npillmayer/chains/maybe"
)

// cursor points to the next node to visit. It does not own anything.
type cursor[T any] struct {
	next *node[T]
}

// advance returns the node to visit and moves on to its successor, or
// returns nil at the end of the chain.
func (c *cursor[T]) advance() *node[T] {
	n := c.next
	if n != nil {
		c.next = n.next
	}
	return n
}

func (c *cursor[T]) exhausted() bool {
	return c.next == nil
}

// --- Read cursor -----------------------------------------------------------

// Iter yields copies of the elements of a list, front to back.
type Iter[T any] struct {
	cursor[T]
	list *List[T]
	mods uint64
}

// Iter returns a read cursor positioned at the top of the stack. Every call
// returns an independent cursor.
func (l *List[T]) Iter() *Iter[T] {
	l.exclusive("iterate")
	return &Iter[T]{cursor: cursor[T]{next: l.head}, list: l, mods: l.mods}
}

// Next returns the next element, or nothing if the cursor is exhausted.
// It panics if the list has been modified since the cursor was created.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	if it.exhausted() {
		return maybe.Nothing[T]()
	}
	it.list.exclusive("iterate")
	assertThat(it.mods == it.list.mods, "list modified during iteration")
	return maybe.Just(it.advance().elem)
}

// --- Mutable cursor --------------------------------------------------------

// IterMut yields pointers to the elements of a list, front to back.
// While it is live, the list it borrows from cannot be accessed otherwise.
type IterMut[T any] struct {
	cursor[T]
	list *List[T]
	live bool
}

// IterMut returns a mutable cursor positioned at the top of the stack.
// The list stays borrowed until the cursor is exhausted or closed.
// Only one mutable cursor per list may be live at a time.
func (l *List[T]) IterMut() *IterMut[T] {
	assertThat(!l.borrowed, "list is already borrowed by a mutable cursor")
	l.borrowed = true
	return &IterMut[T]{cursor: cursor[T]{next: l.head}, list: l, live: true}
}

// Next returns a pointer to the next element, or nothing if the cursor is
// exhausted. Returning nothing ends the borrow.
func (it *IterMut[T]) Next() maybe.Maybe[*T] {
	if !it.live {
		return maybe.Nothing[*T]()
	}
	n := it.advance()
	if n == nil {
		it.Close()
		return maybe.Nothing[*T]()
	}
	return maybe.Just(&n.elem)
}

// Close ends the borrow before the cursor is exhausted. Closing a cursor
// more than once is a no-op.
func (it *IterMut[T]) Close() {
	if !it.live {
		return
	}
	it.live = false
	it.next = nil
	it.list.borrowed = false
}

// --- Consuming cursor ------------------------------------------------------

// IntoIter owns the chain it has taken over from a list and yields its
// elements by value.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves the chain of l into a consuming cursor. l is left empty.
// Calling Next on the cursor is equivalent to calling Pop on the original
// list.
func (l *List[T]) IntoIter() *IntoIter[T] {
	l.exclusive("move")
	it := &IntoIter[T]{list: List[T]{props: l.props, head: l.head, length: l.length}}
	l.head = nil
	l.length = 0
	l.mods++
	return it
}

// Next removes the next element from the chain and returns it.
func (it *IntoIter[T]) Next() maybe.Maybe[T] {
	return it.list.Pop()
}

// Len returns the number of elements not yet consumed.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// Drop releases the elements not yet consumed, the same way List.Drop does.
func (it *IntoIter[T]) Drop() {
	it.list.Drop()
}

// --- Sequences -------------------------------------------------------------

// All returns a sequence of the elements of l, top to bottom, for use with
// range-over-func. The list is not modified.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for v, ok := it.Next().Get(); ok; v, ok = it.Next().Get() {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers returns a sequence of pointers to the elements of l, top to bottom.
// The list is borrowed for the duration of the range loop.
func (l *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := l.IterMut()
		defer it.Close()
		for p, ok := it.Next().Get(); ok; p, ok = it.Next().Get() {
			if !yield(p) {
				return
			}
		}
	}
}

// Drain returns a sequence which takes over the elements of l when ranged
// over, and yields them top to bottom. If the loop is left early, the
// remaining elements are dropped.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.IntoIter()
		defer it.Drop()
		for v, ok := it.Next().Get(); ok; v, ok = it.Next().Get() {
			if !yield(v) {
				return
			}
		}
	}
}
