package stack

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chains/maybe"
)

// node is a cell of the chain. Its next-link exclusively owns the successor.
type node[T any] struct {
	elem T
	next *node[T]
}

// List is a stack of elements of type T. The zero value is an empty list
// ready to use.
type List[T any] struct {
	props[T]
	head     *node[T]
	length   int
	mods     uint64 // counts structural modifications, checked by cursors
	borrowed bool   // a mutable cursor is live
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, option := range opts {
		l.props = option.config(l.props)
	}
	return l
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty is true for a list without elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Push puts elem on top of the stack.
func (l *List[T]) Push(elem T) {
	l.exclusive("push")
	l.head = &node[T]{elem: elem, next: l.head}
	l.length++
	l.mods++
}

// Pop removes the top element and returns it. Popping an empty list
// returns nothing.
func (l *List[T]) Pop() maybe.Maybe[T] {
	l.exclusive("pop")
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	n := l.head
	l.head, n.next = n.next, nil
	l.length--
	l.mods++
	return maybe.Just(n.elem)
}

// Peek returns the top element without removing it.
func (l *List[T]) Peek() maybe.Maybe[T] {
	l.exclusive("peek")
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// PeekMut returns a pointer to the top element, or nothing for an empty list.
// Writes through the pointer modify the element in place.
func (l *List[T]) PeekMut() maybe.Maybe[*T] {
	l.exclusive("peek")
	if l.head == nil {
		return maybe.Nothing[*T]()
	}
	return maybe.Just(&l.head.elem)
}

// Drop releases all elements of the list, leaving it empty. Nodes are
// unlinked one at a time, front to back, so teardown does not nest
// for long chains. If a release hook has been configured, it is called
// for every element.
func (l *List[T]) Drop() {
	l.exclusive("drop")
	cur := l.head
	l.head = nil
	var zero T
	count := 0
	for cur != nil {
		next := cur.next
		cur.next = nil
		l.reclaim(cur.elem)
		cur.elem = zero
		cur = next
		count++
	}
	assertThat(count == l.length, "inconsistency: reclaimed %d nodes of a list of length %d",
		count, l.length)
	l.length = 0
	l.mods++
	l.tracef("dropped list, reclaimed %d nodes", count)
}

func (l *List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(']')
	return b.String()
}

// exclusive asserts that no mutable cursor is live.
func (l *List[T]) exclusive(op string) {
	assertThat(!l.borrowed, "cannot %s: list is borrowed by a mutable cursor", op)
}
