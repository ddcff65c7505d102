package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chains/maybe"
)

// node is an immutable cell of a chain, possibly shared between lists.
// Only the bookkeeping fields refs and count change after construction.
type node[T any] struct {
	elem  T
	next  *node[T]
	refs  int // owners: lists with this head plus the predecessor nodes
	count int // length of the chain starting here
}

// retain registers another owner of n. It is a no-op for nil.
func (n *node[T]) retain() *node[T] {
	if n != nil {
		assertThat(n.refs > 0, "cannot share reclaimed node %v", n.elem)
		n.refs++
	}
	return n
}

// List is an immutable list of elements of type T. The zero value is an
// empty list.
type List[T any] struct {
	props[T]
	head *node[T]
}

// Empty creates an empty list.
func Empty[T any](opts ...Option[T]) List[T] {
	l := List[T]{}
	for _, option := range opts {
		l.props = option.config(l.props)
	}
	return l
}

// Of creates a list holding elems, with elems[0] in front.
// The nodes of the new list are owned by the list only.
func Of[T any](elems ...T) List[T] {
	return Empty[T]().PrependAll(elems...)
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of l.
func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.count
}

// IsEmpty is true for an empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Head returns the first element of l, or nothing if l is empty.
func (l List[T]) Head() maybe.Maybe[T] {
	l.assertLive()
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// Prepend returns a new list with elem in front of the elements of l.
// l is left unchanged and shares its chain with the new list.
func (l List[T]) Prepend(elem T) List[T] {
	l.assertLive()
	n := &node[T]{elem: elem, next: l.head.retain(), refs: 1, count: l.Len() + 1}
	return List[T]{props: l.props, head: n}
}

// PrependAll returns a new list with elems in front of the elements of l, such
// that elems[0] is the first element of the result. Only the first node of l
// gains an owner; the new nodes are owned by the new list only.
func (l List[T]) PrependAll(elems ...T) List[T] {
	l.assertLive()
	if len(elems) == 0 {
		return l.Clone()
	}
	head := l.head.retain()
	count := l.Len()
	for i := len(elems) - 1; i >= 0; i-- {
		count++
		head = &node[T]{elem: elems[i], next: head, refs: 1, count: count}
	}
	return List[T]{props: l.props, head: head}
}

// Tail returns a list of all the elements of l except the first one.
// The tail of an empty list is an empty list.
func (l List[T]) Tail() List[T] {
	l.assertLive()
	if l.head == nil {
		return List[T]{props: l.props}
	}
	return List[T]{props: l.props, head: l.head.next.retain()}
}

// Clone returns a new owner of the chain of l.
func (l List[T]) Clone() List[T] {
	l.assertLive()
	return List[T]{props: l.props, head: l.head.retain()}
}

// Refs returns the number of owners of the first node of l, or 0 for an
// empty list.
func (l List[T]) Refs() int {
	if l.head == nil {
		return 0
	}
	return l.head.refs
}

// Drop gives up ownership of the chain of l and leaves l empty. Nodes for
// which l held the last reference are reclaimed, front to back, until a
// node is reached which is still owned by another list or node. The rest
// of the chain is left alone.
func (l *List[T]) Drop() {
	l.assertLive()
	cur := l.head
	l.head = nil
	var zero T
	reclaimed := 0
	for cur != nil {
		cur.refs--
		if cur.refs > 0 {
			l.tracef("teardown stops at shared node %v (refs=%d), reclaimed %d nodes",
				cur.elem, cur.refs, reclaimed)
			return
		}
		next := cur.next
		cur.next = nil
		l.reclaim(cur.elem)
		cur.elem = zero
		cur = next
		reclaimed++
	}
	l.tracef("teardown reached end of chain, reclaimed %d nodes", reclaimed)
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(')')
	return b.String()
}

// assertLive panics if l is a copy of a list which has been dropped and
// its head has been reclaimed.
func (l List[T]) assertLive() {
	assertThat(l.head == nil || l.head.refs > 0, "use of a dropped list")
}
