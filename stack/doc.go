/*
Package stack implements a mutable, singly-linked stack list with exclusive ownership
of its nodes.

A List owns a chain of nodes. Every node is referenced by exactly one link: either
the list's head or the next-link of its predecessor. Push puts a new node in front and
makes the previous chain its successor, Pop detaches the front node and hands its
element to the caller.

Iteration

Lists offer three kinds of cursors, all walking the chain front to back (i.e., in
last-in-first-out order):

    Iter()      yields copies of the elements; the list is left untouched
    IterMut()   yields pointers to the elements, allowing in-place modification
    IntoIter()  takes over the chain and yields the elements by value, like Pop

A list may have many read cursors, but at most one live mutable cursor. While a mutable
cursor is live, pushing, popping, peeking, dropping or creating another cursor panics.
Read cursors which are advanced after the list has structurally changed panic as well.
For use with range-over-func, All, Pointers and Drain wrap the cursors.

Teardown

Drop releases the chain node by node, detaching every successor before the current
node is let go. Teardown therefore runs in constant stack space, regardless of the
length of the chain. Clients may register a release hook (see OnRelease) to be told
about every element reclaimed this way.

Lists are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chains.stack'.
func tracer() tracing.Trace {
	return tracing.Select("chains.stack")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
