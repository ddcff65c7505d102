/*
Package list implements an immutable persistent singly-linked list.

Lists are values. Prepend and Tail do not modify a list, but return a new one which
shares the chain of the original:

    base := list.Of(2, 3)       // (2 3)
    a := base.Prepend(1)        // (1 2 3), shares (2 3) with base
    b := base.Prepend(10)       // (10 2 3), shares (2 3) with base and a

Nodes are never modified after construction.

Ownership

Every list is an owner of its chain and every node counts its owners: the lists whose
head it is and its predecessor nodes. Prepend, Tail and Clone create new owners; plain
assignment of a list value does not. Drop gives up ownership: it walks the chain and
reclaims every node for which it held the last reference, stopping at the first node
which is still referenced elsewhere. Teardown runs iteratively and does not nest for
long chains.

Reclaiming is observable through a release hook (see OnRelease). Using a list after it
has been dropped is a programming error and will panic if detected.

Reference counts are not synchronized. Lists must not be shared between goroutines
without external locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chains.list'.
func tracer() tracing.Trace {
	return tracing.Select("chains.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
