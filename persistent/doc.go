/*
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.
This package is the home of data structures with similar properties; see sub-package list for a
persistent singly-linked list.

*Persistent* immutable data-structures offer structural sharing, which means that if two data
structures are mostly copies of each other, most of the memory they take up will be shared between
them. Prepending to a persistent list creates a single new node in front of the original chain;
original and derived list share everything but that node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
