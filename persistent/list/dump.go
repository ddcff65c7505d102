package list

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders lists as a tree, one branch per list, for debugging. Every
// node is annotated with its reference count. A node which has already been
// printed for a previous list ends the branch with a note about which list
// it is shared with.
func Dump[T any](lists ...List[T]) string {
	printer := tp.New()
	seen := make(map[*node[T]]int)
	for i, l := range lists {
		branch := printer.AddBranch(fmt.Sprintf("list #%d (len=%d)", i, l.Len()))
		for n := l.head; n != nil; n = n.next {
			if j, ok := seen[n]; ok {
				branch.AddNode(fmt.Sprintf("%v … shared with list #%d", n.elem, j))
				break
			}
			seen[n] = i
			branch.AddMetaNode(fmt.Sprintf("refs=%d", n.refs), n.elem)
		}
	}
	return printer.String()
}
