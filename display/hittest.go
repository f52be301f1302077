package display

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/pinhole-web/pinhole/layout"
)

// FindNodeByPosition returns the innermost layout object whose
// rectangle contains (x, y), per spec §4.8: a pre-order DFS that
// prefers a match among a node's children, then among its siblings,
// falling back to the node itself only once neither yields a hit.
//
// Equivalently, over the FirstChild/NextSibling encoding of the tree,
// this is the node's left-right-root (postorder) position — computed
// here with an explicit two-stack work list rather than recursion.
func FindNodeByPosition(root *layout.Object, x, y int) *layout.Object {
	if root == nil {
		return nil
	}

	work := arraylist.New()
	order := arraylist.New()

	work.Add(root)
	for work.Size() > 0 {
		top, _ := work.Get(work.Size() - 1)
		work.Remove(work.Size() - 1)
		node := top.(*layout.Object)

		order.Add(node)
		if node.FirstChild != nil {
			work.Add(node.FirstChild)
		}
		if node.NextSibling != nil {
			work.Add(node.NextSibling)
		}
	}

	for i := order.Size() - 1; i >= 0; i-- {
		v, _ := order.Get(i)
		node := v.(*layout.Object)
		if contains(node, x, y) {
			return node
		}
	}
	return nil
}

func contains(node *layout.Object, x, y int) bool {
	return x >= node.Point.X && x < node.Point.X+node.Size.Width &&
		y >= node.Point.Y && y < node.Point.Y+node.Size.Height
}
