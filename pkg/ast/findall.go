package ast

import "iter"

// FindAll returns a lazy, pre-order sequence of every node in the tree
// rooted at n for which pred returns true, including n itself. Because it
// is a range-over-func sequence, a consumer can stop the walk early
// (break out of the for/range) without the remaining tree being visited.
func FindAll(n Node, pred func(Node) bool) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if n == nil {
			return
		}
		var walk func(Node) bool
		walk = func(cur Node) bool {
			if pred(cur) {
				if !yield(cur) {
					return false
				}
			}
			for _, child := range Children(cur) {
				if !walk(child) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}
