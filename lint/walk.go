package lint

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Walk visits n and its named descendants in document order
func Walk(n *sitter.Node, visit func(n *sitter.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		Walk(n.NamedChild(i), visit)
	}
}

// Dispatch walks root once and calls, for every node, the callback each visitor set
// registered for the node kind.
func Dispatch(root *sitter.Node, visitors ...Visitors) {
	Walk(root, func(n *sitter.Node) {
		kind := KindOf(n)
		if kind == Other {
			return
		}
		for _, set := range visitors {
			if fn, ok := set[kind]; ok && fn != nil {
				fn(n)
			}
		}
	})
}
