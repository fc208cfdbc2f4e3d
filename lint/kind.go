package lint

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Kind identifies the syntactic role of a node as seen by rules
type Kind string

// Node kinds rules can register visitors for. Values are tree-sitter node types.
const (
	PropertyAccess      Kind = "member_expression"
	Call                Kind = "call_expression"
	ExpressionStatement Kind = "expression_statement"
	Identifier          Kind = "identifier"
	Parenthesized       Kind = "parenthesized_expression"
	ComputedAccess      Kind = "subscript_expression"
	Other               Kind = ""
)

// KindOf returns the kind of n, Other for nil or unrecognised nodes
func KindOf(n *sitter.Node) Kind {
	if n == nil {
		return Other
	}
	switch kind := Kind(n.Type()); kind {
	case PropertyAccess, ComputedAccess, ExpressionStatement, Identifier, Parenthesized:
		return kind
	case Call:
		// tagged templates share the call_expression node type
		if args := n.ChildByFieldName("arguments"); args == nil || args.Type() != "arguments" {
			return Other
		}
		return kind
	}
	return Other
}
