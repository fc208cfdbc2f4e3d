package propertyassertion

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/shouldlint/lint"
)

// Classify walks up from start, the node directly following an assertion trigger.
// A call means the assertion is invoked; an expression statement reached without a call
// means a bare property access, reported once on that statement. Member accesses, computed
// or not, continue the chain; any other container ends the walk silently.
func Classify(start *sitter.Node, report lint.ReportFunc) {
	for node := start; node != nil; node = node.Parent() {
		switch lint.KindOf(node) {
		case lint.Call:
			return
		case lint.ExpressionStatement:
			report(node, PropertyAssertionError)
			return
		case lint.PropertyAccess, lint.ComputedAccess, lint.Parenthesized:
			continue
		default:
			return
		}
	}
}
