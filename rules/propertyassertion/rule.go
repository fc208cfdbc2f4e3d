// Package propertyassertion implements the no-property-assertions rule which flags should.js
// assertion chains that are read but never called, e.g. `x.should.be.ok;`.
package propertyassertion

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/shouldlint/lint"
)

const (
	// ID of the rule
	ID = "no-property-assertions"
	// PropertyAssertionError is the only message the rule reports
	PropertyAssertionError = "propertyAssertionError"

	// Property is the assertion trigger recognised on member access regardless of configuration
	Property = "should"

	message = "Should-js assertions should be methods."
	schema  = `{
  "type": "object",
  "properties": {
    "name": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`
)

// Options configures the rule
type Options struct {
	// Name lists the identifiers that start an assertion when called, e.g. should(x)
	Name []string `json:"name"`
}

// Rule returns the rule descriptor
func Rule() *lint.Rule {
	return &lint.Rule{
		ID: ID,
		Meta: lint.Meta{
			Docs: lint.Docs{
				Description:          message,
				Recommended:          lint.Error,
				RequiresTypeChecking: false,
			},
			Messages: map[string]string{
				PropertyAssertionError: message,
			},
			Schema:         schema,
			HasSuggestions: false,
			Type:           lint.Problem,
		},
		DefaultOptions: lint.Options{"name": []string{Property}},
		New:            New,
	}
}

// New decodes options merged over the rule defaults and returns the rule checker
func New(options lint.Options) (lint.Checker, error) {
	opts := &Options{}
	if err := options.Decode(opts); err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(opts.Name))
	for _, name := range opts.Name {
		names[name] = true
	}
	return func(ctx *lint.Context) lint.Visitors {
		return lint.Visitors{
			lint.PropertyAccess: func(node *sitter.Node) {
				if isTriggerProperty(ctx, node) {
					Classify(node.Parent(), ctx.Report)
				}
			},
			lint.Call: func(node *sitter.Node) {
				if isTriggerCall(ctx, node, names) {
					Classify(node.Parent(), ctx.Report)
				}
			},
		}
	}, nil
}

// isTriggerProperty matches `<object>.should`; computed and private members never match
func isTriggerProperty(ctx *lint.Context, node *sitter.Node) bool {
	property := node.ChildByFieldName("property")
	if property == nil || property.Type() != "property_identifier" {
		return false
	}
	return ctx.Text(property) == Property
}

// isTriggerCall matches `name(...)` where name is a bare identifier in names
func isTriggerCall(ctx *lint.Context, node *sitter.Node, names map[string]bool) bool {
	callee := node.ChildByFieldName("function")
	if lint.KindOf(callee) != lint.Identifier {
		return false
	}
	return names[ctx.Text(callee)]
}
