// Package rules registers the built-in rule set
package rules

import (
	"github.com/viant/shouldlint/lint"
	"github.com/viant/shouldlint/rules/propertyassertion"
)

// All returns descriptors of all built-in rules
func All() []*lint.Rule {
	return []*lint.Rule{
		propertyassertion.Rule(),
	}
}

// Default returns a registry holding all built-in rules
func Default() *lint.Registry {
	registry := lint.NewRegistry()
	for _, rule := range All() {
		if err := registry.Register(rule); err != nil {
			panic(err)
		}
	}
	return registry
}
