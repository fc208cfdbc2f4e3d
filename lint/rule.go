package lint

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Type classifies what a rule reports
type Type string

const (
	Problem    Type = "problem"
	Suggestion Type = "suggestion"
	Layout     Type = "layout"
)

// Docs describes a rule for users and tooling
type Docs struct {
	Description          string   `yaml:"description" json:"description"`
	Recommended          Severity `yaml:"recommended" json:"recommended"`
	RequiresTypeChecking bool     `yaml:"requiresTypeChecking" json:"requiresTypeChecking"`
}

// Meta is the static descriptor of a rule
type Meta struct {
	Docs           Docs              `yaml:"docs" json:"docs"`
	Messages       map[string]string `yaml:"messages" json:"messages"` // message id -> text
	Schema         string            `yaml:"schema,omitempty" json:"schema,omitempty"` // JSON schema of the options object
	HasSuggestions bool              `yaml:"hasSuggestions" json:"hasSuggestions"`
	Type           Type              `yaml:"type" json:"type"`
}

// VisitFn is invoked by the engine for every node of the registered kind
type VisitFn func(node *sitter.Node)

// Visitors maps node kinds to the callbacks a rule registers for one file
type Visitors map[Kind]VisitFn

// Checker produces the visitors of a configured rule for one file
type Checker func(ctx *Context) Visitors

// Factory builds a checker from options that already passed the rule schema
type Factory func(options Options) (Checker, error)

// Rule couples a descriptor with the factory creating its checkers
type Rule struct {
	ID             string
	Meta           Meta
	DefaultOptions Options
	New            Factory
}

// Message returns the text of messageID, or the id itself when unknown
func (r *Rule) Message(messageID string) string {
	if text, ok := r.Meta.Messages[messageID]; ok {
		return text
	}
	return messageID
}
