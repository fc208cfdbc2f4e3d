package lint

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrUnknownRule is returned when a rule id is not registered
var ErrUnknownRule = errors.New("unknown rule")

// Configured is a rule bound to a severity and validated options
type Configured struct {
	Rule     *Rule
	Severity Severity
	Options  Options
	Checker  Checker
}

// Registry holds the set of known rules
type Registry struct {
	mux     sync.RWMutex
	rules   map[string]*Rule
	schemas map[string]*jsonschema.Schema
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		rules:   make(map[string]*Rule),
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// Register adds a rule; its schema is compiled once here
func (r *Registry) Register(rule *Rule) error {
	if rule == nil || rule.ID == "" {
		return errors.New("rule id was empty")
	}
	if rule.New == nil {
		return fmt.Errorf("rule %s has no factory", rule.ID)
	}
	schema, err := compileSchema(rule.ID, rule.Meta.Schema)
	if err != nil {
		return err
	}
	if err = validateOptions(rule.ID, schema, rule.DefaultOptions); err != nil {
		return fmt.Errorf("default options: %w", err)
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.rules[rule.ID]; ok {
		return fmt.Errorf("rule %s already registered", rule.ID)
	}
	r.rules[rule.ID] = rule
	r.schemas[rule.ID] = schema
	return nil
}

// Lookup returns the rule registered under id
func (r *Registry) Lookup(id string) (*Rule, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// IDs returns all registered rule ids in sorted order
func (r *Registry) IDs() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ids := make([]string, 0, len(r.rules))
	for id := range r.rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Configure merges options over the rule defaults, validates them against the rule schema
// and builds the rule checker.
func (r *Registry) Configure(id string, severity Severity, options Options) (*Configured, error) {
	r.mux.RLock()
	rule, ok := r.rules[id]
	schema := r.schemas[id]
	r.mux.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, id)
	}
	merged := Merge(rule.DefaultOptions, options)
	if err := validateOptions(id, schema, merged); err != nil {
		return nil, err
	}
	checker, err := rule.New(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to configure rule %s: %w", id, err)
	}
	return &Configured{Rule: rule, Severity: severity, Options: merged, Checker: checker}, nil
}
