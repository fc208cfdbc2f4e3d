package lint

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ReportFunc surfaces a finding for node with the given message id
type ReportFunc func(node *sitter.Node, messageID string)

// Context is handed to a rule for a single file
type Context struct {
	Path     string
	Source   []byte
	rule     *Configured
	findings []*Finding
}

// NewContext creates a context for running rule over one file
func NewContext(path string, source []byte, rule *Configured) *Context {
	return &Context{Path: path, Source: source, rule: rule}
}

// RuleID returns the id of the rule the context belongs to
func (c *Context) RuleID() string {
	return c.rule.Rule.ID
}

// Text returns the source text of node
func (c *Context) Text(node *sitter.Node) string {
	return node.Content(c.Source)
}

// Report records a finding attached to node
func (c *Context) Report(node *sitter.Node, messageID string) {
	if node == nil {
		return
	}
	finding := NewFinding(c.Path, node)
	finding.Rule = c.rule.Rule.ID
	finding.MessageID = messageID
	finding.Message = c.rule.Rule.Message(messageID)
	finding.Severity = c.rule.Severity
	finding.Fingerprint = Fingerprint(finding, c.Source)
	c.findings = append(c.findings, finding)
}

// Findings returns the findings reported so far
func (c *Context) Findings() []*Finding {
	return c.findings
}
