package linter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/afs"
	"github.com/viant/shouldlint/config"
	"github.com/viant/shouldlint/lint"
	"github.com/viant/shouldlint/rules"
)

// Linter runs the configured rules over JavaScript and TypeScript sources
type Linter struct {
	fs       afs.Service
	registry *lint.Registry
	config   *config.Config
	logger   *log.Logger
	rules    []*lint.Configured
}

// New creates a Linter; every enabled rule is configured and validated once here
func New(opts ...Option) (*Linter, error) {
	l := &Linter{}
	for _, opt := range opts {
		opt(l)
	}
	if l.fs == nil {
		l.fs = afs.New()
	}
	if l.registry == nil {
		l.registry = rules.Default()
	}
	if l.config == nil {
		l.config = config.Default(l.registry)
	}
	if l.logger == nil {
		l.logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}
	if err := l.config.Validate(l.registry); err != nil {
		return nil, err
	}
	for _, id := range l.registry.IDs() {
		ruleConfig, ok := l.config.Rules[id]
		if !ok || ruleConfig.Severity == lint.Off {
			continue
		}
		configured, err := l.registry.Configure(id, ruleConfig.Severity, ruleConfig.Options)
		if err != nil {
			return nil, err
		}
		l.rules = append(l.rules, configured)
	}
	return l, nil
}

// Rules returns the enabled rules
func (l *Linter) Rules() []*lint.Configured {
	return l.rules
}

// LintSource lints src as the file at path; the extension selects the grammar
func (l *Linter) LintSource(ctx context.Context, path string, src []byte) ([]*lint.Finding, error) {
	language, err := lint.LanguageFor(path)
	if err != nil {
		return nil, err
	}
	tree, err := language.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	defer tree.Close()
	root := tree.RootNode()

	if errNode := lint.FirstError(root); errNode != nil {
		l.logger.Debug("syntax error", "path", path, "line", errNode.StartPoint().Row+1)
		return []*lint.Finding{parsingError(path, errNode, src)}, nil
	}

	contexts := make([]*lint.Context, 0, len(l.rules))
	visitors := make([]lint.Visitors, 0, len(l.rules))
	for _, rule := range l.rules {
		ruleContext := lint.NewContext(path, src, rule)
		contexts = append(contexts, ruleContext)
		visitors = append(visitors, rule.Checker(ruleContext))
	}
	lint.Dispatch(root, visitors...)

	disabled := parseDirectives(root, src)
	var findings []*lint.Finding
	for _, ruleContext := range contexts {
		for _, finding := range ruleContext.Findings() {
			if disabled.suppresses(finding) {
				continue
			}
			findings = append(findings, finding)
		}
	}
	lint.SortFindings(findings)
	l.logger.Debug("linted", "path", path, "language", language.Name, "findings", len(findings))
	return findings, nil
}

// parsingError creates the fatal finding reported instead of rule findings for unparsable files
func parsingError(path string, node *sitter.Node, src []byte) *lint.Finding {
	finding := lint.NewFinding(path, node)
	finding.Severity = lint.Error
	finding.Fatal = true
	if node.IsMissing() {
		finding.Message = fmt.Sprintf("Parsing error: missing %s", node.Type())
	} else {
		token := strings.TrimSpace(node.Content(src))
		if i := strings.IndexByte(token, '\n'); i != -1 {
			token = token[:i]
		}
		if len(token) > 20 {
			token = token[:20] + "..."
		}
		finding.Message = fmt.Sprintf("Parsing error: unexpected token %q", token)
	}
	finding.Fingerprint = lint.Fingerprint(finding, src)
	return finding
}
