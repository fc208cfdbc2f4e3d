package lint

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// Position is a 1-based line and column; columns count bytes
type Position struct {
	Line   int `yaml:"line" json:"line"`
	Column int `yaml:"column" json:"column"`
}

// Finding represents a problem reported in some source file
type Finding struct {
	Rule        string   `yaml:"rule,omitempty" json:"rule,omitempty"`
	MessageID   string   `yaml:"messageId,omitempty" json:"messageId,omitempty"`
	Message     string   `yaml:"message" json:"message"`
	Severity    Severity `yaml:"severity" json:"severity"`
	Fatal       bool     `yaml:"fatal,omitempty" json:"fatal,omitempty"`
	Path        string   `yaml:"path" json:"path"`
	Start       Position `yaml:"start" json:"start"`
	End         Position `yaml:"end" json:"end"`
	Offset      int      `yaml:"offset" json:"offset"`
	EndOffset   int      `yaml:"endOffset" json:"endOffset"`
	Fingerprint string   `yaml:"fingerprint,omitempty" json:"fingerprint,omitempty"`
}

// NewFinding creates a finding spanning node
func NewFinding(path string, node *sitter.Node) *Finding {
	start, end := node.StartPoint(), node.EndPoint()
	return &Finding{
		Path:      path,
		Start:     Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:       Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
		Offset:    int(node.StartByte()),
		EndOffset: int(node.EndByte()),
	}
}

// SortFindings orders findings by path, position and rule
func SortFindings(findings []*Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		if a.Start.Column != b.Start.Column {
			return a.Start.Column < b.Start.Column
		}
		return a.Rule < b.Rule
	})
}
