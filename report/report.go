package report

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/viant/shouldlint/lint"
	"gopkg.in/yaml.v3"
)

// Formatter writes findings to an output
type Formatter interface {
	Format(w io.Writer, findings []*lint.Finding) error
}

// Summary counts findings by severity
type Summary struct {
	Errors   int `yaml:"errors" json:"errors"`
	Warnings int `yaml:"warnings" json:"warnings"`
	Fatal    int `yaml:"fatal" json:"fatal"`
}

// Summarize counts findings
func Summarize(findings []*lint.Finding) Summary {
	var summary Summary
	for _, finding := range findings {
		if finding.Fatal {
			summary.Fatal++
		}
		switch finding.Severity {
		case lint.Error:
			summary.Errors++
		case lint.Warn:
			summary.Warnings++
		}
	}
	return summary
}

// Total returns the number of findings
func (s Summary) Total() int {
	return s.Errors + s.Warnings
}

// New returns the formatter registered under format
func New(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &Text{}, nil
	case "yaml", "yml":
		return &YAML{}, nil
	case "json":
		return &JSON{}, nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// Text writes one finding per line followed by a summary
type Text struct{}

func (f *Text) Format(w io.Writer, findings []*lint.Finding) error {
	for _, finding := range findings {
		rule := finding.Rule
		if rule == "" {
			rule = "fatal"
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s (%s)\n", finding.Path, finding.Start.Line, finding.Start.Column,
			finding.Severity, finding.Message, rule); err != nil {
			return err
		}
	}
	summary := Summarize(findings)
	if summary.Total() == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%d %s (%d %s, %d %s)\n",
		summary.Total(), plural(summary.Total(), "problem"),
		summary.Errors, plural(summary.Errors, "error"),
		summary.Warnings, plural(summary.Warnings, "warning"))
	return err
}

func plural(count int, noun string) string {
	if count == 1 {
		return noun
	}
	return noun + "s"
}

type document struct {
	Findings []*lint.Finding `yaml:"findings" json:"findings"`
	Summary  Summary         `yaml:"summary" json:"summary"`
}

func newDocument(findings []*lint.Finding) *document {
	if findings == nil {
		findings = []*lint.Finding{}
	}
	return &document{Findings: findings, Summary: Summarize(findings)}
}

// YAML writes findings and summary as a YAML document
type YAML struct{}

func (f *YAML) Format(w io.Writer, findings []*lint.Finding) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newDocument(findings)); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	return encoder.Close()
}

// JSON writes findings and summary as an indented JSON document
type JSON struct{}

func (f *JSON) Format(w io.Writer, findings []*lint.Finding) error {
	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(newDocument(findings)); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	return nil
}
