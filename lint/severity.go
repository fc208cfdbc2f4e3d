package lint

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity controls whether findings of a rule are reported and how
type Severity int

const (
	Off Severity = iota
	Warn
	Error
)

// String returns the configuration name of the severity
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity accepts "off", "warn", "warning", "error" and the numeric forms 0, 1, 2
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "off", "0":
		return Off, nil
	case "warn", "warning", "1":
		return Warn, nil
	case "error", "2":
		return Error, nil
	}
	return Off, fmt.Errorf("invalid severity: %q", value)
}

// MarshalYAML encodes the severity by name
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a severity from a name or a number
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: severity must be a scalar", node.Line)
	}
	severity, err := ParseSeverity(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = severity
	return nil
}

// MarshalText encodes the severity by name for text based encoders
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
