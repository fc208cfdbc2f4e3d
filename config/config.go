package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/shouldlint/lint"
	"gopkg.in/yaml.v3"
)

// Filename is the name of the configuration file searched by Discover
const Filename = ".shouldlint.yaml"

// RuleConfig configures a single rule
type RuleConfig struct {
	Severity lint.Severity `yaml:"severity"`
	Options  lint.Options  `yaml:"options,omitempty"`
}

// inherit marks a rule entry that sets options only
const inherit lint.Severity = -1

// UnmarshalYAML accepts either a severity scalar (`error`) or a mapping with severity and options
func (r *RuleConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&r.Severity)
	}
	type plain RuleConfig
	decoded := plain{Severity: inherit}
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*r = RuleConfig(decoded)
	return nil
}

// Config controls which files are linted and with which rules
type Config struct {
	Include []string               `yaml:"include,omitempty"`
	Exclude []string               `yaml:"exclude,omitempty"`
	Rules   map[string]*RuleConfig `yaml:"rules,omitempty"`
}

// DefaultInclude matches every supported source file
var DefaultInclude = []string{"**/*.{js,jsx,mjs,cjs,ts,mts,cts,tsx}"}

// DefaultExclude skips dependency and build output directories
var DefaultExclude = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/coverage/**",
	"**/.git/**",
}

// Default returns a config enabling every rule of the registry at its recommended severity
func Default(registry *lint.Registry) *Config {
	cfg := &Config{
		Include: append([]string{}, DefaultInclude...),
		Exclude: append([]string{}, DefaultExclude...),
		Rules:   map[string]*RuleConfig{},
	}
	for _, id := range registry.IDs() {
		rule, _ := registry.Lookup(id)
		cfg.Rules[id] = &RuleConfig{Severity: rule.Meta.Docs.Recommended}
	}
	return cfg
}

// Parse decodes YAML data and merges it over base
func Parse(data []byte, base *Config) (*Config, error) {
	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return base.Merge(loaded), nil
}

// Load downloads the config at URL with fs and merges it over base
func Load(ctx context.Context, fs afs.Service, URL string, base *Config) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	cfg, err := Parse(data, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return cfg, nil
}

// Merge returns a copy of c overridden by other. Include and exclude lists are replaced when set,
// rules are merged per id.
func (c *Config) Merge(other *Config) *Config {
	result := &Config{
		Include: c.Include,
		Exclude: c.Exclude,
		Rules:   make(map[string]*RuleConfig, len(c.Rules)),
	}
	for id, rule := range c.Rules {
		clone := *rule
		result.Rules[id] = &clone
	}
	if other == nil {
		return result
	}
	if len(other.Include) > 0 {
		result.Include = other.Include
	}
	if len(other.Exclude) > 0 {
		result.Exclude = other.Exclude
	}
	for id, rule := range other.Rules {
		if rule == nil {
			continue
		}
		clone := *rule
		prev, ok := result.Rules[id]
		if clone.Options == nil && ok {
			clone.Options = prev.Options
		}
		if clone.Severity == inherit {
			clone.Severity = lint.Error
			if ok {
				clone.Severity = prev.Severity
			}
		}
		result.Rules[id] = &clone
	}
	return result
}

// Validate checks that every configured rule exists and every pattern is well formed
func (c *Config) Validate(registry *lint.Registry) error {
	for id := range c.Rules {
		if _, ok := registry.Lookup(id); !ok {
			return fmt.Errorf("%w: %s", lint.ErrUnknownRule, id)
		}
	}
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid pattern: %q", pattern)
		}
	}
	return nil
}

// Excluded reports whether path matches an exclude pattern
func (c *Config) Excluded(path string) bool {
	path = normalize(path)
	for _, pattern := range c.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
		// directories are matched by their own path too, e.g. "a/node_modules" for "**/node_modules/**"
		if strings.HasSuffix(pattern, "/**") {
			if matched, _ := doublestar.Match(strings.TrimSuffix(pattern, "/**"), path); matched {
				return true
			}
		}
	}
	return false
}

// Matches reports whether path is included and not excluded
func (c *Config) Matches(path string) bool {
	if c.Excluded(path) {
		return false
	}
	path = normalize(path)
	for _, pattern := range c.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "/")
}
