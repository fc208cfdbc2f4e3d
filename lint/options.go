package lint

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options holds the configuration object of a rule
type Options map[string]interface{}

// Merge returns defaults overridden by the top-level keys of overrides
func Merge(defaults, overrides Options) Options {
	result := make(Options, len(defaults)+len(overrides))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range overrides {
		result[k] = v
	}
	return result
}

// normalize converts options into plain JSON values (maps, slices, float64, string, bool)
func (o Options) normalize() (interface{}, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}
	var value interface{}
	if err = json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	if value == nil {
		value = map[string]interface{}{}
	}
	return value, nil
}

// Decode copies options into target using its json tags
func (o Options) Decode(target interface{}) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	if err = json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode options: %w", err)
	}
	return nil
}

// compileSchema compiles a rule options schema, nil when the rule declares none
func compileSchema(ruleID, schema string) (*jsonschema.Schema, error) {
	if strings.TrimSpace(schema) == "" {
		return nil, nil
	}
	location := ruleID + ".schema.json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(location, strings.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("invalid schema of rule %s: %w", ruleID, err)
	}
	compiled, err := compiler.Compile(location)
	if err != nil {
		return nil, fmt.Errorf("invalid schema of rule %s: %w", ruleID, err)
	}
	return compiled, nil
}

func validateOptions(ruleID string, schema *jsonschema.Schema, options Options) error {
	if schema == nil {
		return nil
	}
	value, err := options.normalize()
	if err != nil {
		return fmt.Errorf("rule %s: %w", ruleID, err)
	}
	if err = schema.Validate(value); err != nil {
		return fmt.Errorf("invalid options of rule %s: %w", ruleID, err)
	}
	return nil
}
