package policy

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File represents the root of a YAML policy file. Absent options take
// the documented defaults; only Replacements of Lookup form can be
// expressed here.
type File struct {
	// Version of the policy schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// RemoveUnderscore suppresses underscore-prefixed failures.
	// Default: true.
	RemoveUnderscore *bool `yaml:"remove_underscore,omitempty"`

	// RemoveBenignErrors suppresses the benign untranslatable set.
	// Default: true.
	RemoveBenignErrors *bool `yaml:"remove_benign_errors,omitempty"`

	// Replacements maps declaration names to replacement text.
	Replacements map[string]ReplacementValue `yaml:"replacements,omitempty"`

	// Benign overrides the default benign suppression set.
	Benign []string `yaml:"benign,omitempty"`
}

// ReplacementValue accepts either a single string or a list of strings
// (joined space-separated on coercion).
type ReplacementValue struct {
	value any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *ReplacementValue) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		r.value = single
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		r.value = multi
		return nil
	}

	return errors.New("expected string or list of strings for replacement")
}

// MarshalYAML implements yaml.Marshaler.
func (r ReplacementValue) MarshalYAML() (any, error) {
	return r.value, nil
}

// Value returns the raw decision value (string or []string).
func (r ReplacementValue) Value() any {
	return r.value
}

// LoadFile loads and parses a YAML policy file from the given path.
func LoadFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Policy, applying defaults for absent
// options.
func Parse(data []byte) (Policy, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy YAML: %w", err)
	}

	return f.Policy(), nil
}

// Policy converts the file form into the evaluated Policy.
func (f File) Policy() Policy {
	p := Default()

	if f.RemoveUnderscore != nil {
		p.RemoveUnderscore = *f.RemoveUnderscore
	}

	if f.RemoveBenignErrors != nil {
		p.RemoveBenignErrors = *f.RemoveBenignErrors
	}

	if len(f.Replacements) > 0 {
		m := make(Lookup, len(f.Replacements))
		for name, v := range f.Replacements {
			m[name] = v.Value()
		}

		p.Replacements = m
	}

	if f.Benign != nil {
		benign := make(map[string]struct{}, len(f.Benign))
		for _, name := range f.Benign {
			benign[name] = struct{}{}
		}

		p.Benign = benign
	}

	return p
}
