// Package config reads parameter override files.
//
// An override file is a YAML mapping from exact parameter names to values:
//
//	"Lithium plating kinetic rate constant [m.s-1]": 2.0e-9
//	"Separator porosity": 0.45
//	citations: [Mine2026]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrOverrideValue = errors.New("override values must be numbers, strings or lists of strings")

// LoadOverrides reads an override file.
func LoadOverrides(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides: %w", err)
	}
	out, err := ParseOverrides(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// ParseOverrides decodes overrides from r. An empty document yields an empty map.
func ParseOverrides(r io.Reader) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing overrides: %w", err)
	}

	out := make(map[string]any, len(raw))
	for key, value := range raw {
		v, err := normalize(value)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}

func normalize(value any) (any, error) {
	switch x := value.(type) {
	case int:
		return float64(x), nil
	case float64, string:
		return x, nil
	case []any:
		list := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, ErrOverrideValue
			}
			list = append(list, s)
		}
		return list, nil
	}
	return nil, ErrOverrideValue
}
