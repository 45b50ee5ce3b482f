package compiler

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML schema document.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	var doc Document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}

	if len(doc.Types) == 0 {
		return nil, fmt.Errorf("schema document declares no types")
	}
	for _, msg := range doc.Messages {
		if _, ok := doc.Types[msg]; !ok {
			return nil, fmt.Errorf("message %q is not a declared type", msg)
		}
	}

	return &doc, nil
}

// ParseFile reads and decodes a YAML schema document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema document: %w", err)
	}
	return Parse(data)
}
