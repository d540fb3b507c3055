package parser

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YamlManifestParser implements ManifestParser for YAML.
type YamlManifestParser struct{}

// NewYamlManifestParser creates a new YamlManifestParser.
func NewYamlManifestParser() ManifestParser {
	return &YamlManifestParser{}
}

// Parse validates and unmarshals YAML bytes into a Manifest.
func (p *YamlManifestParser) Parse(data []byte) (*Manifest, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	// The validator expects JSON-decoded values, so round-trip the generic
	// document through JSON before validating.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest document: %w", err)
	}
	var jsonDoc any
	if err := json.Unmarshal(raw, &jsonDoc); err != nil {
		return nil, err
	}
	if err := validateDocument(jsonDoc); err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
