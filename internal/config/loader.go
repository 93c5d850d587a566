package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imamik/routerctl/internal/apperr"
)

// document is the on-disk schema. Only the providers section is interpreted;
// any other top-level keys are carried through Raw untouched.
type document struct {
	Providers *providers `yaml:"providers"`
}

type providers struct {
	DefaultModel string   `yaml:"default_model,omitempty"`
	Endpoint     Endpoint `yaml:"endpoint,omitempty"`
	Models       []Model  `yaml:"models"`
}

// Load reads, parses and validates the provider document at path.
func Load(path string) (*ProviderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.UserInput(fmt.Errorf("%w: %s", ErrConfigNotFound, path))
		}
		return nil, apperr.UserInput(fmt.Errorf("failed to read config file: %w", err))
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, apperr.ConfigParse(fmt.Errorf("%s: %w", path, err))
	}
	return cfg, nil
}

// LoadFromBytes parses and validates a provider document.
func LoadFromBytes(data []byte) (*ProviderConfig, error) {
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parse decodes data into a ProviderConfig without validating it.
func parse(data []byte) (*ProviderConfig, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := &ProviderConfig{Raw: bytes.Clone(data)}
	if doc.Providers == nil {
		return cfg, nil
	}

	cfg.DefaultModel = doc.Providers.DefaultModel
	cfg.Endpoint = doc.Providers.Endpoint
	cfg.Models = doc.Providers.Models
	return cfg, nil
}

// Marshal renders cfg as a provider document. It is used when the
// configuration was assembled from flags rather than read from disk.
func Marshal(cfg *ProviderConfig) ([]byte, error) {
	doc := document{Providers: &providers{
		DefaultModel: cfg.DefaultModel,
		Endpoint:     cfg.Endpoint,
		Models:       cfg.Models,
	}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal provider config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal provider config: %w", err)
	}
	return buf.Bytes(), nil
}
