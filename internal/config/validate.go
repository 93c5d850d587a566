package config

import (
	"errors"
	"fmt"
)

// Validation failures. Each is wrapped with the offending detail.
var (
	// ErrConfigNotFound is returned by Load when the document does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrNoModels means the document declares no providers.models entries.
	ErrNoModels = errors.New("no models declared under providers.models")

	// ErrInvalidModel covers empty and duplicate model names.
	ErrInvalidModel = errors.New("invalid model")

	// ErrUnknownDefaultModel means default_model names an undeclared model.
	ErrUnknownDefaultModel = errors.New("default_model is not a declared model")
)

// Validate checks the configuration and returns all problems found.
func (c *ProviderConfig) Validate() error {
	if len(c.Models) == 0 {
		return ErrNoModels
	}

	var errs []error
	seen := make(map[string]int, len(c.Models))
	for i, m := range c.Models {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%w: models[%d] has no name", ErrInvalidModel, i))
			continue
		}
		if first, dup := seen[m.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: models[%d] repeats name %q from models[%d]", ErrInvalidModel, i, m.Name, first))
			continue
		}
		seen[m.Name] = i
	}

	if c.DefaultModel != "" && !c.HasModel(c.DefaultModel) {
		errs = append(errs, fmt.Errorf("%w: %q (declared: %v)", ErrUnknownDefaultModel, c.DefaultModel, c.ModelNames()))
	}

	return errors.Join(errs...)
}
