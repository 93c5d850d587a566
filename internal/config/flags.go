package config

import (
	"fmt"

	"github.com/imamik/routerctl/internal/apperr"
)

// Overrides are the scalar values accepted by the flag-based invocation.
type Overrides struct {
	Endpoint       string
	APIKey         string
	PrimaryModel   string
	SecondaryModel string
}

// IsSet reports whether any override was given.
func (o Overrides) IsSet() bool {
	return o.Endpoint != "" || o.APIKey != "" || o.PrimaryModel != "" || o.SecondaryModel != ""
}

// FromOverrides assembles a ProviderConfig from flag values. Both models use
// the shared endpoint; the credential is attached to the primary model, which
// is also the default.
func FromOverrides(o Overrides) (*ProviderConfig, error) {
	cfg := &ProviderConfig{
		Endpoint:     Endpoint{URL: o.Endpoint},
		DefaultModel: o.PrimaryModel,
		Models: []Model{
			{Name: o.PrimaryModel, AccessKey: o.APIKey},
			{Name: o.SecondaryModel},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperr.UserInput(fmt.Errorf("invalid flag values: %w", err))
	}

	raw, err := Marshal(cfg)
	if err != nil {
		return nil, apperr.ConfigParse(err)
	}
	cfg.Raw = raw
	return cfg, nil
}
