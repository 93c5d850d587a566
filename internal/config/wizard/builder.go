package wizard

import (
	"fmt"
	"strings"

	"github.com/imamik/routerctl/internal/config"
)

// BuildConfig creates a ProviderConfig from the wizard result.
func BuildConfig(result *WizardResult) (*config.ProviderConfig, error) {
	cfg := &config.ProviderConfig{
		DefaultModel: result.DefaultModel,
		Endpoint:     config.Endpoint{URL: strings.TrimSpace(result.Endpoint)},
	}

	for _, name := range result.Models {
		cfg.Models = append(cfg.Models, config.Model{
			Name:      name,
			AccessKey: result.AccessKeys[name],
		})
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wizard answers: %w", err)
	}
	return cfg, nil
}
