package wizard

import (
	"context"
	"fmt"
)

// WizardResult holds all the answers from the interactive wizard.
type WizardResult struct {
	// Models in the order the router should list them.
	Models       []string
	DefaultModel string
	Endpoint     string

	// AccessKeys maps a model name to its key. Models without a key are absent.
	AccessKeys map[string]string
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{AccessKeys: map[string]string{}}

	if err := runModelsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("models: %w", err)
	}

	if err := runDefaultModelGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("default model: %w", err)
	}

	if err := runEndpointGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}

	if err := runAccessKeysGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("access keys: %w", err)
	}

	return result, nil
}
