package wizard

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
)

// runModelsGroup prompts for the comma-separated model list.
func runModelsGroup(ctx context.Context, result *WizardResult) error {
	var modelsInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model Names").
				Description("Comma-separated, in routing order").
				Placeholder("gpt-4o, gpt-4o-mini").
				Value(&modelsInput).
				Validate(validateModels),
		).Title("Models"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.Models = parseModels(modelsInput)
	return nil
}

// runDefaultModelGroup prompts for the default model. A single model is
// selected without asking.
func runDefaultModelGroup(ctx context.Context, result *WizardResult) error {
	if len(result.Models) == 0 {
		return errModelsRequired
	}
	result.DefaultModel = result.Models[0]
	if len(result.Models) == 1 {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default Model").
				Description("Used when a request does not name a model").
				Options(huh.NewOptions(result.Models...)...).
				Value(&result.DefaultModel),
		).Title("Default Model"),
	).RunWithContext(ctx)
}

// runEndpointGroup prompts for the upstream endpoint (optional).
func runEndpointGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Upstream Endpoint (Optional)").
				Description("OpenAI-compatible API base URL. Leave empty for the default upstream.").
				Placeholder("https://api.openai.com/v1").
				Value(&result.Endpoint).
				Validate(validateEndpoint),
		).Title("Upstream"),
	).RunWithContext(ctx)
}

// runAccessKeysGroup prompts for one optional key per model.
func runAccessKeysGroup(ctx context.Context, result *WizardResult) error {
	keys := make([]string, len(result.Models))
	fields := make([]huh.Field, 0, len(result.Models))
	for i, name := range result.Models {
		fields = append(fields, huh.NewInput().
			Title(name).
			Description("Leave empty if this model needs no key").
			EchoMode(huh.EchoModePassword).
			Value(&keys[i]))
	}

	err := huh.NewForm(
		huh.NewGroup(fields...).Title("Access Keys"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	for i, name := range result.Models {
		if k := strings.TrimSpace(keys[i]); k != "" {
			result.AccessKeys[name] = k
		}
	}
	return nil
}

func parseModels(input string) []string {
	var models []string
	for _, part := range strings.Split(input, ",") {
		if name := strings.TrimSpace(part); name != "" {
			models = append(models, name)
		}
	}
	return models
}

func validateModels(input string) error {
	models := parseModels(input)
	if len(models) == 0 {
		return errModelsRequired
	}
	for i, name := range models {
		if strings.ContainsAny(name, " \t") {
			return errModelNameInvalid
		}
		if slices.Contains(models[:i], name) {
			return errModelDuplicate
		}
	}
	return nil
}

func validateEndpoint(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if !strings.Contains(input, "://") {
		input = "https://" + input
	}
	u, err := url.Parse(input)
	if err != nil || u.Hostname() == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errEndpointInvalid
	}
	return nil
}
