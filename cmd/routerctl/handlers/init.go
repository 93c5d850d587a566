package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/routerctl/internal/apperr"
	"github.com/imamik/routerctl/internal/config"
)

// Init runs the configuration wizard and writes the result to outputPath.
func Init(ctx context.Context, outputPath string) error {
	if wizardFileExists(outputPath) {
		overwrite, err := wizardConfirmOverwrite(outputPath)
		if err != nil {
			return apperr.UserInput(fmt.Errorf("failed to read confirmation: %w", err))
		}
		if !overwrite {
			fmt.Fprintln(stdout, "Aborted. Existing configuration left unchanged.")
			return nil
		}
	}

	printWelcome()

	result, err := wizardRunWizard(ctx)
	if err != nil {
		return apperr.UserInput(fmt.Errorf("wizard canceled: %w", err))
	}

	cfg, err := wizardBuildConfig(result)
	if err != nil {
		return apperr.UserInput(err)
	}

	if err := wizardWriteConfig(cfg, outputPath); err != nil {
		return apperr.UserInput(fmt.Errorf("failed to write config: %w", err))
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "routerctl - LLM router appliance")
	fmt.Fprintln(stdout, "================================")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "This wizard creates the provider configuration the router is rendered from.")
	fmt.Fprintln(stdout)
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.ProviderConfig) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Configuration saved!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File: %s\n", outputPath)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Provider Summary")
	fmt.Fprintln(stdout, "----------------")
	fmt.Fprintf(stdout, "  Models:         %d\n", len(cfg.Models))
	if cfg.HasDefault() {
		fmt.Fprintf(stdout, "  Default model:  %s\n", cfg.DefaultModel)
	}
	fmt.Fprintf(stdout, "  Access keys:    %d\n", len(cfg.AccessKeys()))
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Next Steps")
	fmt.Fprintln(stdout, "----------")
	fmt.Fprintln(stdout, "  1. Choose a deployment mode:")
	fmt.Fprintln(stdout, "     routerctl mode full   # or: routerctl mode slim")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  2. Apply the configuration:")
	fmt.Fprintf(stdout, "     routerctl configure %s\n", outputPath)
	fmt.Fprintln(stdout)
}
