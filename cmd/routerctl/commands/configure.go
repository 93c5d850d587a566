package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/routerctl/cmd/routerctl/handlers"
	"github.com/imamik/routerctl/internal/config"
)

// Configure returns the command that runs one reconcile pass.
//
// Flags:
//
//	--endpoint, --api-key, --primary-model, --secondary-model: build the
//	  provider configuration from flags instead of a file
//	--dry-run: print the planned objects without contacting the cluster
//	--json: print the result as JSON
//	--metrics-textfile: write pass metrics for the node-exporter textfile collector
func Configure(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.ConfigureOptions

	cmd := &cobra.Command{
		Use:   "configure [CONFIG]",
		Short: "Apply the provider configuration to the cluster",
		Long: `Render the provider configuration for the current mode and apply it.

The configuration is read from CONFIG (default ./` + config.DefaultConfigFilename + `), or built
from --endpoint, --api-key, --primary-model and --secondary-model. The
positional path and the flags cannot be combined.

A pass ensures the llm-router namespace, applies router-config, envoy-config
(slim), litellm-credentials (when any access key is set) and
grafana-dashboard (full, when the asset exists), then restarts the router
Deployments. Re-running with the same input changes nothing.`,
		Example: `  routerctl configure
  routerctl configure /etc/routerctl/router.yaml
  routerctl configure --endpoint https://api.example.com --api-key sk-... \
    --primary-model gpt-4o --secondary-model gpt-4o-mini
  routerctl configure --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.ConfigPath = args[0]
			}
			return handlers.Configure(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Overrides.Endpoint, "endpoint", "", "Upstream endpoint URL")
	cmd.Flags().StringVar(&opts.Overrides.APIKey, "api-key", "", "Access key for the primary model")
	cmd.Flags().StringVar(&opts.Overrides.PrimaryModel, "primary-model", "", "Primary (default) model name")
	cmd.Flags().StringVar(&opts.Overrides.SecondaryModel, "secondary-model", "", "Secondary model name")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the planned objects without applying them")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print output as JSON")
	cmd.Flags().StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write pass metrics to this .prom file")

	return cmd
}
