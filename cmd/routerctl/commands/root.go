// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in
// the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/routerctl/cmd/routerctl/handlers"
	"github.com/imamik/routerctl/internal/config"
)

// Root returns the root command for the routerctl CLI.
//
// Persistent flags are shared by every subcommand. The logger is built
// before any subcommand runs and travels in the command context.
func Root() *cobra.Command {
	var global handlers.GlobalOptions

	cmd := &cobra.Command{
		Use:   "routerctl",
		Short: "Configure the LLM router appliance",
		Long: `routerctl renders the provider configuration for the selected deployment
mode into ConfigMaps and Secrets on the appliance's k3s control plane and
restarts the router workloads. Every run is one idempotent pass.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(handlers.WithLogger(cmd.Context(), global.Verbose))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&global.Kubeconfig, "kubeconfig", "",
		"Path to the kubeconfig (default $"+config.EnvKubeconfig+", then "+config.DefaultKubeconfig+")")
	flags.StringVar(&global.ModeFile, "mode-file", "",
		"Path to the mode selector (default $"+config.EnvModeFile+", then "+config.DefaultModeFile+")")
	flags.StringVar(&global.TemplatesDir, "templates-dir", "", "Directory overriding the built-in templates, laid out as <mode>/<file>")
	flags.StringVar(&global.Dashboard, "dashboard", config.DefaultDashboardPath, "Grafana dashboard asset applied in full mode when present")
	flags.StringVar(&global.Host, "host", "", "Host name or IP used in the printed URLs (default localhost)")
	flags.BoolVarP(&global.Verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(Configure(&global))
	cmd.AddCommand(Mode(&global))
	cmd.AddCommand(Status(&global))
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
