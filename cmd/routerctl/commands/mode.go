package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/routerctl/cmd/routerctl/handlers"
)

// Mode returns the command that reads or sets the deployment mode.
func Mode(global *handlers.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "mode [full|slim]",
		Short:     "Select the deployment mode",
		ValidArgs: []string{"full", "slim"},
		Long: `Select the deployment mode written to the mode selector.

  full  router, LiteLLM, Prometheus and Grafana
  slim  router with an Envoy sidecar talking to the upstream directly

Without an argument the current mode is printed and the command exits 1.
Run 'routerctl configure' afterwards to apply the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Mode(cmd.Context(), *global, args, cmd.UsageString())
		},
	}
	return cmd
}
