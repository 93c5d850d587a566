package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/routerctl/cmd/routerctl/handlers"
)

// Status returns the command that summarizes the current configuration.
func Status(global *handlers.GlobalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status [CONFIG]",
		Short: "Summarize the mode and provider configuration",
		Long: `Print the active mode, the configured models with the default marked,
the upstream endpoint and the URLs the appliance serves. The cluster is not
contacted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var configPath string
			if len(args) == 1 {
				configPath = args[0]
			}
			return handlers.Status(cmd.Context(), *global, configPath, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print output as JSON")

	return cmd
}
