package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/routerctl/cmd/routerctl/handlers"
	"github.com/imamik/routerctl/internal/config"
)

// Init returns the command for interactively creating a provider configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "router.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a provider configuration",
		Long: `Interactively create a provider configuration file.

The wizard asks for:

  - Model names, in routing order
  - The default model
  - The upstream endpoint (optional)
  - An access key per model (optional)`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
