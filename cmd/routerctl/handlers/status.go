package handlers

import (
	"context"

	"github.com/imamik/routerctl/internal/config"
	"github.com/imamik/routerctl/internal/status"
)

// Status prints the summary for the current mode and provider document
// without contacting the cluster.
func Status(_ context.Context, global GlobalOptions, configPath string, jsonOutput bool) error {
	if configPath == "" {
		configPath = config.DefaultConfigFilename
	}
	cfg, err := loadProviderConfig(configPath)
	if err != nil {
		return err
	}

	m := newModeStore(global.modeFilePath()).Get()
	return printSummary(status.New(m, cfg, global.Host), jsonOutput)
}
