// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"io"
	"os"
	"path/filepath"

	"github.com/imamik/routerctl/internal/config"
	"github.com/imamik/routerctl/internal/config/wizard"
	"github.com/imamik/routerctl/internal/k8sclient"
	"github.com/imamik/routerctl/internal/mode"
	"github.com/imamik/routerctl/internal/status"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	Kubeconfig   string
	ModeFile     string
	TemplatesDir string
	Dashboard    string
	Host         string
	Verbose      bool
}

// modeStore is the subset of mode.Store the handlers use.
type modeStore interface {
	Get() mode.Mode
	Set(m mode.Mode) error
	Path() string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newModeStore opens the mode selector at path.
	newModeStore = func(path string) modeStore {
		return mode.NewStore(path)
	}

	// loadProviderConfig reads and validates a provider document.
	loadProviderConfig = config.Load

	// newClusterClient connects to the cluster described by a kubeconfig file.
	newClusterClient = k8sclient.NewFromKubeconfigFile

	// isTerminal reports whether styled output should be used.
	isTerminal = status.IsTerminal

	// stdout receives all command output.
	stdout io.Writer = os.Stdout

	// Wizard steps used by init.
	wizardFileExists       = wizard.FileExists
	wizardConfirmOverwrite = wizard.ConfirmOverwrite
	wizardRunWizard        = wizard.RunWizard
	wizardBuildConfig      = wizard.BuildConfig
	wizardWriteConfig      = wizard.WriteConfig
)

// kubeconfigPath resolves --kubeconfig, then $KUBECONFIG, then the k3s default.
// Only the first entry of a $KUBECONFIG list is used.
func (g GlobalOptions) kubeconfigPath() string {
	if g.Kubeconfig != "" {
		return g.Kubeconfig
	}
	if env := os.Getenv(config.EnvKubeconfig); env != "" {
		return filepath.SplitList(env)[0]
	}
	return config.DefaultKubeconfig
}

// modeFilePath resolves --mode-file, then $ROUTERCTL_MODE_FILE, then the default.
func (g GlobalOptions) modeFilePath() string {
	if g.ModeFile != "" {
		return g.ModeFile
	}
	if env := os.Getenv(config.EnvModeFile); env != "" {
		return env
	}
	return config.DefaultModeFile
}
