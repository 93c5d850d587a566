package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/routerctl/internal/apperr"
	"github.com/imamik/routerctl/internal/config"
	"github.com/imamik/routerctl/internal/config/wizard"
)

func TestInit_WritesConfig(t *testing.T) {
	out := saveAndRestoreFactories(t)

	wizardFileExists = func(string) bool { return false }
	wizardRunWizard = func(context.Context) (*wizard.WizardResult, error) {
		return &wizard.WizardResult{
			Models:       []string{"coder", "general"},
			DefaultModel: "general",
			AccessKeys:   map[string]string{"coder": "sk-1"},
		}, nil
	}
	var written *config.ProviderConfig
	wizardWriteConfig = func(cfg *config.ProviderConfig, path string) error {
		written = cfg
		assert.Equal(t, "router.yaml", path)
		return nil
	}

	require.NoError(t, Init(context.Background(), "router.yaml"))
	require.NotNil(t, written)
	assert.Equal(t, []string{"coder", "general"}, written.ModelNames())
	assert.Contains(t, out.String(), "Configuration saved!")
	assert.Contains(t, out.String(), "Default model:  general")
	assert.Contains(t, out.String(), "routerctl configure router.yaml")
}

func TestInit_DeclineOverwrite(t *testing.T) {
	out := saveAndRestoreFactories(t)

	wizardFileExists = func(string) bool { return true }
	wizardConfirmOverwrite = func(string) (bool, error) { return false, nil }
	wizardRunWizard = func(context.Context) (*wizard.WizardResult, error) {
		t.Fatal("wizard must not run when overwrite is declined")
		return nil, nil
	}

	require.NoError(t, Init(context.Background(), "router.yaml"))
	assert.Contains(t, out.String(), "Aborted")
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreFactories(t)

	wizardFileExists = func(string) bool { return false }
	wizardRunWizard = func(context.Context) (*wizard.WizardResult, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), "router.yaml")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUserInput))
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_WriteError(t *testing.T) {
	saveAndRestoreFactories(t)

	wizardFileExists = func(string) bool { return false }
	wizardRunWizard = func(context.Context) (*wizard.WizardResult, error) {
		return &wizard.WizardResult{Models: []string{"a"}, DefaultModel: "a"}, nil
	}
	wizardWriteConfig = func(*config.ProviderConfig, string) error {
		return errors.New("disk full")
	}

	err := Init(context.Background(), "router.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}
