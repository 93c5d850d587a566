package handlers

import (
	"bytes"
	"testing"
)

// saveAndRestoreFactories saves and restores all factory variables and
// captures stdout into the returned buffer.
func saveAndRestoreFactories(t *testing.T) *bytes.Buffer {
	t.Helper()
	origNewModeStore := newModeStore
	origLoadProviderConfig := loadProviderConfig
	origNewClusterClient := newClusterClient
	origIsTerminal := isTerminal
	origStdout := stdout
	origFileExists := wizardFileExists
	origConfirmOverwrite := wizardConfirmOverwrite
	origRunWizard := wizardRunWizard
	origBuildConfig := wizardBuildConfig
	origWriteConfig := wizardWriteConfig

	t.Cleanup(func() {
		newModeStore = origNewModeStore
		loadProviderConfig = origLoadProviderConfig
		newClusterClient = origNewClusterClient
		isTerminal = origIsTerminal
		stdout = origStdout
		wizardFileExists = origFileExists
		wizardConfirmOverwrite = origConfirmOverwrite
		wizardRunWizard = origRunWizard
		wizardBuildConfig = origBuildConfig
		wizardWriteConfig = origWriteConfig
	})

	var buf bytes.Buffer
	stdout = &buf
	isTerminal = func() bool { return false }
	return &buf
}
