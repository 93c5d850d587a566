// Package wizard provides the interactive `routerctl init` wizard.
//
// RunWizard collects model names, the default model, the upstream endpoint
// and optional access keys with charmbracelet/huh forms. BuildConfig turns
// the answers into a provider configuration and WriteConfig writes it as a
// router.yaml document.
package wizard
