package handlers

import (
	"context"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/routerctl/internal/apperr"
	"github.com/imamik/routerctl/internal/mode"
)

// Mode prints or sets the deployment mode. Without an argument it prints
// the current mode and usage and fails, so scripts notice the missing value.
func Mode(ctx context.Context, global GlobalOptions, args []string, usage string) error {
	store := newModeStore(global.modeFilePath())

	switch len(args) {
	case 0:
		fmt.Fprintf(stdout, "Current mode: %s\n\n%s", store.Get(), usage)
		return apperr.UserInputf("a mode argument is required, one of %v", mode.ValidModes())
	case 1:
	default:
		return apperr.UserInputf("expected one mode argument, got %d", len(args))
	}

	m, err := mode.Parse(args[0])
	if err != nil {
		return err
	}

	previous := store.Get()
	// Filesystem failures stay unclassified; they are not the operator's input.
	if err := store.Set(m); err != nil {
		return err
	}
	log.FromContext(ctx).V(1).Info("Mode selector written", "path", store.Path(), "mode", m)

	if previous == m {
		fmt.Fprintf(stdout, "Mode is already %s.\n", m)
	} else {
		fmt.Fprintf(stdout, "Mode set to %s (was %s).\n", m, previous)
	}
	fmt.Fprintln(stdout, "Run 'routerctl configure' to apply the configuration.")
	return nil
}
