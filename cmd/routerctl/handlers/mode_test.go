package handlers

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/routerctl/internal/apperr"
	"github.com/imamik/routerctl/internal/mode"
)

func TestMode_NoArgumentPrintsCurrentAndFails(t *testing.T) {
	out := saveAndRestoreFactories(t)
	global := GlobalOptions{ModeFile: filepath.Join(t.TempDir(), "kustomization.yaml")}

	err := Mode(context.Background(), global, nil, "Usage:\n  routerctl mode [full|slim]\n")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUserInput))
	assert.Contains(t, out.String(), "Current mode: full")
	assert.Contains(t, out.String(), "routerctl mode [full|slim]")
}

func TestMode_SetAndRoundTrip(t *testing.T) {
	out := saveAndRestoreFactories(t)
	path := filepath.Join(t.TempDir(), "kustomization.yaml")
	global := GlobalOptions{ModeFile: path}

	require.NoError(t, Mode(context.Background(), global, []string{"slim"}, ""))
	assert.Equal(t, mode.Slim, mode.NewStore(path).Get())
	assert.Contains(t, out.String(), "Mode set to slim (was full).")

	out.Reset()
	require.NoError(t, Mode(context.Background(), global, []string{"SLIM"}, ""))
	assert.Contains(t, out.String(), "Mode is already slim.")
}

func TestMode_InvalidArgument(t *testing.T) {
	saveAndRestoreFactories(t)
	global := GlobalOptions{ModeFile: filepath.Join(t.TempDir(), "kustomization.yaml")}

	err := Mode(context.Background(), global, []string{"medium"}, "")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUserInput))

	err = Mode(context.Background(), global, []string{"full", "slim"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected one mode argument, got 2")
}

func TestMode_WriteFailure(t *testing.T) {
	saveAndRestoreFactories(t)
	global := GlobalOptions{ModeFile: filepath.Join(t.TempDir(), "missing", "kustomization.yaml")}

	err := Mode(context.Background(), global, []string{"slim"}, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnknown, apperr.KindOf(err))
	assert.True(t, strings.HasPrefix(apperr.Message(err), "error: failed to write mode selector"),
		"got %q", apperr.Message(err))
}
