package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/routerctl/internal/apperr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
providers:
  endpoint: https://api.example.com:443/v1
  default_model: general
  models:
    - name: coder
      access_key: sk-1
    - name: general
      access_key: sk-2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"coder", "general"}, cfg.ModelNames())
	assert.Equal(t, "general", cfg.DefaultModel)
	assert.Equal(t, []string{"sk-1", "sk-2"}, cfg.AccessKeys())
	assert.Equal(t, "api.example.com", cfg.UpstreamHost())
	assert.Contains(t, string(cfg.Raw), "default_model: general")
}

func TestLoad_PreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
providers:
  models:
    - name: c-model
    - name: a-model
    - name: b-model
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"c-model", "a-model", "b-model"}, cfg.ModelNames())
}

func TestLoad_NestedEndpointNameIsNotAModel(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
providers:
  models:
    - name: coder
      endpoint:
        name: not-a-model
        url: https://eu.example.com:8443
    - name: general
      endpoint: https://us.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"coder", "general"}, cfg.ModelNames())
	assert.Equal(t, "not-a-model", cfg.Models[0].Endpoint.Name)
	assert.Equal(t, "eu.example.com", cfg.UpstreamHost(), "first declared endpoint wins")
}

func TestLoad_ModelsOutsideProvidersAreIgnored(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
router:
  models:
    - name: decoy
providers:
  models:
    - name: real
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"real"}, cfg.ModelNames())
}

func TestLoad_MissingAccessKeyIsOmitted(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
providers:
  models:
    - name: local
    - name: hosted
      access_key: sk-hosted
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Models[0].HasAccessKey())
	assert.Equal(t, []string{"sk-hosted"}, cfg.AccessKeys())
}

func TestLoad_NoDefaultIsValid(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
providers:
  models:
    - name: only
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.HasDefault())
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.True(t, apperr.Is(err, apperr.KindUserInput))
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "zero models",
			content: "providers:\n  models: []\n",
			wantErr: ErrNoModels,
		},
		{
			name:    "no providers section",
			content: "router:\n  listen: :8080\n",
			wantErr: ErrNoModels,
		},
		{
			name:    "unknown default",
			content: "providers:\n  default_model: missing\n  models:\n    - name: coder\n",
			wantErr: ErrUnknownDefaultModel,
			wantMsg: `"missing"`,
		},
		{
			name:    "duplicate names",
			content: "providers:\n  models:\n    - name: a\n    - name: a\n",
			wantErr: ErrInvalidModel,
			wantMsg: "repeats name",
		},
		{
			name:    "empty name",
			content: "providers:\n  models:\n    - access_key: sk-1\n",
			wantErr: ErrInvalidModel,
			wantMsg: "has no name",
		},
		{
			name:    "malformed yaml",
			content: "providers: [unterminated\n",
			wantMsg: "failed to parse YAML",
		},
		{
			name:    "endpoint of wrong shape",
			content: "providers:\n  models:\n    - name: a\n      endpoint: [x, y]\n",
			wantMsg: "endpoint must be a URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindConfigParse), "got %v", err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadFromBytes_JoinsValidationErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadFromBytes([]byte(`
providers:
  default_model: ghost
  models:
    - name: a
    - name: a
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidModel)
	assert.ErrorIs(t, err, ErrUnknownDefaultModel)
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &ProviderConfig{
		DefaultModel: "b",
		Endpoint:     Endpoint{URL: "https://api.example.com"},
		Models: []Model{
			{Name: "a", AccessKey: "sk-a"},
			{Name: "b", Endpoint: Endpoint{Name: "eu", URL: "https://eu.example.com"}},
		},
	}

	data, err := Marshal(cfg)
	require.NoError(t, err)

	got, err := LoadFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Models, got.Models)
	assert.Equal(t, cfg.DefaultModel, got.DefaultModel)
	assert.Equal(t, cfg.Endpoint, got.Endpoint)
	assert.NotContains(t, string(data), "access_key: \"\"")
}
