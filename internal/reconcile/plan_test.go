package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/routerctl/internal/apperr"
	"github.com/imamik/routerctl/internal/config"
	"github.com/imamik/routerctl/internal/mode"
	"github.com/imamik/routerctl/internal/util/labels"
)

func TestSecretKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want map[string]string
	}{
		{"none", nil, map[string]string{}},
		{"single", []string{"sk-1"}, map[string]string{"api-key": "sk-1"}},
		{"two", []string{"sk-1", "sk-2"}, map[string]string{"api-key-0": "sk-1", "api-key-1": "sk-2"}},
		{"three", []string{"a", "b", "c"}, map[string]string{"api-key-0": "a", "api-key-1": "b", "api-key-2": "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SecretKeys(tt.keys))
		})
	}
}

func TestBuildPlan_Order(t *testing.T) {
	t.Parallel()
	cfg := loadConfig(t, scenarioConfig)

	plan, err := BuildPlan(Input{Mode: mode.Slim, Config: cfg})
	require.NoError(t, err)

	var names []string
	for _, o := range plan.Objects {
		names = append(names, o.Name)
		assert.Equal(t, Namespace, o.Namespace)
		assert.Equal(t, labels.ManagedByRouterctl, o.Labels[labels.KeyManagedBy])
	}
	assert.Equal(t, []string{RouterConfigName, EnvoyConfigName, CredentialsName}, names)
	assert.Equal(t, []string{RouterDeployment}, plan.Restarts)
}

func TestBuildPlan_Deterministic(t *testing.T) {
	t.Parallel()
	in := Input{Mode: mode.Slim, Config: loadConfig(t, scenarioConfig)}

	first, err := BuildPlan(in)
	require.NoError(t, err)
	second, err := BuildPlan(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildPlan_Dashboard(t *testing.T) {
	t.Parallel()
	dashboard := filepath.Join(t.TempDir(), "router.json")
	require.NoError(t, os.WriteFile(dashboard, []byte(`{"title":"LLM Router"}`), 0o644))
	cfg := loadConfig(t, scenarioConfig)

	t.Run("full with asset", func(t *testing.T) {
		t.Parallel()
		plan, err := BuildPlan(Input{Mode: mode.Full, Config: cfg, DashboardPath: dashboard})
		require.NoError(t, err)

		obj, ok := plan.Object(DashboardName)
		require.True(t, ok)
		assert.Equal(t, map[string]string{"router.json": `{"title":"LLM Router"}`}, obj.Data)
		assert.Equal(t, "1", obj.Labels[labels.KeyGrafanaDashboard])
		assert.Equal(t, []string{RouterDeployment, LiteLLMDeployment, GrafanaDeployment}, plan.Restarts)
	})

	t.Run("full without asset", func(t *testing.T) {
		t.Parallel()
		plan, err := BuildPlan(Input{Mode: mode.Full, Config: cfg, DashboardPath: filepath.Join(t.TempDir(), "missing.json")})
		require.NoError(t, err)
		_, ok := plan.Object(DashboardName)
		assert.False(t, ok)
		assert.Equal(t, []string{RouterDeployment, LiteLLMDeployment}, plan.Restarts)
	})

	t.Run("slim ignores asset", func(t *testing.T) {
		t.Parallel()
		plan, err := BuildPlan(Input{Mode: mode.Slim, Config: cfg, DashboardPath: dashboard})
		require.NoError(t, err)
		_, ok := plan.Object(DashboardName)
		assert.False(t, ok)
	})
}

func TestBuildPlan_SimpleTemplate(t *testing.T) {
	t.Parallel()
	cfg, err := config.FromOverrides(config.Overrides{
		Endpoint:       "https://api.example.com",
		APIKey:         "sk-1",
		PrimaryModel:   "coder",
		SecondaryModel: "general",
	})
	require.NoError(t, err)

	plan, err := BuildPlan(Input{Mode: mode.Full, Config: cfg, Simple: true})
	require.NoError(t, err)

	obj, ok := plan.Object(RouterConfigName)
	require.True(t, ok)
	assert.Contains(t, obj.Data[RouterConfigKey], "endpoint: https://api.example.com")
	assert.Contains(t, obj.Data[RouterConfigKey], "default_model: coder")

	secret, ok := plan.Object(CredentialsName)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"api-key": "sk-1"}, secret.Data)
}

func TestBuildPlan_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := BuildPlan(Input{Mode: "medium", Config: loadConfig(t, scenarioConfig)})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUserInput))

	_, err = BuildPlan(Input{Mode: mode.Full})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUserInput))
}

func TestObject_KeysSorted(t *testing.T) {
	t.Parallel()
	obj := Object{Kind: KindSecret, Namespace: Namespace, Name: CredentialsName, Data: SecretKeys([]string{"a", "b", "c"})}
	assert.Equal(t, []string{"api-key-0", "api-key-1", "api-key-2"}, obj.Keys())
	assert.Equal(t, "Secret llm-router/litellm-credentials", obj.Ref())
}
