package reconcile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/imamik/routerctl/internal/apperr"
	"github.com/imamik/routerctl/internal/config"
	"github.com/imamik/routerctl/internal/mode"
	"github.com/imamik/routerctl/internal/render"
	"github.com/imamik/routerctl/internal/util/labels"
)

// Input is everything a pass needs.
type Input struct {
	Mode   mode.Mode
	Config *config.ProviderConfig

	// Templates defaults to the embedded templates when nil.
	Templates *render.Source

	// DashboardPath is the Grafana dashboard asset. A missing file skips
	// the dashboard object.
	DashboardPath string

	// Simple selects the reduced router template used by the flag-based
	// invocation.
	Simple bool
}

// Plan is the desired state computed for a pass.
type Plan struct {
	Mode     mode.Mode
	Objects  []Object
	Restarts []string
}

// Object returns the planned object with the given name.
func (p *Plan) Object(name string) (Object, bool) {
	for _, o := range p.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return Object{}, false
}

// BuildPlan renders every object for in without contacting the cluster.
// Objects are returned in apply order.
func BuildPlan(in Input) (*Plan, error) {
	if !in.Mode.IsValid() {
		return nil, apperr.UserInputf("invalid mode %q", in.Mode)
	}
	if in.Config == nil {
		return nil, apperr.UserInputf("provider configuration is required")
	}

	src := in.Templates
	if src == nil {
		src = render.EmbeddedSource()
	}
	ctx := render.NewContext(in.Config)
	modeDir := string(in.Mode)

	plan := &Plan{Mode: in.Mode}

	routerTemplate := render.RouterConfigTemplate
	if in.Simple {
		routerTemplate = render.RouterConfigSimpleTemplate
	}
	routerConfig, err := renderFile(src, modeDir, routerTemplate, ctx)
	if err != nil {
		return nil, err
	}
	plan.Objects = append(plan.Objects, configMap(RouterConfigName, RouterConfigKey, routerConfig.String(),
		labels.NewLabelBuilder().WithComponent(RouterDeployment)))

	if in.Mode == mode.Slim {
		envoy, err := renderFile(src, modeDir, render.EnvoyTemplate, ctx)
		if err != nil {
			return nil, err
		}
		plan.Objects = append(plan.Objects, configMap(EnvoyConfigName, EnvoyConfigKey, envoy.String(),
			labels.NewLabelBuilder().WithComponent("envoy")))
	}

	if keys := in.Config.AccessKeys(); len(keys) > 0 {
		plan.Objects = append(plan.Objects, Object{
			Kind:      KindSecret,
			Namespace: Namespace,
			Name:      CredentialsName,
			Data:      SecretKeys(keys),
			Labels:    labels.NewLabelBuilder().WithComponent(LiteLLMDeployment).Build(),
		})
	}

	var withDashboard bool
	if in.Mode == mode.Full {
		dashboard, ok, err := readDashboard(in.DashboardPath)
		if err != nil {
			return nil, err
		}
		if ok {
			plan.Objects = append(plan.Objects, configMap(DashboardName, filepath.Base(in.DashboardPath), dashboard,
				labels.NewLabelBuilder().WithComponent(GrafanaDeployment).WithGrafanaDashboard()))
			withDashboard = true
		}
	}

	plan.Restarts = restartTargets(in.Mode, withDashboard)
	return plan, nil
}

func renderFile(src *render.Source, modeDir, name string, ctx render.Context) (render.Rendered, error) {
	tmpl, err := src.Load(modeDir, name)
	if err != nil {
		return "", err
	}
	return render.Render(tmpl, ctx)
}

// readDashboard reports ok=false when no asset is present on the host.
func readDashboard(path string) (string, bool, error) {
	if path == "" {
		return "", false, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperr.UserInput(fmt.Errorf("failed to read dashboard %s: %w", path, err))
	}
	return string(data), true, nil
}
