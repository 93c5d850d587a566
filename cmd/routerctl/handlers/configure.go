package handlers

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/routerctl/internal/apperr"
	"github.com/imamik/routerctl/internal/config"
	"github.com/imamik/routerctl/internal/reconcile"
	"github.com/imamik/routerctl/internal/render"
	"github.com/imamik/routerctl/internal/status"
)

// ConfigureOptions are the flags of the configure command.
type ConfigureOptions struct {
	ConfigPath      string
	Overrides       config.Overrides
	DryRun          bool
	JSON            bool
	MetricsTextfile string
}

// Configure runs one reconcile pass: resolve the mode, load the provider
// configuration, render and apply the objects, then print the summary.
func Configure(ctx context.Context, global GlobalOptions, opts ConfigureOptions) error {
	logger := log.FromContext(ctx)

	cfg, simple, err := loadConfigureInput(opts)
	if err != nil {
		return err
	}

	store := newModeStore(global.modeFilePath())
	m := store.Get()
	logger.V(1).Info("Resolved deployment mode", "mode", m, "selector", store.Path())

	in := reconcile.Input{
		Mode:          m,
		Config:        cfg,
		Templates:     render.NewSource(global.TemplatesDir),
		DashboardPath: global.Dashboard,
		Simple:        simple,
	}

	if opts.DryRun {
		plan, err := reconcile.BuildPlan(in)
		if err != nil {
			return err
		}
		return printPlan(plan, opts.JSON)
	}

	client, err := newClusterClient(global.kubeconfigPath())
	if err != nil {
		return apperr.ClusterApply(err)
	}

	metrics := reconcile.NewMetrics()
	res, err := reconcile.New(client, reconcile.WithMetrics(metrics)).Reconcile(ctx, in)
	if opts.MetricsTextfile != "" {
		if werr := metrics.WriteTextfile(opts.MetricsTextfile); werr != nil {
			logger.Error(werr, "Failed to write metrics textfile", "path", opts.MetricsTextfile)
		}
	}
	if err != nil {
		return err
	}

	logger.Info("Reconcile pass complete",
		"applied", len(res.Applied),
		"restarted", res.Restarted,
		"skipped", res.Skipped,
		"duration", res.Duration.String())

	return printSummary(status.New(m, cfg, global.Host), opts.JSON)
}

// loadConfigureInput returns the provider configuration from the file or
// the flags. simple is true for the flag-based variant.
func loadConfigureInput(opts ConfigureOptions) (cfg *config.ProviderConfig, simple bool, err error) {
	if opts.Overrides.IsSet() {
		if opts.ConfigPath != "" {
			return nil, false, apperr.UserInputf("a config path cannot be combined with --endpoint, --api-key, --primary-model or --secondary-model")
		}
		if err := requireAllOverrides(opts.Overrides); err != nil {
			return nil, false, err
		}
		cfg, err := config.FromOverrides(opts.Overrides)
		return cfg, true, err
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigFilename
	}
	cfg, err = loadProviderConfig(path)
	return cfg, false, err
}

func requireAllOverrides(o config.Overrides) error {
	var missing []string
	if o.Endpoint == "" {
		missing = append(missing, "--endpoint")
	}
	if o.APIKey == "" {
		missing = append(missing, "--api-key")
	}
	if o.PrimaryModel == "" {
		missing = append(missing, "--primary-model")
	}
	if o.SecondaryModel == "" {
		missing = append(missing, "--secondary-model")
	}
	if len(missing) > 0 {
		return apperr.UserInputf("missing required flags: %v", missing)
	}
	return nil
}
