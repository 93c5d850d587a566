package config

// Default locations on the appliance.
const (
	// DefaultConfigFilename is the provider document looked up in the working directory.
	DefaultConfigFilename = "router.yaml"

	// DefaultModeFile is the kustomize selector the manifest layer applies.
	DefaultModeFile = "/var/lib/routerctl/manifests/kustomization.yaml"

	// DefaultKubeconfig is the k3s admin kubeconfig.
	DefaultKubeconfig = "/etc/rancher/k3s/k3s.yaml"

	// DefaultUpstreamEndpoint is used when the provider document declares no endpoint.
	DefaultUpstreamEndpoint = "https://api.openai.com/v1"

	// DefaultDashboardPath is the Grafana dashboard shipped with the full image.
	DefaultDashboardPath = "/usr/share/routerctl/dashboards/router.json"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvKubeconfig = "KUBECONFIG"
	EnvModeFile   = "ROUTERCTL_MODE_FILE"
)

// NodePorts exposed by the static manifests.
const (
	RouterNodePort  = 30080
	GrafanaNodePort = 30300
)
