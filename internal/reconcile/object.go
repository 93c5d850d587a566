package reconcile

import (
	"slices"
	"strconv"

	"github.com/imamik/routerctl/internal/mode"
	"github.com/imamik/routerctl/internal/util/labels"
)

// Namespace holds every object routerctl manages.
const Namespace = "llm-router"

// Object names and data keys read by the workload manifests.
const (
	RouterConfigName = "router-config"
	RouterConfigKey  = "config.yaml"

	EnvoyConfigName = "envoy-config"
	EnvoyConfigKey  = "envoy.yaml"

	CredentialsName = "litellm-credentials"

	DashboardName = "grafana-dashboard"
)

// Deployments restarted after a pass.
const (
	RouterDeployment  = "router"
	LiteLLMDeployment = "litellm"
	GrafanaDeployment = "grafana"
)

// Kind is the type of a cluster object.
type Kind string

// Supported kinds.
const (
	KindConfigMap Kind = "ConfigMap"
	KindSecret    Kind = "Secret"
)

// Object is a desired cluster object. Data is applied wholesale.
type Object struct {
	Kind      Kind
	Namespace string
	Name      string
	Data      map[string]string
	Labels    map[string]string
}

// Keys returns the data keys in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o.Data))
	for k := range o.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Ref returns "Kind namespace/name".
func (o Object) Ref() string {
	return string(o.Kind) + " " + o.Namespace + "/" + o.Name
}

func configMap(name, key, payload string, lb *labels.LabelBuilder) Object {
	return Object{
		Kind:      KindConfigMap,
		Namespace: Namespace,
		Name:      name,
		Data:      map[string]string{key: payload},
		Labels:    lb.Build(),
	}
}

// SecretKeys names credential entries: "api-key" for a single key and
// "api-key-0".."api-key-N-1" in declaration order otherwise.
func SecretKeys(keys []string) map[string]string {
	entries := make(map[string]string, len(keys))
	if len(keys) == 1 {
		entries["api-key"] = keys[0]
		return entries
	}
	for i, k := range keys {
		entries["api-key-"+strconv.Itoa(i)] = k
	}
	return entries
}

// restartTargets lists the Deployments restarted for m.
func restartTargets(m mode.Mode, withDashboard bool) []string {
	if m == mode.Slim {
		return []string{RouterDeployment}
	}
	targets := []string{RouterDeployment, LiteLLMDeployment}
	if withDashboard {
		targets = append(targets, GrafanaDeployment)
	}
	return targets
}
