package labels

import "maps"

// Standard label keys, following the Kubernetes recommended labels.
const (
	// KeyManagedBy identifies the tool that writes the object.
	KeyManagedBy = "app.kubernetes.io/managed-by"

	// KeyPartOf names the application the object belongs to.
	KeyPartOf = "app.kubernetes.io/part-of"

	// KeyComponent names the workload that consumes the object.
	KeyComponent = "app.kubernetes.io/component"

	// KeyGrafanaDashboard is watched by the Grafana dashboard sidecar.
	KeyGrafanaDashboard = "grafana_dashboard"
)

// Label values.
const (
	ManagedByRouterctl = "routerctl"
	PartOfLLMRouter    = "llm-router"
)

// LabelBuilder provides a fluent interface for building object labels.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates a builder with the managed-by and part-of labels set.
func NewLabelBuilder() *LabelBuilder {
	return &LabelBuilder{
		labels: map[string]string{
			KeyManagedBy: ManagedByRouterctl,
			KeyPartOf:    PartOfLLMRouter,
		},
	}
}

// WithComponent sets the consuming component (e.g., "router", "envoy").
func (lb *LabelBuilder) WithComponent(component string) *LabelBuilder {
	lb.labels[KeyComponent] = component
	return lb
}

// WithGrafanaDashboard marks the object for the Grafana dashboard sidecar.
func (lb *LabelBuilder) WithGrafanaDashboard() *LabelBuilder {
	lb.labels[KeyGrafanaDashboard] = "1"
	return lb
}

// Build returns a copy of the labels map.
func (lb *LabelBuilder) Build() map[string]string {
	return maps.Clone(lb.labels)
}
