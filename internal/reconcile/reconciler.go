package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/routerctl/internal/apperr"
	"github.com/imamik/routerctl/internal/k8sclient"
)

// Reconciler applies a Plan to the cluster.
type Reconciler struct {
	client  k8sclient.Client
	metrics *Metrics
	now     func() time.Time
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithMetrics records pass outcomes into m.
func WithMetrics(m *Metrics) Option {
	return func(r *Reconciler) { r.metrics = m }
}

// WithClock overrides the clock used for durations and timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) { r.now = now }
}

// New creates a Reconciler backed by client.
func New(client k8sclient.Client, opts ...Option) *Reconciler {
	r := &Reconciler{client: client, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result describes a completed pass.
type Result struct {
	Plan      *Plan
	Applied   []Object
	Restarted []string
	// Skipped lists Deployments that did not exist yet.
	Skipped  []string
	Duration time.Duration
}

// Reconcile runs one pass: ensure the namespace, apply every planned
// object in order, then restart the affected Deployments. The first
// failure aborts the pass; objects already applied stay applied.
func (r *Reconciler) Reconcile(ctx context.Context, in Input) (*Result, error) {
	start := r.now()
	res, err := r.reconcile(ctx, in)
	duration := r.now().Sub(start)
	r.metrics.recordPass(string(in.Mode), duration, err, r.now())
	if err != nil {
		return nil, err
	}
	res.Duration = duration
	return res, nil
}

func (r *Reconciler) reconcile(ctx context.Context, in Input) (*Result, error) {
	logger := log.FromContext(ctx).WithValues("mode", in.Mode, "namespace", Namespace)

	plan, err := BuildPlan(in)
	if err != nil {
		return nil, err
	}
	res := &Result{Plan: plan}

	if err := r.client.EnsureNamespace(ctx, Namespace); err != nil {
		return nil, apperr.ClusterApply(err)
	}

	for _, obj := range plan.Objects {
		if err := r.apply(ctx, obj); err != nil {
			return nil, apperr.ClusterApply(err)
		}
		r.metrics.recordApplied(obj.Kind)
		res.Applied = append(res.Applied, obj)
		logger.Info("Applied object", "kind", obj.Kind, "name", obj.Name, "keys", obj.Keys())
	}

	for _, name := range plan.Restarts {
		err := r.client.RestartRollout(ctx, Namespace, name)
		if errors.Is(err, k8sclient.ErrWorkloadNotFound) {
			logger.Info("Deployment not found, skipping restart", "deployment", name)
			res.Skipped = append(res.Skipped, name)
			continue
		}
		if err != nil {
			return nil, apperr.ClusterApply(err)
		}
		logger.V(1).Info("Restarted deployment", "deployment", name)
		res.Restarted = append(res.Restarted, name)
	}

	return res, nil
}

func (r *Reconciler) apply(ctx context.Context, obj Object) error {
	switch obj.Kind {
	case KindConfigMap:
		if len(obj.Data) != 1 {
			return fmt.Errorf("configmap %s/%s: expected exactly one data key, got %d", obj.Namespace, obj.Name, len(obj.Data))
		}
		for key, payload := range obj.Data {
			return r.client.ApplyConfigMap(ctx, obj.Namespace, obj.Name, key, payload, obj.Labels)
		}
	case KindSecret:
		entries := make(map[string][]byte, len(obj.Data))
		for k, v := range obj.Data {
			entries[k] = []byte(v)
		}
		return r.client.ApplySecret(ctx, obj.Namespace, obj.Name, entries, obj.Labels)
	}
	return fmt.Errorf("unsupported object kind %q", obj.Kind)
}
