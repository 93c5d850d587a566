// Package reconcile turns a deployment mode and a provider configuration
// into the ConfigMaps and Secrets the router workloads consume, applies
// them in order, and restarts the affected Deployments.
//
// A pass is one-shot and sequential: the first failing step aborts it and
// nothing is retried. Re-running a pass with the same inputs produces the
// same objects, so the cluster ends up unchanged.
package reconcile
