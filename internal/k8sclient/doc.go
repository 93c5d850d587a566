// Package k8sclient provides the Kubernetes operations the reconciler needs,
// wrapping k8s.io/client-go for namespace creation, Server-Side Apply of
// ConfigMaps and Secrets, and rollout restarts of Deployments.
package k8sclient
