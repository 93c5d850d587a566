// Package labels builds the Kubernetes labels routerctl puts on the objects
// it manages, so they can be selected and told apart from objects created
// by the static manifests.
package labels
