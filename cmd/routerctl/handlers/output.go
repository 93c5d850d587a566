package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/imamik/routerctl/internal/reconcile"
	"github.com/imamik/routerctl/internal/status"
)

const redacted = "<redacted>"

// printSummary writes the status summary as JSON, styled text on a
// terminal, or plain text otherwise.
func printSummary(s status.Summary, jsonOutput bool) error {
	if jsonOutput {
		return s.JSON(stdout)
	}
	return s.Render(stdout, isTerminal())
}

// printPlan writes the planned objects as Kubernetes manifests. Secret
// values are redacted.
func printPlan(plan *reconcile.Plan, jsonOutput bool) error {
	manifests := make([]any, 0, len(plan.Objects))
	for _, obj := range plan.Objects {
		manifests = append(manifests, manifest(obj))
	}

	if jsonOutput {
		b, err := json.MarshalIndent(map[string]any{
			"mode":     plan.Mode,
			"objects":  manifests,
			"restarts": plan.Restarts,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(stdout, string(b))
		return nil
	}

	docs := make([]string, 0, len(manifests))
	for _, m := range manifests {
		b, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to encode manifest: %w", err)
		}
		docs = append(docs, string(b))
	}
	fmt.Fprintf(stdout, "# mode: %s\n# restarts: %s\n", plan.Mode, strings.Join(plan.Restarts, ", "))
	fmt.Fprint(stdout, "---\n"+strings.Join(docs, "---\n"))
	return nil
}

func manifest(obj reconcile.Object) any {
	meta := metav1.ObjectMeta{
		Name:      obj.Name,
		Namespace: obj.Namespace,
		Labels:    obj.Labels,
	}

	if obj.Kind == reconcile.KindSecret {
		data := make(map[string]string, len(obj.Data))
		for k := range obj.Data {
			data[k] = redacted
		}
		return &corev1.Secret{
			TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
			ObjectMeta: meta,
			Type:       corev1.SecretTypeOpaque,
			StringData: data,
		}
	}

	return &corev1.ConfigMap{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: meta,
		Data:       obj.Data,
	}
}
