package k8sclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

// RestartedAtAnnotation is the pod template annotation kubectl uses for
// `rollout restart`.
const RestartedAtAnnotation = "kubectl.kubernetes.io/restartedAt"

func (c *client) RestartRollout(ctx context.Context, namespace, name string) error {
	if err := requireObjectKey(namespace, name); err != nil {
		return err
	}

	patch, err := restartPatch(c.now().Format(time.RFC3339))
	if err != nil {
		return err
	}

	_, err = c.clientset.AppsV1().Deployments(namespace).Patch(
		ctx, name, types.StrategicMergePatchType, patch,
		metav1.PatchOptions{FieldManager: FieldManager},
	)
	if apierrors.IsNotFound(err) {
		return fmt.Errorf("deployment %s/%s: %w", namespace, name, ErrWorkloadNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to restart deployment %s/%s: %w", namespace, name, err)
	}
	return nil
}

func restartPatch(timestamp string) ([]byte, error) {
	patch := map[string]any{
		"spec": map[string]any{
			"template": map[string]any{
				"metadata": map[string]any{
					"annotations": map[string]string{
						RestartedAtAnnotation: timestamp,
					},
				},
			},
		},
	}
	data, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode restart patch: %w", err)
	}
	return data, nil
}
