package k8sclient

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	corev1ac "k8s.io/client-go/applyconfigurations/core/v1"
)

func applyOptions() metav1.ApplyOptions {
	return metav1.ApplyOptions{FieldManager: FieldManager, Force: true}
}

func (c *client) ApplyConfigMap(ctx context.Context, namespace, name, key, payload string, labels map[string]string) error {
	if err := requireObjectKey(namespace, name); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("configmap %s/%s: data key is required", namespace, name)
	}

	cm := corev1ac.ConfigMap(name, namespace).
		WithLabels(labels).
		WithData(map[string]string{key: payload})

	if _, err := c.clientset.CoreV1().ConfigMaps(namespace).Apply(ctx, cm, applyOptions()); err != nil {
		return fmt.Errorf("failed to apply configmap %s/%s: %w", namespace, name, err)
	}
	return nil
}

func (c *client) ApplySecret(ctx context.Context, namespace, name string, entries map[string][]byte, labels map[string]string) error {
	if err := requireObjectKey(namespace, name); err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("secret %s/%s: at least one entry is required", namespace, name)
	}

	secret := corev1ac.Secret(name, namespace).
		WithLabels(labels).
		WithType("Opaque").
		WithData(entries)

	if _, err := c.clientset.CoreV1().Secrets(namespace).Apply(ctx, secret, applyOptions()); err != nil {
		return fmt.Errorf("failed to apply secret %s/%s: %w", namespace, name, err)
	}
	return nil
}

func requireObjectKey(namespace, name string) error {
	if namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
