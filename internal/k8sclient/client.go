package k8sclient

import (
	"context"
	"errors"
	"fmt"
	"os"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// FieldManager identifies routerctl as the owner of applied fields.
const FieldManager = "routerctl"

// ErrWorkloadNotFound is returned by RestartRollout when the Deployment does not exist.
var ErrWorkloadNotFound = errors.New("workload not found")

// Client provides the cluster operations used by a reconcile pass.
type Client interface {
	// EnsureNamespace creates the namespace if it does not exist.
	EnsureNamespace(ctx context.Context, name string) error

	// ApplyConfigMap applies a ConfigMap holding a single key.
	// The stored data is replaced wholesale.
	ApplyConfigMap(ctx context.Context, namespace, name, key, payload string, labels map[string]string) error

	// ApplySecret applies an Opaque Secret with the given entries.
	// The stored data is replaced wholesale.
	ApplySecret(ctx context.Context, namespace, name string, entries map[string][]byte, labels map[string]string) error

	// RestartRollout triggers a rolling restart of a Deployment.
	// It returns ErrWorkloadNotFound if the Deployment is absent.
	RestartRollout(ctx context.Context, namespace, name string) error
}

type client struct {
	clientset kubernetes.Interface
	now       func() metav1.Time
}

// NewFromKubeconfig creates a Client from kubeconfig bytes.
func NewFromKubeconfig(kubeconfig []byte) (Client, error) {
	restConfig, err := clientcmd.RESTConfigFromKubeConfig(kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST config from kubeconfig: %w", err)
	}
	return NewForConfig(restConfig)
}

// NewFromKubeconfigFile creates a Client from the kubeconfig at path.
func NewFromKubeconfigFile(path string) (Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read kubeconfig %s: %w", path, err)
	}
	return NewFromKubeconfig(data)
}

// NewForConfig creates a Client from a REST config.
func NewForConfig(restConfig *rest.Config) (Client, error) {
	restConfig.UserAgent = FieldManager

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes clientset: %w", err)
	}
	return NewFromClientset(clientset), nil
}

// NewFromClientset creates a Client from a pre-configured clientset.
// This is useful for testing with fake clients.
func NewFromClientset(clientset kubernetes.Interface) Client {
	return &client{clientset: clientset, now: metav1.Now}
}

func (c *client) EnsureNamespace(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("namespace name is required")
	}

	namespaces := c.clientset.CoreV1().Namespaces()
	_, err := namespaces.Get(ctx, name, metav1.GetOptions{})
	if err == nil {
		return nil
	}
	if !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to get namespace %s: %w", name, err)
	}

	ns := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: name}}
	if _, err := namespaces.Create(ctx, ns, metav1.CreateOptions{FieldManager: FieldManager}); err != nil {
		// Lost a race with another writer; the namespace exists either way.
		if apierrors.IsAlreadyExists(err) {
			return nil
		}
		return fmt.Errorf("failed to create namespace %s: %w", name, err)
	}
	return nil
}
