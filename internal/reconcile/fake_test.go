package reconcile

import (
	"context"
	"fmt"
	"maps"

	"github.com/imamik/routerctl/internal/k8sclient"
)

type call struct {
	Verb string
	Kind Kind
	Name string
	Data map[string]string
}

// recordingClient stores applied objects in memory and records every call.
type recordingClient struct {
	calls      []call
	objects    map[string]map[string]string
	namespaces map[string]bool
	workloads  map[string]bool
	failOn     string
}

func newRecordingClient(workloads ...string) *recordingClient {
	c := &recordingClient{
		objects:    map[string]map[string]string{},
		namespaces: map[string]bool{},
		workloads:  map[string]bool{},
	}
	for _, w := range workloads {
		c.workloads[w] = true
	}
	return c
}

func (c *recordingClient) fail(name string) error {
	if c.failOn == name {
		return fmt.Errorf("apply %s: connection refused", name)
	}
	return nil
}

func (c *recordingClient) EnsureNamespace(_ context.Context, name string) error {
	c.calls = append(c.calls, call{Verb: "ensure", Name: name})
	if err := c.fail(name); err != nil {
		return err
	}
	c.namespaces[name] = true
	return nil
}

func (c *recordingClient) ApplyConfigMap(_ context.Context, _, name, key, payload string, _ map[string]string) error {
	data := map[string]string{key: payload}
	c.calls = append(c.calls, call{Verb: "apply", Kind: KindConfigMap, Name: name, Data: data})
	if err := c.fail(name); err != nil {
		return err
	}
	c.objects[name] = data
	return nil
}

func (c *recordingClient) ApplySecret(_ context.Context, _, name string, entries map[string][]byte, _ map[string]string) error {
	data := make(map[string]string, len(entries))
	for k, v := range entries {
		data[k] = string(v)
	}
	c.calls = append(c.calls, call{Verb: "apply", Kind: KindSecret, Name: name, Data: data})
	if err := c.fail(name); err != nil {
		return err
	}
	c.objects[name] = data
	return nil
}

func (c *recordingClient) RestartRollout(_ context.Context, namespace, name string) error {
	c.calls = append(c.calls, call{Verb: "restart", Name: name})
	if err := c.fail(name); err != nil {
		return err
	}
	if !c.workloads[name] {
		return fmt.Errorf("deployment %s/%s: %w", namespace, name, k8sclient.ErrWorkloadNotFound)
	}
	return nil
}

// snapshot copies the stored objects.
func (c *recordingClient) snapshot() map[string]map[string]string {
	out := make(map[string]map[string]string, len(c.objects))
	for k, v := range c.objects {
		out[k] = maps.Clone(v)
	}
	return out
}

func (c *recordingClient) verbs() []string {
	out := make([]string, 0, len(c.calls))
	for _, cl := range c.calls {
		out = append(out, cl.Verb+" "+cl.Name)
	}
	return out
}
