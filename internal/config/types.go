package config

import (
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProviderConfig is the parsed provider document.
type ProviderConfig struct {
	// Models in declaration order.
	Models []Model

	// DefaultModel names the starred model. Empty means no default.
	DefaultModel string

	// Endpoint is the provider-wide upstream, if declared.
	Endpoint Endpoint

	// Raw holds the document as read, for verbatim splicing into templates.
	Raw []byte
}

// Model is a single upstream model declaration.
type Model struct {
	Name string `yaml:"name"`

	// AccessKey is empty when the model declares no credential.
	AccessKey string `yaml:"access_key,omitempty"`

	Endpoint Endpoint `yaml:"endpoint,omitempty"`
}

// HasAccessKey reports whether the model declares a credential.
func (m Model) HasAccessKey() bool {
	return m.AccessKey != ""
}

// Endpoint is an upstream location. In YAML it is either a plain URL string
// or a mapping with a name and url.
type Endpoint struct {
	Name string `yaml:"name,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

// IsZero reports whether no URL is set. yaml.v3 uses it for omitempty.
func (e Endpoint) IsZero() bool {
	return e.URL == ""
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (e *Endpoint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*e = Endpoint{URL: strings.TrimSpace(s)}
		return nil
	case yaml.MappingNode:
		type plain Endpoint
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		p.URL = strings.TrimSpace(p.URL)
		*e = Endpoint(p)
		return nil
	default:
		return fmt.Errorf("line %d: endpoint must be a URL or a mapping with name and url", node.Line)
	}
}

// MarshalYAML writes the scalar form when the endpoint carries no name.
func (e Endpoint) MarshalYAML() (any, error) {
	if e.Name == "" {
		return e.URL, nil
	}
	type plain Endpoint
	return plain(e), nil
}

// Host returns the endpoint hostname with scheme, path and port removed.
func (e Endpoint) Host() string {
	return hostOf(e.URL)
}

// ModelNames returns model names in declaration order.
func (c *ProviderConfig) ModelNames() []string {
	names := make([]string, len(c.Models))
	for i, m := range c.Models {
		names[i] = m.Name
	}
	return names
}

// HasModel reports whether a model with the given name is declared.
func (c *ProviderConfig) HasModel(name string) bool {
	for _, m := range c.Models {
		if m.Name == name {
			return true
		}
	}
	return false
}

// HasDefault reports whether a default model is declared.
func (c *ProviderConfig) HasDefault() bool {
	return c.DefaultModel != ""
}

// AccessKeys returns the declared credentials in model order. Models
// without a credential are skipped.
func (c *ProviderConfig) AccessKeys() []string {
	var keys []string
	for _, m := range c.Models {
		if m.HasAccessKey() {
			keys = append(keys, m.AccessKey)
		}
	}
	return keys
}

// UpstreamEndpoint returns the first declared endpoint: the provider-wide
// one if set, otherwise the first model endpoint in declaration order. When
// nothing is declared it returns DefaultUpstreamEndpoint and false.
func (c *ProviderConfig) UpstreamEndpoint() (Endpoint, bool) {
	if !c.Endpoint.IsZero() {
		return c.Endpoint, true
	}
	for _, m := range c.Models {
		if !m.Endpoint.IsZero() {
			return m.Endpoint, true
		}
	}
	return Endpoint{URL: DefaultUpstreamEndpoint}, false
}

// UpstreamHost returns the hostname of UpstreamEndpoint.
func (c *ProviderConfig) UpstreamHost() string {
	ep, _ := c.UpstreamEndpoint()
	return ep.Host()
}

// hostOf strips the scheme, userinfo, path and trailing port from raw.
// "https://api.example.com:8443/v1" becomes "api.example.com".
func hostOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "//" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
