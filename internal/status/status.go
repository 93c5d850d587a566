// Package status summarizes the configured router for the operator.
package status

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/imamik/routerctl/internal/config"
	"github.com/imamik/routerctl/internal/mode"
)

// Model is one configured model.
type Model struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
	HasKey  bool   `json:"has_access_key"`
}

// URL is an operator-facing endpoint.
type URL struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Summary is a read-only view of the mode and provider configuration.
type Summary struct {
	Mode         mode.Mode `json:"mode"`
	Models       []Model   `json:"models"`
	DefaultModel string    `json:"default_model,omitempty"`
	Upstream     string    `json:"upstream"`
	// UpstreamDefaulted is set when the document declares no endpoint.
	UpstreamDefaulted bool  `json:"upstream_defaulted,omitempty"`
	URLs              []URL `json:"urls"`
}

// New builds the summary. host is the address operators reach the
// appliance on; NodePort URLs are derived from it.
func New(m mode.Mode, cfg *config.ProviderConfig, host string) Summary {
	s := Summary{
		Mode:         m,
	}
	// No model is starred unless the document names a default.
	if cfg.HasDefault() {
		s.DefaultModel = cfg.DefaultModel
	}

	for _, mdl := range cfg.Models {
		s.Models = append(s.Models, Model{
			Name:    mdl.Name,
			Default: s.DefaultModel != "" && mdl.Name == s.DefaultModel,
			HasKey:  mdl.HasAccessKey(),
		})
	}

	ep, declared := cfg.UpstreamEndpoint()
	s.Upstream = ep.URL
	s.UpstreamDefaulted = !declared

	if host == "" {
		host = "localhost"
	}
	s.URLs = append(s.URLs, URL{Name: "router", URL: nodePortURL(host, config.RouterNodePort)})
	if m == mode.Full {
		s.URLs = append(s.URLs, URL{Name: "grafana", URL: nodePortURL(host, config.GrafanaNodePort)})
	}
	return s
}

func nodePortURL(host string, port int) string {
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port))
}

// Render writes the summary as text. styled enables terminal colors.
func (s Summary) Render(w io.Writer, styled bool) error {
	var out string
	if styled {
		out = renderStyled(s)
	} else {
		out = renderPlain(s)
	}
	_, err := io.WriteString(w, out)
	return err
}

// JSON writes the summary as indented JSON.
func (s Summary) JSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	return nil
}

func renderPlain(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Mode:           %s\n", s.Mode.Description())
	b.WriteString("Models:\n")
	for _, m := range s.Models {
		fmt.Fprintf(&b, "  %s %s\n", marker(m.Default), m.Name)
	}
	fmt.Fprintf(&b, "Default model:  %s\n", defaultModelText(s.DefaultModel))
	fmt.Fprintf(&b, "Upstream:       %s%s\n", s.Upstream, defaultedNote(s.UpstreamDefaulted))
	for _, u := range s.URLs {
		fmt.Fprintf(&b, "%-16s%s\n", titleCase(u.Name)+":", u.URL)
	}
	return b.String()
}

func marker(isDefault bool) string {
	if isDefault {
		return "*"
	}
	return "-"
}

func defaultModelText(name string) string {
	if name == "" {
		return "(none)"
	}
	return name
}

func defaultedNote(defaulted bool) string {
	if defaulted {
		return " (default)"
	}
	return ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
