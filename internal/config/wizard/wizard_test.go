package wizard

import (
	"errors"
	"reflect"
	"testing"

	"github.com/imamik/routerctl/internal/config"
)

func TestBuildConfig(t *testing.T) {
	result := &WizardResult{
		Models:       []string{"coder", "general"},
		DefaultModel: "general",
		Endpoint:     " https://api.example.com/v1 ",
		AccessKeys:   map[string]string{"coder": "sk-1"},
	}

	cfg, err := BuildConfig(result)
	if err != nil {
		t.Fatalf("BuildConfig() error = %v", err)
	}

	if got := cfg.ModelNames(); !reflect.DeepEqual(got, []string{"coder", "general"}) {
		t.Errorf("ModelNames() = %v, want [coder general]", got)
	}
	if cfg.DefaultModel != "general" {
		t.Errorf("DefaultModel = %q, want %q", cfg.DefaultModel, "general")
	}
	if cfg.Endpoint.URL != "https://api.example.com/v1" {
		t.Errorf("Endpoint.URL = %q, want trimmed URL", cfg.Endpoint.URL)
	}
	if cfg.Models[0].AccessKey != "sk-1" {
		t.Errorf("coder AccessKey = %q, want %q", cfg.Models[0].AccessKey, "sk-1")
	}
	if cfg.Models[1].HasAccessKey() {
		t.Error("general should have no access key")
	}
}

func TestBuildConfig_UnknownDefault(t *testing.T) {
	_, err := BuildConfig(&WizardResult{Models: []string{"a"}, DefaultModel: "b"})
	if !errors.Is(err, config.ErrUnknownDefaultModel) {
		t.Errorf("BuildConfig() error = %v, want ErrUnknownDefaultModel", err)
	}
}

func TestParseModels(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , b,,c ", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		if got := parseModels(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseModels(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateModels(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"gpt-4o, gpt-4o-mini", nil},
		{"", errModelsRequired},
		{" , ", errModelsRequired},
		{"a b", errModelNameInvalid},
		{"a, a", errModelDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if err := validateModels(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("validateModels(%q) = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	valid := []string{"", "api.example.com", "https://api.example.com/v1", "http://10.0.0.1:8000"}
	for _, in := range valid {
		if err := validateEndpoint(in); err != nil {
			t.Errorf("validateEndpoint(%q) = %v, want nil", in, err)
		}
	}

	invalid := []string{"ftp://host", "https://", "https://:443"}
	for _, in := range invalid {
		if err := validateEndpoint(in); !errors.Is(err, errEndpointInvalid) {
			t.Errorf("validateEndpoint(%q) = %v, want errEndpointInvalid", in, err)
		}
	}
}
