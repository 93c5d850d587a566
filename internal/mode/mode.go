package mode

import (
	"strings"

	"github.com/imamik/routerctl/internal/apperr"
)

// Mode is a deployment profile.
type Mode string

const (
	// Full runs the router behind LiteLLM with the Grafana observability stack.
	Full Mode = "full"
	// Slim runs only the router with an Envoy sidecar towards the upstream.
	Slim Mode = "slim"
)

// Default is reported when no valid selector exists.
const Default = Full

// ValidModes returns all valid modes.
func ValidModes() []Mode {
	return []Mode{Full, Slim}
}

// IsValid returns true if the mode is one of the known profiles.
func (m Mode) IsValid() bool {
	switch m {
	case Full, Slim:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case Full:
		return "full (router, LiteLLM, Prometheus, Grafana)"
	case Slim:
		return "slim (router with Envoy sidecar)"
	default:
		return string(m)
	}
}

// Overlay returns the overlay directory the selector references for m.
func (m Mode) Overlay() string {
	return "overlays/" + string(m)
}

// Parse converts a CLI argument into a Mode.
func Parse(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", apperr.UserInputf("invalid mode %q: must be one of %v", s, ValidModes())
	}
	return m, nil
}
