package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errModelsRequired   = errors.New("at least one model name is required")
	errModelNameInvalid = errors.New("model names must not contain whitespace")
	errModelDuplicate   = errors.New("model names must be unique")
	errEndpointInvalid  = errors.New("endpoint must be a host name or an http(s) URL")
)
