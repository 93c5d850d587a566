// Package mode persists the appliance deployment mode.
//
// The active mode is recorded in a kustomize selector document that the
// manifest layer applies: its resources list references exactly one of
// overlays/full or overlays/slim. Callers go through [Store] and never
// read the selector file themselves.
package mode
