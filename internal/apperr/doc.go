// Package apperr defines the error kinds surfaced by routerctl.
//
// Every pipeline stage wraps its failures in an [*Error] carrying one of
// four kinds (user input, config parse, render, cluster apply). The CLI
// prints the kind-prefixed message on a single line and exits non-zero.
package apperr
