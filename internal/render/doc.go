// Package render resolves placeholder templates into router configuration.
//
// Templates are plain text with double-underscore tokens from a closed set:
// scalar placeholders (__ENDPOINT__, __API_KEY__, __MODEL_0__, ...) and one
// block placeholder (__PROVIDERS__) that splices the provider document
// verbatim. Substitution is literal, single pass, and must leave no token
// behind; anything else is an error rather than partial output.
package render
