// Package config loads the operator-authored provider document.
//
// The document declares the upstream models the router may use:
//
//	providers:
//	  endpoint: https://api.example.com/v1
//	  default_model: general
//	  models:
//	    - name: coder
//	      access_key: sk-1
//	    - name: general
//	      access_key: sk-2
//	      endpoint:
//	        name: eu
//	        url: https://eu.api.example.com
//
// [Load] parses it against a declared schema into a [ProviderConfig],
// preserving model declaration order, and validates it. The raw document
// bytes are kept so templates can splice them verbatim.
package config
