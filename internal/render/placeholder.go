package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder names a substitution point. The token in a template is the
// name wrapped in double underscores.
type Placeholder string

const (
	// Endpoint is the upstream hostname.
	Endpoint Placeholder = "ENDPOINT"
	// APIKey is the first declared access key.
	APIKey Placeholder = "API_KEY"
	// Providers is the block placeholder for the provider document.
	Providers Placeholder = "PROVIDERS"

	modelPrefix = "MODEL_"
)

// Model returns the positional placeholder for the model at index i.
func Model(i int) Placeholder {
	return Placeholder(modelPrefix + strconv.Itoa(i))
}

// Token returns the placeholder as it appears in a template.
func (p Placeholder) Token() string {
	return "__" + string(p) + "__"
}

// IsBlock reports whether p is replaced by a whole sub-document.
func (p Placeholder) IsBlock() bool {
	return p == Providers
}

// modelIndex returns the index of a positional model placeholder.
func (p Placeholder) modelIndex() (int, bool) {
	rest, ok := strings.CutPrefix(string(p), modelPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 || strconv.Itoa(i) != rest {
		return 0, false
	}
	return i, true
}

// known reports whether p belongs to the closed placeholder set.
func (p Placeholder) known() bool {
	switch p {
	case Endpoint, APIKey, Providers:
		return true
	}
	_, ok := p.modelIndex()
	return ok
}

var (
	// tokenPattern matches anything shaped like a placeholder, known or not.
	tokenPattern = regexp.MustCompile(`__([A-Z][A-Z0-9]*(?:_[A-Z0-9]+)*)__`)

	// knownTokenPattern matches only the closed placeholder set.
	knownTokenPattern = regexp.MustCompile(`__(?:ENDPOINT|API_KEY|PROVIDERS|MODEL_(?:0|[1-9][0-9]*))__`)
)

// IsRendered reports whether text is free of placeholder tokens.
func IsRendered(text string) bool {
	return !knownTokenPattern.MatchString(text)
}

// remainingTokens lists the placeholder tokens still present in text.
func remainingTokens(text string) []string {
	return knownTokenPattern.FindAllString(text, -1)
}

func (p Placeholder) String() string {
	return p.Token()
}

// placeholderList formats placeholders for error messages.
func placeholderList(ps []Placeholder) string {
	tokens := make([]string, len(ps))
	for i, p := range ps {
		tokens[i] = p.Token()
	}
	return fmt.Sprintf("[%s]", strings.Join(tokens, ", "))
}
