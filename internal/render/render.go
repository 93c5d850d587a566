package render

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/imamik/routerctl/internal/apperr"
)

// Rendering failures.
var (
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
	ErrUnknownPlaceholder    = errors.New("unknown placeholder")
	ErrModelOutOfRange       = errors.New("model placeholder out of range")
	ErrBlockRepeated         = errors.New("block placeholder used more than once")
	ErrInvalidOutput         = errors.New("rendered output is not valid YAML")
	ErrTemplateNotFound      = errors.New("template not found")
)

// Template is a named template document.
type Template struct {
	Name string
	Text string
}

// Rendered is a fully resolved document.
type Rendered string

// String returns the document text.
func (r Rendered) String() string {
	return string(r)
}

// Render substitutes every placeholder in t from ctx. It fails instead of
// returning partially resolved output.
func Render(t Template, ctx Context) (Rendered, error) {
	out, err := substitute(t.Text, ctx)
	if err != nil {
		return "", apperr.Render(fmt.Errorf("template %s: %w", t.Name, err))
	}

	if !IsRendered(out) {
		return "", apperr.Render(fmt.Errorf("template %s: %w: output still contains %v",
			t.Name, ErrUnresolvedPlaceholder, remainingTokens(out)))
	}

	// Strict decoding rejects duplicate keys, e.g. a spliced document that
	// redefines a top-level key the template already sets.
	if isYAML(t.Name) {
		if _, err := yaml.YAMLToJSONStrict([]byte(out)); err != nil {
			return "", apperr.Render(fmt.Errorf("template %s: %w: %v", t.Name, ErrInvalidOutput, err))
		}
	}

	return Rendered(out), nil
}

// substitute performs a single left-to-right pass. Substituted values are
// never rescanned.
func substitute(text string, ctx Context) (string, error) {
	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)

	var (
		missing    []Placeholder
		unknown    []string
		outOfRange []Placeholder
		blockUses  = map[Placeholder]int{}
	)
	models := ctx.modelCount()

	for _, m := range matches {
		p := Placeholder(text[m[2]:m[3]])
		if !p.known() {
			unknown = append(unknown, text[m[0]:m[1]])
			continue
		}
		if p.IsBlock() {
			blockUses[p]++
		}
		if _, ok := ctx.lookup(p); ok {
			continue
		}
		if i, isModel := p.modelIndex(); isModel && i >= models {
			outOfRange = append(outOfRange, p)
			continue
		}
		missing = append(missing, p)
	}

	var errs []error
	if len(unknown) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownPlaceholder, strings.Join(unknown, ", ")))
	}
	if len(outOfRange) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s with %d model(s) configured", ErrModelOutOfRange, placeholderList(outOfRange), models))
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("%w: no value for %s", ErrUnresolvedPlaceholder, placeholderList(missing)))
	}
	for p, n := range blockUses {
		if n > 1 {
			errs = append(errs, fmt.Errorf("%w: %s appears %d times", ErrBlockRepeated, p.Token(), n))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		p := Placeholder(text[m[2]:m[3]])
		value, _ := ctx.lookup(p)
		if p.IsBlock() {
			value = indentContinuation(value, lineIndent(text, m[0]))
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(value)
		last = m[1]
	}
	b.WriteString(text[last:])

	return b.String(), nil
}

// lineIndent returns the whitespace preceding pos when nothing else precedes
// it on its line.
func lineIndent(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	prefix := text[start:pos]
	if strings.TrimLeft(prefix, " \t") != "" {
		return ""
	}
	return prefix
}

// indentContinuation indents every line after the first so a block spliced
// at an indented position stays inside its parent.
func indentContinuation(block, indent string) string {
	if indent == "" {
		return block
	}
	return strings.ReplaceAll(block, "\n", "\n"+indent)
}

func isYAML(name string) bool {
	switch path.Ext(name) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
