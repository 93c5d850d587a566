package render

import (
	"strings"

	"github.com/imamik/routerctl/internal/config"
)

// Block is a verbatim sub-document bound to a block placeholder.
type Block struct {
	Placeholder Placeholder
	Text        string
}

// Context holds the values available to a template.
type Context struct {
	Scalars map[Placeholder]string
	Block   *Block
}

// NewContext derives the rendering context from a provider configuration.
// Positional model placeholders follow declaration order. __API_KEY__ is
// only bound when a model declares a key, so a template that needs a
// credential fails to render without one.
func NewContext(cfg *config.ProviderConfig) Context {
	scalars := make(map[Placeholder]string, len(cfg.Models)+2)
	for i, m := range cfg.Models {
		scalars[Model(i)] = m.Name
	}
	if host := cfg.UpstreamHost(); host != "" {
		scalars[Endpoint] = host
	}
	if keys := cfg.AccessKeys(); len(keys) > 0 {
		scalars[APIKey] = keys[0]
	}

	return Context{
		Scalars: scalars,
		Block: &Block{
			Placeholder: Providers,
			Text:        blockText(cfg.Raw),
		},
	}
}

// modelCount returns how many consecutive positional model placeholders
// are bound, starting at index 0.
func (c Context) modelCount() int {
	n := 0
	for {
		if _, ok := c.Scalars[Model(n)]; !ok {
			return n
		}
		n++
	}
}

func (c Context) lookup(p Placeholder) (string, bool) {
	if p.IsBlock() {
		if c.Block == nil || c.Block.Placeholder != p {
			return "", false
		}
		return c.Block.Text, true
	}
	v, ok := c.Scalars[p]
	return v, ok
}

// blockText trims surrounding blank lines and a leading document marker so
// the document splices into a single YAML stream.
func blockText(raw []byte) string {
	text := strings.TrimLeft(string(raw), "\n")
	text = strings.TrimPrefix(text, "---\n")
	return strings.TrimRight(text, "\n")
}
