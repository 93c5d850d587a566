package render

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/imamik/routerctl/internal/apperr"
)

//go:embed templates
var embedded embed.FS

// Template file names inside a mode directory.
const (
	RouterConfigTemplate       = "router-config.yaml"
	RouterConfigSimpleTemplate = "router-config.simple.yaml"
	EnvoyTemplate              = "envoy.yaml"
)

// Source looks up templates by mode and file name.
type Source struct {
	fsys  fs.FS
	label string
}

// EmbeddedSource returns the templates compiled into the binary.
func EmbeddedSource() *Source {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("render: embedded templates: %v", err))
	}
	return &Source{fsys: sub, label: "embedded"}
}

// DirSource returns templates read from dir, laid out as <mode>/<file>.
func DirSource(dir string) *Source {
	return &Source{fsys: os.DirFS(dir), label: dir}
}

// NewSource returns DirSource(dir), or the embedded templates when dir is empty.
func NewSource(dir string) *Source {
	if dir == "" {
		return EmbeddedSource()
	}
	return DirSource(dir)
}

// Load returns the template for a mode.
func (s *Source) Load(mode, name string) (Template, error) {
	p := path.Join(mode, name)
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Template{}, apperr.Render(fmt.Errorf("%w: %s in %s templates", ErrTemplateNotFound, p, s.label))
		}
		return Template{}, apperr.Render(fmt.Errorf("failed to read template %s: %w", p, err))
	}
	return Template{Name: p, Text: string(data)}, nil
}
