package mode

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"

	kustomize "sigs.k8s.io/kustomize/api/types"
	"sigs.k8s.io/yaml"

	"github.com/imamik/routerctl/internal/apperr"
)

// Store reads and writes the mode selector document.
type Store struct {
	path string
}

// NewStore returns a Store backed by the selector at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the selector location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the active mode. A missing, unreadable or ambiguous selector
// yields Default.
func (s *Store) Get() Mode {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Default
	}
	m, ok := parseSelector(data)
	if !ok {
		return Default
	}
	return m
}

// Set records m as the active mode. Writing the mode that is already
// recorded leaves the file untouched.
func (s *Store) Set(m Mode) error {
	if !m.IsValid() {
		return apperr.UserInputf("invalid mode %q: must be one of %v", m, ValidModes())
	}

	data, err := renderSelector(m)
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mode selector %s: %w", s.path, err)
	}
	return nil
}

// selectorDocument is the subset of a Kustomization that routerctl writes.
type selectorDocument struct {
	APIVersion string   `json:"apiVersion"`
	Kind       string   `json:"kind"`
	Resources  []string `json:"resources"`
}

func renderSelector(m Mode) ([]byte, error) {
	doc := selectorDocument{
		APIVersion: kustomize.KustomizationVersion,
		Kind:       kustomize.KustomizationKind,
		Resources:  []string{m.Overlay()},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mode selector: %w", err)
	}
	return append([]byte("# Managed by routerctl. Select the mode with 'routerctl mode'.\n"), data...), nil
}

// parseSelector returns the mode referenced by a selector document. It
// succeeds only when exactly one overlay is referenced.
func parseSelector(data []byte) (Mode, bool) {
	var k kustomize.Kustomization
	if err := yaml.Unmarshal(data, &k); err != nil {
		return "", false
	}

	var found []Mode
	for _, res := range k.Resources {
		if m, ok := overlayMode(res); ok {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		return "", false
	}
	return found[0], true
}

// overlayMode maps a resource entry such as "./overlays/slim/" to its mode.
func overlayMode(resource string) (Mode, bool) {
	clean := path.Clean(filepath.ToSlash(resource))
	if path.Base(path.Dir(clean)) != "overlays" {
		return "", false
	}
	m := Mode(path.Base(clean))
	return m, m.IsValid()
}

// writeFileAtomic writes data next to path and renames it into place so
// readers never observe a partially written selector.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
