package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	merrors "github.com/agentx-labs/mcpappgen/internal/errors"
	"github.com/sahilm/fuzzy"
)

// Registry is the immutable template catalog plus the asset tree it reads
// template contents from. It is safe for concurrent use.
type Registry struct {
	fsys    fs.FS
	catalog *Catalog
	index   map[string]int
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return New(Embedded())
})

// Default returns the registry backed by the embedded assets.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Open returns the registry for an on-disk asset tree, or the embedded
// registry when dir is empty.
func Open(dir string) (*Registry, error) {
	if dir == "" {
		return Default()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, merrors.FromFS(err, "opening templates directory %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: templates path %s is not a directory", merrors.ErrIOFailure, dir)
	}
	return New(os.DirFS(dir))
}

// New reads and validates the catalog at the root of fsys.
func New(fsys fs.FS) (*Registry, error) {
	data, err := fs.ReadFile(fsys, CatalogFile)
	if err != nil {
		return nil, merrors.FromFS(err, "reading %s", CatalogFile)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(c.Templates))
	for i, t := range c.Templates {
		index[t.Key] = i
	}
	return &Registry{fsys: fsys, catalog: c, index: index}, nil
}

// List returns every template descriptor in catalog order.
func (r *Registry) List() []TemplateDescriptor {
	out := make([]TemplateDescriptor, len(r.catalog.Templates))
	for i, t := range r.catalog.Templates {
		t.Files = append([]string(nil), t.Files...)
		out[i] = t
	}
	return out
}

// Keys returns the template keys in catalog order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.catalog.Templates))
	for i, t := range r.catalog.Templates {
		keys[i] = t.Key
	}
	return keys
}

// Resolve returns the descriptor for key, or an error wrapping
// ErrUnknownTemplate.
func (r *Registry) Resolve(key string) (TemplateDescriptor, error) {
	i, ok := r.index[key]
	if !ok {
		return TemplateDescriptor{}, fmt.Errorf("%w: %q", merrors.ErrUnknownTemplate, key)
	}
	t := r.catalog.Templates[i]
	t.Files = append([]string(nil), t.Files...)
	return t, nil
}

// Suggest returns registry keys that fuzzily match key, best match first.
func (r *Registry) Suggest(key string) []string {
	if key == "" {
		return nil
	}
	matches := fuzzy.Find(key, r.Keys())
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// BaseFiles returns the file identifiers shared by every project.
func (r *Registry) BaseFiles() []string {
	return append([]string(nil), r.catalog.BaseFiles...)
}

// Stylesheet returns the base file identifier of the shared stylesheet.
func (r *Registry) Stylesheet() string { return r.catalog.Stylesheet }

// Markup returns the template file identifier written at the project root.
func (r *Registry) Markup() string { return r.catalog.Markup }

// LoadTemplate returns the content of file for the template key, falling
// back to the base set when the template does not define its own copy.
func (r *Registry) LoadTemplate(key, file string) (string, error) {
	data, err := fs.ReadFile(r.fsys, path.Join(key, file))
	if err == nil {
		return string(data), nil
	}
	return r.LoadBase(file)
}

// LoadBase returns the content of a base file.
func (r *Registry) LoadBase(file string) (string, error) {
	data, err := fs.ReadFile(r.fsys, path.Join(BaseDir, file))
	if err != nil {
		return "", merrors.FromFS(err, "loading template file %s", file)
	}
	return string(data), nil
}
