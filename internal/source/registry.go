package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"URLAnalyzer/internal/ports"
)

// ErrUnknownSource is returned when no source matches a name or file extension.
var ErrUnknownSource = errors.New("unknown url source")

// Registry keeps a mapping from source names to their implementations,
// plus the file extensions each source accepts.
type Registry struct {
	sources    map[string]ports.URLSource
	extensions map[string]string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sources:    map[string]ports.URLSource{},
		extensions: map[string]string{},
	}
}

// Register adds or replaces a source and binds the given file extensions to it.
func (r *Registry) Register(src ports.URLSource, extensions ...string) {
	if r.sources == nil {
		r.sources = map[string]ports.URLSource{}
	}
	if r.extensions == nil {
		r.extensions = map[string]string{}
	}
	r.sources[src.Name()] = src
	for _, ext := range extensions {
		r.extensions[normalizeExt(ext)] = src.Name()
	}
}

// Resolve returns a source by name.
func (r *Registry) Resolve(name string) (ports.URLSource, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("source %q: %w", name, ErrUnknownSource)
}

// ResolveFile picks a source from the extension of filename.
func (r *Registry) ResolveFile(filename string) (ports.URLSource, error) {
	ext := normalizeExt(filepath.Ext(filename))
	name, ok := r.extensions[ext]
	if !ok {
		return nil, fmt.Errorf("file %q: %w", filename, ErrUnknownSource)
	}
	return r.Resolve(name)
}

// Extensions lists the registered file extensions.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.extensions))
	for ext := range r.extensions {
		out = append(out, ext)
	}
	return out
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
