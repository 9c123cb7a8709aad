package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexShaderName   = "basic.vert"
	FragmentShaderName = "basic.frag"
)

// Shaderer renders shader sources from templates. The built-in sources are
// embedded; any of them can be replaced by a file on disk, which is read
// again on every call so edits are picked up on the next build.
type Shaderer struct {
	templates *template.Template
	overrides map[string]string
}

// NewShaderer takes a map of template name to file path. Empty paths are
// ignored.
func NewShaderer(overrides map[string]string) (*Shaderer, error) {
	s := &Shaderer{overrides: make(map[string]string)}

	var err error
	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")
	if err != nil {
		return nil, fmt.Errorf("could not parse built-in shaders: %w", err)
	}

	for name, path := range overrides {
		if path == "" {
			continue
		}
		if s.templates.Lookup(name) == nil {
			return nil, fmt.Errorf("cannot override %s: no such shader", name)
		}
		s.overrides[name] = path
	}
	return s, nil
}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	GLSLVersion int
	ApplyCamera bool
}

// GLSLVersionFor maps a GL context version onto the matching #version line.
func GLSLVersionFor(major, minor int) int {
	return major*100 + minor*10
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	tmpl := s.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("no shader named %s", name)
	}

	if path, ok := s.overrides[name]; ok {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("could not read %s: %w", path, err)
		}
		tmpl, err = template.New(name).Parse(string(content))
		if err != nil {
			return "", fmt.Errorf("could not parse %s: %w", path, err)
		}
	}

	var b bytes.Buffer
	err := tmpl.Execute(&b, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

// Overrides returns the files replacing built-in shaders.
func (s *Shaderer) Overrides() []string {
	var paths []string
	for _, p := range s.overrides {
		paths = append(paths, p)
	}
	return paths
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
