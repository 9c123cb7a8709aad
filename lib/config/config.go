package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/glsample/lib/log"
	"github.com/fosdem/glsample/lib/utils"
	"github.com/go-gl/mathgl/mgl32"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window      WindowCfg
	ClearColour string `yaml:"clear_colour"`
	Camera      CameraCfg
	Triangle    TriangleCfg
	Render      RenderCfg
	Shaders     ShadersCfg
	Api         ApiCfg
	LogLevel    string `yaml:"log_level"`
}

type WindowCfg struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	GLMajor   int `yaml:"gl_major"`
	GLMinor   int `yaml:"gl_minor"`
	VSync     bool
}

type CameraCfg struct {
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32
	Far        float32
	Eye        []float32
	Centre     []float32
	Up         []float32
	// Apply feeds the matrices to the vertex shader. Off by default, the
	// triangle is given in clip space.
	Apply bool
}

type TriangleCfg struct {
	Positions []float32
	Colours   []float32
}

type RenderCfg struct {
	// Cache keeps the shader program and vertex buffers between frames
	// instead of rebuilding them on every idle tick.
	Cache  bool
	MaxFPS int `yaml:"max_fps"`
}

type ShadersCfg struct {
	Vertex   CfgPath
	Fragment CfgPath
	Watch    bool
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

type Valid interface {
	Validate() error
}

// Default returns the configuration of the stock sample: an 800x600 window,
// black background and the red/green/blue triangle.
func Default() *Config {
	return &Config{
		Window: WindowCfg{
			Title:   "Sample 1. Triangle",
			Width:   800,
			Height:  600,
			GLMajor: 4,
			GLMinor: 1,
			VSync:   true,
		},
		ClearColour: "#000000ff",
		Camera: CameraCfg{
			FovDegrees: 60,
			Near:       0.1,
			Far:        200,
			Eye:        []float32{5, 5, 0},
			Centre:     []float32{0, 0, 0},
			Up:         []float32{0, 1, 0},
		},
		Triangle: TriangleCfg{
			Positions: []float32{
				-0.8, -0.8, 0.0,
				0.8, -0.8, 0.0,
				0.0, 0.8, 0.0,
			},
			Colours: []float32{
				1.0, 0.0, 0.0,
				0.0, 1.0, 0.0,
				0.0, 0.0, 1.0,
			},
		},
		LogLevel: "info",
	}
}

// Parse reads a config file. Relative shader paths are resolved against
// the directory the file lives in.
func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Module("config").Warn("could not close config file", "file", filename, "err", err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}

	return Decode(f, filepath.Dir(absFilename))
}

// Decode reads YAML on top of Default and validates the result.
func Decode(r io.Reader, base string) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	// a document holding nothing but comments or a bare "---" would
	// otherwise zero the defaults
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc != nil {
		m := yaml.NewDecoder(bytes.NewReader(b), yaml.DisallowUnknownField())
		err = m.Decode(cfg)
		if err != nil && err != io.EOF {
			return nil, err
		}
	}
	cfg.Shaders.resolve(base)

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func DecodeBytes(b []byte, base string) (*Config, error) {
	return Decode(bytes.NewReader(b), base)
}

func (c *Config) Validate() error {
	sections := []struct {
		name string
		v    Valid
	}{
		{"window", &c.Window},
		{"camera", &c.Camera},
		{"triangle", &c.Triangle},
		{"render", &c.Render},
		{"shaders", &c.Shaders},
	}
	for _, s := range sections {
		if err := s.v.Validate(); err != nil {
			return fmt.Errorf("%s config is invalid: %w", s.name, err)
		}
	}

	if c.ClearColour == "" {
		return fmt.Errorf("please set clear_colour in the config")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Window:\n  %q %dx%d (OpenGL %d.%d)\n", c.Window.Title, c.Window.Width, c.Window.Height, c.Window.GLMajor, c.Window.GLMinor)
	fmt.Fprintf(&b, "\nClear colour:\n  %s\n", c.ClearColour)
	fmt.Fprintf(&b, "\nTriangle:\n  %d vertices\n", c.Triangle.NumVertices())

	b.WriteString("\nShaders:\n")
	if c.Shaders.Vertex == "" && c.Shaders.Fragment == "" {
		b.WriteString("  built-in\n")
	}
	if c.Shaders.Vertex != "" {
		fmt.Fprintf(&b, "  vertex: %s\n", c.Shaders.Vertex)
	}
	if c.Shaders.Fragment != "" {
		fmt.Fprintf(&b, "  fragment: %s\n", c.Shaders.Fragment)
	}

	b.WriteString("\nRender:\n")
	if c.Render.Cache {
		b.WriteString("  cached program and buffers\n")
	} else {
		b.WriteString("  rebuild every frame\n")
	}

	if c.Api.Bind != "" {
		fmt.Fprintf(&b, "\nApi:\n  %s\n", c.Api.Bind)
	}
	return b.String()
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.GLMajor < 3 || (w.GLMajor == 3 && w.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d has no core profile vertex arrays, need at least 3.3", w.GLMajor, w.GLMinor)
	}
	return nil
}

func (c *CameraCfg) Validate() error {
	if c.FovDegrees <= 0 || c.FovDegrees >= 180 {
		return fmt.Errorf("fov_degrees must be between 0 and 180")
	}
	if c.Near <= 0 {
		return fmt.Errorf("near plane must be positive")
	}
	if c.Far <= c.Near {
		return fmt.Errorf("far plane (%g) must lie beyond near plane (%g)", c.Far, c.Near)
	}
	for name, v := range map[string][]float32{"eye": c.Eye, "centre": c.Centre, "up": c.Up} {
		if len(v) != 3 {
			return fmt.Errorf("%s must have 3 components, got %d", name, len(v))
		}
	}

	eye := mgl32.Vec3{c.Eye[0], c.Eye[1], c.Eye[2]}
	centre := mgl32.Vec3{c.Centre[0], c.Centre[1], c.Centre[2]}
	up := mgl32.Vec3{c.Up[0], c.Up[1], c.Up[2]}
	view := centre.Sub(eye)
	if view.Len() == 0 {
		return fmt.Errorf("eye and centre must differ")
	}
	if up.Cross(view).Len() == 0 {
		return fmt.Errorf("up must not be parallel to the view direction")
	}
	return nil
}

func (t *TriangleCfg) NumVertices() int {
	return len(t.Positions) / 3
}

func (t *TriangleCfg) Validate() error {
	if len(t.Positions) == 0 {
		return fmt.Errorf("positions must not be empty")
	}
	if len(t.Positions)%9 != 0 {
		return fmt.Errorf("positions must hold whole triangles of 3 xyz vertices, got %d floats", len(t.Positions))
	}
	if len(t.Colours) != len(t.Positions) {
		return fmt.Errorf("colours (%d floats) must match positions (%d floats)", len(t.Colours), len(t.Positions))
	}
	return nil
}

func (r *RenderCfg) Validate() error {
	if r.MaxFPS < 0 {
		return fmt.Errorf("max_fps must be nonnegative")
	}
	return nil
}

func (s *ShadersCfg) Validate() error {
	if s.Watch && s.Vertex == "" && s.Fragment == "" {
		return fmt.Errorf("cannot watch built-in shaders, set a vertex or fragment path")
	}
	for _, p := range []CfgPath{s.Vertex, s.Fragment} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(string(p)); err != nil {
			return fmt.Errorf("shader file: %w", err)
		}
	}
	return nil
}

func (s *ShadersCfg) resolve(base string) {
	s.Vertex = s.Vertex.Resolve(base)
	s.Fragment = s.Fragment.Resolve(base)
}
