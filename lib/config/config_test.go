package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyConfigIsTheStockSample(t *testing.T) {
	cfg, err := DecodeBytes(nil, "/")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 3, cfg.Triangle.NumVertices())
	assert.False(t, cfg.Render.Cache)
	assert.Equal(t, "#000000ff", cfg.ClearColour)
}

func TestEmptyDocumentsKeepDefaults(t *testing.T) {
	for name, doc := range map[string]string{
		"blank":        "",
		"comment only": "# just a comment\n",
		"bare marker":  "---\n",
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := DecodeBytes([]byte(doc), "/")
			require.NoError(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := DecodeBytes([]byte(`
window:
  title: hello
  width: 320
  height: 240
clear_colour: "#102030ff"
render:
  cache: true
  max_fps: 30
api:
  bind: 127.0.0.1:8000
`), "/")
	require.NoError(t, err)

	assert.Equal(t, "hello", cfg.Window.Title)
	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, 4, cfg.Window.GLMajor)
	assert.True(t, cfg.Render.Cache)
	assert.Equal(t, 30, cfg.Render.MaxFPS)
	assert.Equal(t, "127.0.0.1:8000", cfg.Api.Bind)
	assert.Equal(t, Default().Triangle, cfg.Triangle)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeBytes([]byte("windw:\n  width: 1\n"), "/")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for name, tc := range map[string]struct {
		yaml string
		msg  string
	}{
		"bad colour":        {`clear_colour: black`, "not a valid RGBA hex colour"},
		"zero size":         {"window:\n  width: 0", "window size must be positive"},
		"old gl":            {"window:\n  gl_major: 2", "need at least 3.3"},
		"far before near":   {"camera:\n  near: 10\n  far: 1", "far plane"},
		"short eye":         {"camera:\n  eye: [1, 2]", "eye must have 3 components"},
		"vertex count":      {"triangle:\n  colours: [1, 0, 0]", "must match positions"},
		"partial triangle":  {"triangle:\n  positions: [0, 0, 0, 1, 1, 1]\n  colours: [0, 0, 0, 1, 1, 1]", "whole triangles"},
		"negative fps":      {"render:\n  max_fps: -1", "max_fps"},
		"watch builtin":     {"shaders:\n  watch: true", "cannot watch built-in shaders"},
		"missing shader":    {"shaders:\n  vertex: nope.vert", "shader file"},
		"unknown log level": {"log_level: chatty", "unknown log level"},
		"eye at centre":     {"camera:\n  eye: [0, 0, 0]", "eye and centre must differ"},
		"up along view":     {"camera:\n  eye: [0, 5, 0]", "up must not be parallel"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tc.yaml), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseResolvesShaderPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "my.vert"), []byte("void main() {}"), 0o644))
	cfgFile := filepath.Join(dir, "sample.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("shaders:\n  vertex: my.vert\n  watch: true\n"), 0o644))

	cfg, err := Parse(cfgFile)
	require.NoError(t, err)

	assert.Equal(t, CfgPath(filepath.Join(dir, "my.vert")), cfg.Shaders.Vertex)
	assert.Equal(t, CfgPath(""), cfg.Shaders.Fragment)
	assert.True(t, cfg.Shaders.Watch)
	assert.Contains(t, cfg.String(), "vertex: "+filepath.Join(dir, "my.vert"))
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCfgPathResolve(t *testing.T) {
	assert.Equal(t, CfgPath(""), CfgPath("").Resolve("/etc"))
	assert.Equal(t, CfgPath("/abs/x"), CfgPath("/abs/x").Resolve("/etc"))
	assert.Equal(t, CfgPath("/etc/x"), CfgPath("x").Resolve("/etc"))
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Parse("../../examples/triangle.yaml")
	require.NoError(t, err)

	want := Default()
	want.Api.Bind = "127.0.0.1:8000"
	assert.Equal(t, want, cfg)
}
