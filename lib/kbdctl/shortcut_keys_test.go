package kbdctl

import (
	"testing"

	"github.com/fosdem/glsample/lib/config"
	"github.com/fosdem/glsample/lib/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene(t *testing.T) *scene.Scene {
	sc, err := scene.New(config.Default())
	require.NoError(t, err)
	return sc
}

func TestCtrlShiftQQuitsOnRelease(t *testing.T) {
	sc := newScene(t)

	HandleKey(sc, glfw.KeyQ, glfw.Press, glfw.ModControl|glfw.ModShift)
	assert.False(t, sc.ShutdownRequested())

	HandleKey(sc, glfw.KeyQ, glfw.Release, glfw.ModControl)
	assert.False(t, sc.ShutdownRequested())

	HandleKey(sc, glfw.KeyQ, glfw.Release, glfw.ModControl|glfw.ModShift)
	assert.True(t, sc.ShutdownRequested())
}

func TestEscapeQuits(t *testing.T) {
	sc := newScene(t)
	HandleKey(sc, glfw.KeyEscape, glfw.Press, 0)
	assert.True(t, sc.ShutdownRequested())
}

func TestRRequestsRebuild(t *testing.T) {
	sc := newScene(t)

	HandleKey(sc, glfw.KeyR, glfw.Release, 0)
	assert.False(t, sc.TakeRebuild())

	HandleKey(sc, glfw.KeyR, glfw.Press, 0)
	assert.True(t, sc.TakeRebuild())
	assert.False(t, sc.ShutdownRequested())
}
