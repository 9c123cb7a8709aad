package kbdctl

import (
	"github.com/fosdem/glsample/lib/log"
	"github.com/fosdem/glsample/lib/scene"
	"github.com/fosdem/glsample/lib/sink/windowsink"
	"github.com/go-gl/glfw/v3.3/glfw"
	gopointer "github.com/mattn/go-pointer"
)

// SetupShortcutKeys stores the scene in the window's user pointer and
// installs the key handler. The returned function releases the pointer.
func SetupShortcutKeys(sc *scene.Scene, ws *windowsink.WindowSink) func() {
	ptr := gopointer.Save(sc)
	ws.Window.SetUserPointer(ptr)
	ws.Window.SetKeyCallback(keyCallback)
	return func() {
		ws.Window.SetKeyCallback(nil)
		ws.Window.SetUserPointer(nil)
		gopointer.Unref(ptr)
	}
}

func Poll() {
	glfw.PollEvents()
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	sc, ok := gopointer.Restore(w.GetUserPointer()).(*scene.Scene)
	if !ok {
		return
	}
	HandleKey(sc, key, action, mods)
}

// HandleKey applies a single key event to the scene.
func HandleKey(sc *scene.Scene, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	logger := log.Module("kbdctl")

	switch action {
	case glfw.Release:
		if key == glfw.KeyQ &&
			mods&glfw.ModControl != 0 &&
			mods&glfw.ModShift != 0 {
			logger.Info("told to quit, exiting")
			sc.RequestShutdown("ctrl+shift+q")
		}
	case glfw.Press:
		switch key {
		case glfw.KeyEscape:
			logger.Info("escape pressed, exiting")
			sc.RequestShutdown("escape")
		case glfw.KeyR:
			logger.Info("rebuilding shader program")
			sc.RequestRebuild("key")
		}
	}
}
