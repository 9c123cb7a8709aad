package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fosdem/glsample/lib/api"
	"github.com/fosdem/glsample/lib/config"
	"github.com/fosdem/glsample/lib/kbdctl"
	"github.com/fosdem/glsample/lib/log"
	"github.com/fosdem/glsample/lib/rendering"
	"github.com/fosdem/glsample/lib/rendering/shaders"
	"github.com/fosdem/glsample/lib/scene"
	"github.com/fosdem/glsample/lib/sink/windowsink"
	"github.com/fosdem/glsample/lib/stats"
	"github.com/fosdem/glsample/lib/utils"
	"golang.org/x/sys/unix"
)

// MakeWindowAndRender opens the window and renders until it is closed or
// a shutdown is requested. It must run on the main OS thread.
func MakeWindowAndRender(cfg *config.Config) error {
	logger := log.Module("app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer stop()

	sc, err := scene.New(cfg)
	if err != nil {
		return fmt.Errorf("could not build scene: %w", err)
	}
	st := stats.New()

	window := windowsink.New(&cfg.Window)
	err = window.Start()
	if err != nil {
		return err
	}
	defer window.Stop()

	err = rendering.Init()
	if err != nil {
		return fmt.Errorf("could not initialise renderer: %w", err)
	}

	shaderer, err := shaders.NewShaderer(map[string]string{
		shaders.VertexShaderName:   string(cfg.Shaders.Vertex),
		shaders.FragmentShaderName: string(cfg.Shaders.Fragment),
	})
	if err != nil {
		return fmt.Errorf("could not load shaders: %w", err)
	}

	renderer := rendering.NewRenderer(cfg, sc, st, shaderer)
	defer renderer.Release()

	release := kbdctl.SetupShortcutKeys(sc, window)
	defer release()
	window.OnResize(renderer.Resize)

	if a := api.ServeInBackground(cfg, sc, st); a != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := a.Shutdown(shutdownCtx); err != nil {
				logger.Warn("could not shut down api", "err", err)
			}
		}()
	}

	if cfg.Shaders.Watch {
		if !cfg.Render.Cache {
			logger.Info("shaders are rebuilt every frame anyway, watching only for logging")
		}
		err = shaders.Watch(ctx, shaderer.Overrides(), func(path string) {
			logger.Info(fmt.Sprintf("%s changed, rebuilding", path))
			sc.RequestRebuild("shader changed")
		})
		if err != nil {
			return err
		}
	}

	go func() {
		<-ctx.Done()
		sc.RequestShutdown("signal")
	}()

	frames := newFrameRecorder(st)

	width, height := window.FramebufferSize()
	start := time.Now()
	err = renderer.Load(width, height, window)
	if err != nil {
		return fmt.Errorf("could not load scene: %w", err)
	}
	frames.Record(time.Since(start))

	limiter := utils.NewFrameLimiter(cfg.Render.MaxFPS)
	for !sc.ShutdownRequested() {
		kbdctl.Poll()
		if window.ShouldClose() {
			sc.RequestShutdown("window closed")
			break
		}

		start = time.Now()
		err = renderer.Render(window)
		if err != nil {
			return fmt.Errorf("could not render frame: %w", err)
		}
		frames.Record(time.Since(start))

		limiter.Wait()
	}

	logger.Info(fmt.Sprintf("exiting after %d frames", st.Snapshot().Frames))
	return nil
}
