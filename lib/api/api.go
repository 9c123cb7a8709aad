package api

//go:generate go tool swag init --generalInfo api.go --dir . --output docs --outputTypes go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fosdem/glsample/lib/api/docs"
	"github.com/fosdem/glsample/lib/config"
	"github.com/fosdem/glsample/lib/log"
	"github.com/fosdem/glsample/lib/metrics"
	"github.com/fosdem/glsample/lib/scene"
	"github.com/fosdem/glsample/lib/stats"
)

// @title			glsample API
// @version		1.0
// @description	Remote control for the triangle sample
// @BasePath		/

type Api struct {
	srv   http.Server
	mux   *http.ServeMux
	cfg   *config.Config
	scene *scene.Scene

	Stats *stats.Stats

	wsClients map[*websocket.Conn]bool
	wsMutex   sync.Mutex
	// wsWriteMutex guards writes on all websocket connections
	wsWriteMutex sync.Mutex

	log *slog.Logger
}

func New(cfg *config.Config, sc *scene.Scene, st *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.scene = sc
	a.srv.Addr = cfg.Api.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.Stats = st
	a.log = log.Module("api")

	sc.AddEventListener(scene.EventClearColour, func(_ *scene.Scene, data interface{}) {
		event := data.(scene.EventDataClearColour)
		event.Event = scene.EventClearColour
		a.log.Info(fmt.Sprintf("Clear colour set to %s", event.Colour))
		a.broadcast(event)
	})
	sc.AddEventListener(scene.EventRebuildRequested, func(_ *scene.Scene, data interface{}) {
		event := data.(scene.EventDataRebuild)
		event.Event = scene.EventRebuildRequested
		a.broadcast(event)
	})
	sc.AddEventListener(scene.EventProgramBuilt, func(_ *scene.Scene, data interface{}) {
		event := data.(scene.EventDataProgramBuilt)
		event.Event = scene.EventProgramBuilt
		a.broadcast(event)
	})
	sc.AddEventListener(scene.EventShutdown, func(_ *scene.Scene, data interface{}) {
		event := data.(scene.EventDataShutdown)
		event.Event = scene.EventShutdown
		a.broadcast(event)
	})

	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.Api.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/config", a.handleConfig)
	a.mux.HandleFunc("POST /api/clear-colour", a.handleClearColour)
	a.mux.HandleFunc("POST /api/rebuild", a.handleRebuild)
	a.mux.HandleFunc("GET /api/frame/{format}", a.handleFrame)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
}

// Handler exposes the routes without a listening server.
func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	a.log.Info(fmt.Sprintf("Listening on %s", a.srv.Addr))
	err := a.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ServeInBackground starts the API unless no bind address is configured.
func ServeInBackground(cfg *config.Config, sc *scene.Scene, st *stats.Stats) *Api {
	if cfg.Api.Bind == "" {
		return nil
	}
	a := New(cfg, sc, st)
	go func() {
		if err := a.Serve(); err != nil {
			a.log.Error("api server stopped", "err", err)
		}
	}()
	return a
}

func (a *Api) Shutdown(ctx context.Context) error {
	a.wsMutex.Lock()
	for ws := range a.wsClients {
		_ = ws.Close()
	}
	a.wsMutex.Unlock()
	return a.srv.Shutdown(ctx)
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Ask the sample to exit
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.log.Info("shutting down as per api request")
	a.scene.RequestShutdown("api")
	a.writeOK(w)
}

// @Summary	Get render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

type Config struct {
	Title       string   `json:"title"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	GLVersion   string   `json:"gl_version"`
	ClearColour string   `json:"clear_colour"`
	Vertices    int      `json:"vertices"`
	Cache       bool     `json:"cache"`
	Shaders     []string `json:"shaders"`
}

// @Summary	Get the running configuration
// @Router		/api/config [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	result := &Config{
		Title:       a.cfg.Window.Title,
		Width:       a.cfg.Window.Width,
		Height:      a.cfg.Window.Height,
		GLVersion:   fmt.Sprintf("%d.%d", a.cfg.Window.GLMajor, a.cfg.Window.GLMinor),
		ClearColour: a.scene.ClearColour().String(),
		Vertices:    a.cfg.Triangle.NumVertices(),
		Cache:       a.cfg.Render.Cache,
		Shaders:     []string{},
	}
	for _, p := range []config.CfgPath{a.cfg.Shaders.Vertex, a.cfg.Shaders.Fragment} {
		if p != "" {
			result.Shaders = append(result.Shaders, string(p))
		}
	}
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) writeOK(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log.Warn("could not write response", "err", err)
	}
}
