package api

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fosdem/glsample/lib/config"
	"github.com/fosdem/glsample/lib/scene"
	"github.com/fosdem/glsample/lib/stats"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApi(t *testing.T) (*Api, *scene.Scene, *httptest.Server) {
	cfg := config.Default()
	sc, err := scene.New(cfg)
	require.NoError(t, err)
	a := New(cfg, sc, stats.New())
	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)
	return a, sc, srv
}

func post(t *testing.T, url, body string) *http.Response {
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestGetStats(t *testing.T) {
	a, _, srv := newTestApi(t)
	a.Stats.ProgramBuilt()

	resp := get(t, srv.URL+"/api/stats")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap stats.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, uint64(1), snap.ProgramsBuilt)
}

func TestGetConfig(t *testing.T) {
	_, _, srv := newTestApi(t)

	resp := get(t, srv.URL+"/api/config")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cfg Config
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cfg))
	assert.Equal(t, "4.1", cfg.GLVersion)
	assert.Equal(t, 3, cfg.Vertices)
	assert.Equal(t, "#000000ff", cfg.ClearColour)
	assert.False(t, cfg.Cache)
	assert.Empty(t, cfg.Shaders)
}

func TestSetClearColour(t *testing.T) {
	_, sc, srv := newTestApi(t)

	resp := post(t, srv.URL+"/api/clear-colour", `{"colour":"#00ff00ff"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "#00ff00ff", sc.ClearColour().String())

	resp = post(t, srv.URL+"/api/clear-colour", `{"colour":"green"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, srv.URL+"/api/clear-colour", `{`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "#00ff00ff", sc.ClearColour().String())
}

func TestRebuildAndKill(t *testing.T) {
	_, sc, srv := newTestApi(t)

	resp := post(t, srv.URL+"/api/rebuild", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, sc.TakeRebuild())

	resp = get(t, srv.URL+"/api/kill")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.False(t, sc.ShutdownRequested())

	resp = post(t, srv.URL+"/api/kill", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, sc.ShutdownRequested())
}

func TestFrame(t *testing.T) {
	_, sc, srv := newTestApi(t)

	frame := image.NewRGBA(image.Rect(0, 0, 4, 2))
	frame.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for ctx.Err() == nil {
			sc.ServeCaptures(func() *image.RGBA { return frame })
			time.Sleep(time.Millisecond)
		}
	}()

	resp := get(t, srv.URL+"/api/frame/png")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, frame.Bounds(), img.Bounds())
	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	resp = get(t, srv.URL+"/api/frame/jpeg")
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
}

func TestFrameEmptyIsUnavailable(t *testing.T) {
	_, sc, srv := newTestApi(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for ctx.Err() == nil {
			sc.ServeCaptures(func() *image.RGBA { return image.NewRGBA(image.Rect(0, 0, 0, 0)) })
			time.Sleep(time.Millisecond)
		}
	}()

	resp := get(t, srv.URL+"/api/frame/png")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestFrameRejectsUnknownFormat(t *testing.T) {
	_, _, srv := newTestApi(t)
	resp := get(t, srv.URL+"/api/frame/gif")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsAndSwagger(t *testing.T) {
	_, _, srv := newTestApi(t)

	resp := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, srv.URL+"/swagger/doc.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Contains(t, doc["paths"], "/api/clear-colour")
}

func TestWebsocketPushesStatsAndEvents(t *testing.T) {
	a, sc, srv := newTestApi(t)

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws", nil)
	require.NoError(t, err)
	defer ws.Close()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first map[string]any
	require.NoError(t, ws.ReadJSON(&first))
	assert.Equal(t, "stats", first["event"])

	require.Eventually(t, func() bool {
		return a.Stats.Snapshot().WsClients == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, sc.SetClearColour("#123456ff"))
	for {
		var msg map[string]any
		require.NoError(t, ws.ReadJSON(&msg))
		if msg["event"] == "stats" {
			continue
		}
		assert.Equal(t, scene.EventClearColour, msg["event"])
		assert.Equal(t, "#123456ff", msg["colour"])
		break
	}
}
