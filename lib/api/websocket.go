package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// @Summary	Open websocket for realtime status information
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied
		a.log.Warn("couldn't make websocket", "err", err)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			a.log.Debug("could not close websocket", "err", err)
		}
	}(ws)

	a.wsMutex.Lock()
	a.wsClients[ws] = true
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMutex.Unlock()

	done := make(chan struct{})
	go a.websocketWriter(ws, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		a.log.Debug(fmt.Sprintf("Received: %s", msg))
	}

	close(done)
	a.wsMutex.Lock()
	delete(a.wsClients, ws)
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMutex.Unlock()
}

// websocketWriter pushes a stats packet every two seconds.
func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	a.writeStats(ws)

	pingTicker := time.NewTicker(2 * time.Second)
	defer pingTicker.Stop()
	for {
		select {
		case <-done:
			return
		case <-pingTicker.C:
			if err := a.writeStats(ws); err != nil {
				return
			}
		}
	}
}

type statsPacket struct {
	Event string `json:"event"`
	Stats any    `json:"stats"`
}

func (a *Api) writeStats(ws *websocket.Conn) error {
	return a.writePacket(ws, statsPacket{Event: "stats", Stats: a.Stats.Snapshot()})
}

// broadcast sends an event to every connected client.
func (a *Api) broadcast(event any) {
	a.wsMutex.Lock()
	clients := make([]*websocket.Conn, 0, len(a.wsClients))
	for ws := range a.wsClients {
		clients = append(clients, ws)
	}
	a.wsMutex.Unlock()

	for _, ws := range clients {
		if err := a.writePacket(ws, event); err != nil {
			a.log.Debug("could not send event", "err", err)
		}
	}
}

// writePacket serialises all websocket writes, gorilla allows only one
// concurrent writer per connection.
func (a *Api) writePacket(ws *websocket.Conn, v any) error {
	packet, err := json.Marshal(v)
	if err != nil {
		return err
	}

	a.wsWriteMutex.Lock()
	defer a.wsWriteMutex.Unlock()

	err = ws.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return ws.WriteMessage(websocket.TextMessage, packet)
}
