package playground

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// reloadMessage is pushed to browsers when the source document
// changes.
type reloadMessage struct {
	Type string `json:"type"`
	File string `json:"file,omitempty"`
}

// reloadHub tracks WebSocket connections interested in reload
// notifications.
type reloadHub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func newReloadHub() *reloadHub {
	return &reloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The playground binds to localhost; cross-origin checks
			// would only get in the way.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// handleWebSocket upgrades the connection and parks it until the
// client goes away.
func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// notifyReload tells every connected browser to reload.
func (h *reloadHub) notifyReload(file string) {
	h.broadcast(reloadMessage{Type: "reload", File: file})
}

func (h *reloadHub) broadcast(msg reloadMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		// A failed write means the reader loop will reap the client
		// shortly; nothing to do here.
		_ = conn.WriteJSON(msg)
	}
}

// clientCount reports the number of connected browsers.
func (h *reloadHub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
