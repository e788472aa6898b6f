package livereload

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is sent to connected pages.
type Message struct {
	Type string `json:"type"` // "reload" or "hello"
}

// Hub keeps the set of open browser connections and pushes reload
// notifications to them.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*websocket.Conn)}
}

// ServeHTTP upgrades the request to a websocket and holds it until the
// browser goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}

	id := uuid.NewString()
	h.add(id, conn)
	defer h.remove(id)

	if err := h.write(conn, Message{Type: "hello"}); err != nil {
		return
	}

	// Pages never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: client %s: %v", id, err)
			}
			return
		}
	}
}

// Broadcast asks every connected page to reload. It returns the number of
// pages notified.
func (h *Hub) Broadcast() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for id, conn := range h.clients {
		if err := conn.WriteJSON(Message{Type: "reload"}); err != nil {
			log.Printf("livereload: client %s: write: %v", id, err)
			conn.Close()
			delete(h.clients, id)
			continue
		}
		sent++
	}
	return sent
}

// Count returns the number of connected pages.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every page.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.Close()
		delete(h.clients, id)
	}
}

func (h *Hub) add(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[id] = conn
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.clients[id]; ok {
		conn.Close()
		delete(h.clients, id)
	}
}

func (h *Hub) write(conn *websocket.Conn, msg Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteJSON(msg)
}
