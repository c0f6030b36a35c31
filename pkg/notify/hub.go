package notify

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub pushes toasts to every connected studio page over websocket.
type Hub struct {
	clients   map[*websocket.Conn]bool
	broadcast chan Message
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.RWMutex
	upgrader  websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Message, 256),
		done:      make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: sameHostOrigin,
		},
	}
}

// sameHostOrigin accepts browsers talking to the server they were served
// from and non-browser clients sending no Origin.
func sameHostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

func (h *Hub) Start() {
	go h.handleBroadcasts()
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)

		h.mu.Lock()
		for c := range h.clients {
			c.Close()
			delete(h.clients, c)
		}
		h.mu.Unlock()
	})
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	// the hello is written before registration so only the broadcaster
	// writes to a registered conn
	if err := conn.WriteJSON(Message{Type: MsgTypeConnect}); err != nil {
		log.Printf("WebSocket hello failed: %v", err)
		conn.Close()
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) handleBroadcasts() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.broadcast:
			h.send(msg)
		}
	}
}

func (h *Hub) send(msg Message) {
	var failed []*websocket.Conn

	h.mu.RLock()
	for client := range h.clients {
		if err := client.WriteJSON(msg); err != nil {
			failed = append(failed, client)
		}
	}
	h.mu.RUnlock()

	if len(failed) == 0 {
		return
	}

	h.mu.Lock()
	for _, c := range failed {
		c.Close()
		delete(h.clients, c)
	}
	h.mu.Unlock()
}

// Publish queues msg for every client. Messages are dropped when the queue
// is full.
func (h *Hub) Publish(msg Message) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	default:
		log.Printf("notify hub: queue full, dropping %s message", msg.Type)
	}
}

func (h *Hub) Success(title, message string) {
	h.Publish(Message{Type: MsgTypeToast, Toast: &Toast{Title: title, Message: message, Color: ColorSuccess}})
}

func (h *Hub) Failure(title, message string) {
	h.Publish(Message{Type: MsgTypeToast, Toast: &Toast{Title: title, Message: message, Color: ColorFailure}})
}

// Generated announces a component written to path.
func (h *Hub) Generated(path, content string) {
	h.Publish(Message{Type: MsgTypeGenerated, Path: path, Content: content})
}
