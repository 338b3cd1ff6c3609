package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The editor is a single-user local session; any page that can reach
	// the server may subscribe.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 50 * time.Second
)

// hub fans re-rendered screen fragments out to every connected editor page.
type hub struct {
	mu      sync.Mutex
	clients map[string]chan []byte
	log     *slog.Logger
}

func newHub(log *slog.Logger) *hub {
	return &hub{
		clients: make(map[string]chan []byte),
		log:     log,
	}
}

// broadcast queues the fragment for every client. Slow clients drop frames
// rather than stalling the mutation path; the next broadcast supersedes any
// dropped one since each frame is a full re-render.
func (h *hub) broadcast(frag []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.clients {
		select {
		case ch <- frag:
		default:
			h.log.Warn("dropping frame for slow websocket client", "client", id)
		}
	}
}

func (h *hub) register() (string, chan []byte) {
	id := uuid.NewString()
	ch := make(chan []byte, 8)
	h.mu.Lock()
	h.clients[id] = ch
	h.mu.Unlock()
	return id, ch
}

func (h *hub) unregister(id string) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}

	id, ch := s.hub.register()
	s.log.Info("websocket client connected", "client", id)

	defer func() {
		s.hub.unregister(id)
		conn.Close()
		s.log.Info("websocket client disconnected", "client", id)
	}()

	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	// Reader goroutine: the client sends nothing meaningful, but reading is
	// required to process pong frames and detect disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frag := <-ch:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, frag); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
