package game

import (
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"drawphone/internal/shared/logger"
)

const (
	sessionOutboxSize = 256
	pingPeriod        = 30 * time.Second
)

// ClientEnvelope is one inbound frame. Seq identifies the request so the
// ack can act as its single reply callback.
type ClientEnvelope struct {
	Event string          `json:"event"`
	Seq   int64           `json:"seq"`
	Data  json.RawMessage `json:"data"`
}

type ServerEnvelope struct {
	Event string `json:"event"`
	Seq   int64  `json:"seq,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// session is one connected client. The session id is the player identity
// for as long as the connection lives.
type session struct {
	id      string
	conn    NetworkSession
	outbox  chan []byte
	limiter *rate.Limiter
	once    sync.Once
}

func newSession(id string, conn NetworkSession) *session {
	return &session{
		id:      id,
		conn:    conn,
		outbox:  make(chan []byte, sessionOutboxSize),
		limiter: rate.NewLimiter(rate.Limit(20), 40),
	}
}

func (s *session) send(env ServerEnvelope) {
	data, err := json.Marshal(env)
	if err != nil {
		logger.Criticalf("[session %s] marshal %s failed: %v", s.id, env.Event, err)
		return
	}
	select {
	case s.outbox <- data:
	default:
		logger.Warningf("[session %s] outbox full, dropping %s", s.id, env.Event)
	}
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.outbox)
	})
}

func (s *session) writePump() {
	pings := time.NewTicker(pingPeriod)
	defer pings.Stop()
	for {
		select {
		case data, ok := <-s.outbox:
			if !ok {
				return
			}
			if err := s.conn.Write(data); err != nil {
				return
			}
		case <-pings.C:
			if err := s.conn.Ping(); err != nil {
				return
			}
		}
	}
}

// Hub tracks live sessions and implements Emitter. The core hands it
// recipient id lists; it never sees room state.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*session)}
}

func (h *Hub) add(s *session) {
	h.mu.Lock()
	h.sessions[s.id] = s
	h.mu.Unlock()
}

func (h *Hub) remove(s *session) {
	h.mu.Lock()
	delete(h.sessions, s.id)
	h.mu.Unlock()
	s.close()
}

func (h *Hub) Unicast(to string, event string, v any) {
	h.mu.RLock()
	s, ok := h.sessions[to]
	h.mu.RUnlock()
	if ok {
		s.send(ServerEnvelope{Event: event, Data: v})
	}
}

func (h *Hub) Broadcast(to []string, event string, v any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range to {
		if s, ok := h.sessions[id]; ok {
			s.send(ServerEnvelope{Event: event, Data: v})
		}
	}
}
