package game

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"drawphone/internal/shared/logger"
)

// Client-to-server event names.
const (
	actionCreateRoom   = "createRoom"
	actionJoinRoom     = "joinRoom"
	actionStartGame    = "startGame"
	actionSubmitPrompt = "submitPrompt"
	actionDrawingData  = "drawingData"
	actionSubmitGuess  = "submitGuess"
	actionLeaveRoom    = "leaveRoom"
)

// Ack is the single reply every client request gets.
type Ack struct {
	OK     bool         `json:"ok"`
	Err    string       `json:"err,omitempty"`
	RoomID string       `json:"roomId,omitempty"`
	Room   *RoomSummary `json:"room,omitempty"`
}

func ackErr(err error) Ack {
	return Ack{OK: false, Err: err.Error()}
}

type Handler struct {
	registry *Registry
	hub      *Hub
}

func NewHandler(registry *Registry, hub *Hub) *Handler {
	return &Handler{registry: registry, hub: hub}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws", h.serveWS)
	r.GET("/prompts.json", h.servePrompts)
}

func (h *Handler) servePrompts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, promptSuggestions)
}

func (h *Handler) serveWS(ctx *gin.Context) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(*http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Warningf("ws upgrade failed: %v", err)
		return
	}

	sess := newSession(uuid.NewString(), NewWebsocketConnection(conn))
	h.hub.add(sess)
	go sess.writePump()
	logger.Infof("[session %s] connected from %s", sess.id, ctx.ClientIP())

	h.readLoop(sess)
}

func (h *Handler) readLoop(sess *session) {
	defer func() {
		h.hub.remove(sess)
		h.registry.Leave(sess.id, "")
		sess.conn.Close("")
		logger.Infof("[session %s] disconnected", sess.id)
	}()

	for {
		data, err := sess.conn.Read()
		if err != nil {
			return
		}
		if !sess.limiter.Allow() {
			logger.Warningf("[session %s] rate limited, dropping frame", sess.id)
			continue
		}

		var env ClientEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			logger.Warningf("[session %s] bad frame: %v", sess.id, err)
			continue
		}

		ack := h.dispatch(sess.id, env)
		sess.send(ServerEnvelope{Event: "ack", Seq: env.Seq, Data: ack})
	}
}

// dispatch routes one request to the registry and shapes the ack. Expected
// validation failures come back as {ok:false, err}; anything that panics is
// logged and surfaced as an internal error, with room state untouched
// because every handler validates before it mutates.
func (h *Handler) dispatch(callerID string, env ClientEnvelope) (ack Ack) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Criticalf("[session %s] %s handler panicked: %v", callerID, env.Event, rec)
			ack = ackErr(ErrInternal)
		}
	}()

	switch env.Event {
	case actionCreateRoom:
		var settings Settings
		if err := json.Unmarshal(env.Data, &settings); err != nil {
			return ackErr(ErrInternal)
		}
		roomID := h.registry.CreateRoom(settings)
		return Ack{OK: true, RoomID: roomID}

	case actionJoinRoom:
		var req JoinRoomRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return ackErr(ErrInternal)
		}
		summary, err := h.registry.JoinRoom(callerID, req.Name, req.RoomID)
		if err != nil {
			return ackErr(err)
		}
		return Ack{OK: true, Room: &summary}

	case actionStartGame:
		var req StartGameRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return ackErr(ErrInternal)
		}
		if err := h.registry.StartGame(callerID, req.RoomID, req.Settings); err != nil {
			return ackErr(err)
		}
		return Ack{OK: true}

	case actionSubmitPrompt:
		var req SubmitPromptRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return ackErr(ErrInternal)
		}
		if err := h.registry.SubmitPrompt(callerID, req.RoomID, req.Prompt); err != nil {
			return ackErr(err)
		}
		return Ack{OK: true}

	case actionDrawingData:
		var req DrawingDataRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return ackErr(ErrInternal)
		}
		if err := h.registry.SubmitDrawing(callerID, req.RoomID, req.TargetID, req.Strokes); err != nil {
			return ackErr(err)
		}
		return Ack{OK: true}

	case actionSubmitGuess:
		var req SubmitGuessRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return ackErr(ErrInternal)
		}
		if err := h.registry.SubmitGuess(callerID, req.RoomID, req.TargetID, req.Guess); err != nil {
			return ackErr(err)
		}
		return Ack{OK: true}

	case actionLeaveRoom:
		var req LeaveRoomRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return ackErr(ErrInternal)
		}
		h.registry.Leave(callerID, req.RoomID)
		return Ack{OK: true}
	}

	logger.Warningf("[session %s] unknown event %q", callerID, env.Event)
	return Ack{OK: false, Err: "unknown event"}
}
