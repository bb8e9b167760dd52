package game

import "encoding/json"

// Emitter is the transport surface the core depends on. The core computes
// the recipient set; the transport owns the sockets. Request replies travel
// back as handler return values, not through the emitter.
type Emitter interface {
	Broadcast(to []string, event string, v any)
	Unicast(to string, event string, v any)
}

// Server-to-client event names, fixed by the client contract.
const (
	EventRoomUpdate      = "roomUpdate"
	EventGameStarted     = "gameStarted"
	EventPhaseChange     = "phaseChange"
	EventDrawFor         = "drawFor"
	EventGuessFor        = "guessFor"
	EventRevealData      = "revealData"
	EventTimerStart      = "timerStart"
	EventTimerTick       = "timerTick"
	EventPlayerSubmitted = "playerSubmitted"
	EventGameEnded       = "gameEnded"
)

type RoomSummary struct {
	ID      string   `json:"id"`
	Host    string   `json:"host"`
	Phase   string   `json:"phase"`
	Players []Player `json:"players"`
}

type PhasePayload struct {
	Phase   string `json:"phase"`
	Round   int    `json:"round"`
	Seconds int    `json:"seconds"`
}

type DrawForPayload struct {
	TargetID string `json:"targetId"`
	Prompt   string `json:"prompt"`
	Seconds  int    `json:"seconds"`
}

type GuessForPayload struct {
	TargetID string `json:"targetId"`
	Drawing  any    `json:"drawing"`
}

type TimerStartPayload struct {
	Phase   string `json:"phase"`
	Seconds int    `json:"seconds"`
}

type TimerTickPayload struct {
	Phase     string `json:"phase"`
	Remaining int    `json:"remaining"`
}

type PlayerSubmittedPayload struct {
	PlayerID string   `json:"playerId"`
	Kind     StepKind `json:"kind"`
}

// Client-to-server request payloads.

type JoinRoomRequest struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

type StartGameRequest struct {
	RoomID   string   `json:"roomId"`
	Settings Settings `json:"settings"`
}

type SubmitPromptRequest struct {
	RoomID string `json:"roomId"`
	Prompt string `json:"prompt"`
}

type DrawingDataRequest struct {
	RoomID   string          `json:"roomId"`
	TargetID string          `json:"targetId"`
	Strokes  json.RawMessage `json:"strokes"`
}

type SubmitGuessRequest struct {
	RoomID   string `json:"roomId"`
	TargetID string `json:"targetId"`
	Guess    string `json:"guess"`
}

type LeaveRoomRequest struct {
	RoomID string `json:"roomId"`
}
