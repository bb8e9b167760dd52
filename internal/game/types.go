package game

import (
	"sync"
	"time"
)

type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseWriting
	PhaseDrawing
	PhaseGuessing
	PhaseReveal
	PhaseFinished
)

var phaseNames = [...]string{"waiting", "writing", "drawing", "guessing", "reveal", "finished"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

const (
	DefaultMaxRounds      = 3
	DefaultSecondsPerTurn = 60
	MinSecondsPerTurn     = 10

	// How long a reveal stays up before the next round starts, so clients
	// can replay the chains. Not tied to any player input.
	revealGraceDuration = 10 * time.Second

	// A room nobody ever joined is dropped when this expires.
	pendingDuration = time.Hour
)

// Settings are the client-supplied room options. Mode is an opaque
// passthrough string, never validated.
type Settings struct {
	MaxRounds      int    `json:"maxRounds"`
	SecondsPerTurn int    `json:"secondsPerTurn"`
	Mode           string `json:"mode"`
}

func (s Settings) normalized() Settings {
	if s.MaxRounds < 1 {
		s.MaxRounds = DefaultMaxRounds
	}
	if s.SecondsPerTurn < MinSecondsPerTurn {
		s.SecondsPerTurn = DefaultSecondsPerTurn
	}
	return s
}

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room holds all per-room state. Every mutation happens under mu, either
// from an action addressed to the room or from the registry's tick loop,
// so no two transitions for the same room ever run concurrently.
type Room struct {
	mu sync.Mutex

	id      string
	hostID  string
	players map[string]*Player
	order   []string // join order minus departures; the sole rotation basis

	phase    Phase
	round    int
	settings Settings
	history  []*HistoryEntry

	timer  countdown
	closed bool

	emitter Emitter
	parent  roomParent
}

// roomParent is the registry-side surface a room needs to remove itself.
type roomParent interface {
	removeRoom(id string)
}
