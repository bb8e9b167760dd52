package game

import (
	"encoding/json"
	"sync"
	"time"

	"drawphone/internal/shared/logger"
)

// PeriodicTickerChannelCreator lets tests drive the registry loop with a
// plain channel instead of wall-clock tickers.
type PeriodicTickerChannelCreator interface {
	Create(d time.Duration) <-chan time.Time
}

type tickerCreator struct{}

func (tickerCreator) Create(d time.Duration) <-chan time.Time {
	return time.NewTicker(d).C
}

func NewTickerCreator() PeriodicTickerChannelCreator {
	return tickerCreator{}
}

// Registry owns the room table. It is constructed at service start and
// passed around explicitly; rooms only ever reach it through the
// roomParent interface.
type Registry struct {
	mu       sync.RWMutex
	rooms    map[string]*Room
	byPlayer map[string]map[string]struct{} // player id -> room ids, for disconnects

	idgen   *Idgen
	emitter Emitter
	tickers PeriodicTickerChannelCreator
}

func NewRegistry(em Emitter, tickers PeriodicTickerChannelCreator) *Registry {
	return &Registry{
		rooms:    make(map[string]*Room),
		byPlayer: make(map[string]map[string]struct{}),
		idgen:    NewIdgen(),
		emitter:  em,
		tickers:  tickers,
	}
}

// Run drives every room's countdown. One tick per second, each room
// handled under its own lock, to completion, before the next.
func (reg *Registry) Run(stop <-chan struct{}) {
	ticker := reg.tickers.Create(time.Second)
	for {
		select {
		case now := <-ticker:
			for _, room := range reg.snapshot() {
				room.HandleTick(now)
			}
		case <-stop:
			return
		}
	}
}

func (reg *Registry) snapshot() []*Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, r := range reg.rooms {
		rooms = append(rooms, r)
	}
	return rooms
}

func (reg *Registry) CreateRoom(settings Settings) string {
	id := reg.idgen.Generate()
	room := newRoom(id, settings, reg.emitter, reg)

	reg.mu.Lock()
	reg.rooms[id] = room
	reg.mu.Unlock()

	logger.Infof("[registry] room %s created", id)
	return id
}

func (reg *Registry) lookup(roomID string) (*Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (reg *Registry) JoinRoom(callerID, name, roomID string) (RoomSummary, error) {
	room, err := reg.lookup(roomID)
	if err != nil {
		return RoomSummary{}, err
	}
	summary, err := room.join(&Player{ID: callerID, Name: name})
	if err != nil {
		return RoomSummary{}, err
	}

	reg.mu.Lock()
	if reg.byPlayer[callerID] == nil {
		reg.byPlayer[callerID] = make(map[string]struct{})
	}
	reg.byPlayer[callerID][roomID] = struct{}{}
	reg.mu.Unlock()
	return summary, nil
}

func (reg *Registry) StartGame(callerID, roomID string, settings Settings) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}
	return room.start(callerID, settings)
}

func (reg *Registry) SubmitPrompt(callerID, roomID, prompt string) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}
	return room.submitPrompt(callerID, prompt)
}

func (reg *Registry) SubmitDrawing(callerID, roomID, targetID string, strokes json.RawMessage) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}
	return room.submitDrawing(callerID, targetID, strokes)
}

func (reg *Registry) SubmitGuess(callerID, roomID, targetID, guess string) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}
	return room.submitGuess(callerID, targetID, guess)
}

// Leave handles both the explicit leaveRoom action and the disconnect
// signal (roomID empty, leaves every joined room). Membership mutates
// synchronously so any in-flight duty resolution sees the new order. The
// byPlayer mapping is only cleared for rooms the caller was actually
// removed from; a leave naming the wrong room cannot strand the caller's
// real membership.
func (reg *Registry) Leave(callerID, roomID string) {
	var roomIDs []string
	if roomID == "" {
		reg.mu.RLock()
		for id := range reg.byPlayer[callerID] {
			roomIDs = append(roomIDs, id)
		}
		reg.mu.RUnlock()
	} else {
		roomIDs = []string{roomID}
	}

	for _, id := range roomIDs {
		room, err := reg.lookup(id)
		if err != nil || !room.leave(callerID) {
			continue
		}

		reg.mu.Lock()
		if set, ok := reg.byPlayer[callerID]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(reg.byPlayer, callerID)
			}
		}
		reg.mu.Unlock()
	}
}

// removeRoom implements roomParent. The room is already locked and marked
// closed when this runs.
func (reg *Registry) removeRoom(id string) {
	reg.mu.Lock()
	delete(reg.rooms, id)
	for pid, set := range reg.byPlayer {
		delete(set, id)
		if len(set) == 0 {
			delete(reg.byPlayer, pid)
		}
	}
	reg.mu.Unlock()

	reg.idgen.Dispose(id)
	logger.Infof("[registry] room %s removed", id)
}
