package game

import (
	"time"

	"drawphone/internal/shared/logger"
)

// Text filled in for players who let the writing timer run out.
const placeholderPrompt = "(no prompt)"

func newRoom(id string, settings Settings, em Emitter, parent roomParent) *Room {
	r := &Room{
		id:       id,
		players:  make(map[string]*Player),
		order:    make([]string, 0, 8),
		phase:    PhaseWaiting,
		settings: settings.normalized(),
		emitter:  em,
		parent:   parent,
	}
	r.armTimer(pendingDuration)
	return r
}

func (r *Room) join(p *Player) (RoomSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return RoomSummary{}, ErrRoomNotFound
	}
	if _, ok := r.players[p.ID]; ok {
		return RoomSummary{}, ErrAlreadyJoined
	}

	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	if r.hostID == "" {
		r.hostID = p.ID
	}

	logger.Infof("[room %s] %s joined as %q (%d players)", r.id, p.ID, p.Name, len(r.order))
	summary := r.summary()
	r.broadcast(EventRoomUpdate, summary)
	return summary, nil
}

// leave removes a player, reassigns the host slot if needed and destroys
// the room the instant it empties. Called for explicit leaves and for
// transport disconnects alike. Reports whether the player was actually
// removed so the registry only drops membership bookkeeping that matched.
func (r *Room) leave(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	if _, ok := r.players[playerID]; !ok {
		return false
	}

	delete(r.players, playerID)
	for i, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	if r.hostID == playerID {
		r.hostID = ""
		if len(r.order) > 0 {
			r.hostID = r.order[0]
		}
	}

	logger.Infof("[room %s] %s left (%d players remain)", r.id, playerID, len(r.order))

	if len(r.order) == 0 {
		r.destroy()
		return true
	}

	r.broadcast(EventRoomUpdate, r.summary())

	// The departure may have completed the current quorum.
	r.maybeAdvance()
	return true
}

func (r *Room) start(callerID string, s Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRoomNotFound
	}
	if callerID != r.hostID {
		return ErrNotHost
	}
	if len(r.order) < 2 {
		return ErrInsufficientPlayers
	}
	if r.phase != PhaseWaiting {
		return ErrWrongPhase
	}

	r.settings = s.normalized()
	r.round = 1
	r.history = nil

	logger.Infof("[room %s] game started by %s: %d rounds, %ds per turn, mode %q",
		r.id, callerID, r.settings.MaxRounds, r.settings.SecondsPerTurn, r.settings.Mode)

	r.enterPhase(PhaseWriting, EventGameStarted)
	return nil
}

// enterPhase flips the phase, replaces the timer slot and announces the
// phase plus its countdown. Every transition funnels through here.
func (r *Room) enterPhase(p Phase, announce string) {
	r.phase = p
	seconds := r.settings.SecondsPerTurn
	r.armTimer(time.Duration(seconds) * time.Second)
	r.broadcast(announce, PhasePayload{Phase: p.String(), Round: r.round, Seconds: seconds})
	r.broadcast(EventTimerStart, TimerStartPayload{Phase: p.String(), Seconds: seconds})
}

// closeWriting fills placeholder prompts for anyone who never submitted,
// then hands out drawing duties.
func (r *Room) closeWriting() {
	for _, id := range r.order {
		if entryFor(r.history, id) == nil {
			e := &HistoryEntry{Owner: id}
			e.addStep(StepPrompt, id, placeholderPrompt)
			r.history = append(r.history, e)
		}
	}

	r.enterPhase(PhaseDrawing, EventPhaseChange)

	for _, e := range r.history {
		drawer, ok := DrawerFor(r.order, e.Owner)
		if !ok {
			continue // owner departed, nobody draws this chain
		}
		prompt, _ := e.stepData(StepPrompt)
		text, _ := prompt.(string)
		r.emitter.Unicast(drawer, EventDrawFor, DrawForPayload{
			TargetID: e.Owner,
			Prompt:   text,
			Seconds:  r.settings.SecondsPerTurn,
		})
	}
}

func (r *Room) closeDrawing() {
	r.enterPhase(PhaseGuessing, EventPhaseChange)

	for _, e := range r.history {
		guesser, ok := GuesserFor(r.order, e.Owner)
		if !ok {
			continue
		}
		drawing, _ := e.stepData(StepDrawing)
		r.emitter.Unicast(guesser, EventGuessFor, GuessForPayload{
			TargetID: e.Owner,
			Drawing:  drawing,
		})
	}
}

func (r *Room) closeGuessing() {
	r.phase = PhaseReveal
	seconds := int(revealGraceDuration / time.Second)
	r.armTimer(revealGraceDuration)
	r.broadcast(EventPhaseChange, PhasePayload{Phase: r.phase.String(), Round: r.round, Seconds: seconds})
	r.broadcast(EventRevealData, r.history)
	r.broadcast(EventTimerStart, TimerStartPayload{Phase: r.phase.String(), Seconds: seconds})
}

// finishReveal runs when the grace window elapses: next round or game over.
func (r *Room) finishReveal() {
	r.round++
	if r.round > r.settings.MaxRounds {
		r.phase = PhaseFinished
		r.clearTimer()
		logger.Infof("[room %s] game ended after %d rounds", r.id, r.settings.MaxRounds)
		r.broadcast(EventGameEnded, nil)
		return
	}

	r.history = nil
	r.enterPhase(PhaseWriting, EventPhaseChange)
}

// destroy clears the timer slot and detaches the room from the registry.
// Callers hold r.mu.
func (r *Room) destroy() {
	r.clearTimer()
	r.closed = true
	r.parent.removeRoom(r.id)
	logger.Infof("[room %s] destroyed", r.id)
}

func (r *Room) summary() RoomSummary {
	players := make([]Player, 0, len(r.order))
	for _, id := range r.order {
		players = append(players, *r.players[id])
	}
	return RoomSummary{ID: r.id, Host: r.hostID, Phase: r.phase.String(), Players: players}
}

func (r *Room) broadcast(event string, v any) {
	to := make([]string, len(r.order))
	copy(to, r.order)
	r.emitter.Broadcast(to, event, v)
}

// Summary returns the current room summary for request replies.
func (r *Room) Summary() RoomSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary()
}
