package game

import (
	"encoding/json"

	"drawphone/internal/shared/logger"
)

// The submission gate: each handler validates fully before touching state,
// records the contribution, announces progress, and advances the phase
// early once every live player's chain has reached the current step.

func (r *Room) submitPrompt(callerID, prompt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRoomNotFound
	}
	if r.phase != PhaseWriting {
		return ErrWrongPhase
	}
	// Prompts are self-submissions: the caller owns the chain it starts.
	if _, ok := r.players[callerID]; !ok {
		return ErrNotAssigned
	}
	if e := entryFor(r.history, callerID); e != nil {
		return ErrDuplicateSubmission
	}

	e := &HistoryEntry{Owner: callerID}
	e.addStep(StepPrompt, callerID, prompt)
	r.history = append(r.history, e)

	r.recordSubmission(callerID, StepPrompt)
	return nil
}

func (r *Room) submitDrawing(callerID, targetID string, strokes json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRoomNotFound
	}
	if r.phase != PhaseDrawing {
		return ErrWrongPhase
	}
	drawer, ok := DrawerFor(r.order, targetID)
	if !ok || drawer != callerID {
		return ErrNotAssigned
	}
	e := entryFor(r.history, targetID)
	if e == nil {
		return ErrEntryMissing
	}
	if e.hasStep(StepDrawing) {
		return ErrDuplicateSubmission
	}

	e.addStep(StepDrawing, callerID, strokes)
	r.recordSubmission(callerID, StepDrawing)
	return nil
}

func (r *Room) submitGuess(callerID, targetID, guess string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRoomNotFound
	}
	if r.phase != PhaseGuessing {
		return ErrWrongPhase
	}
	guesser, ok := GuesserFor(r.order, targetID)
	if !ok || guesser != callerID {
		return ErrNotAssigned
	}
	e := entryFor(r.history, targetID)
	if e == nil {
		return ErrEntryMissing
	}
	if e.hasStep(StepGuess) {
		return ErrDuplicateSubmission
	}

	e.addStep(StepGuess, callerID, guess)
	r.recordSubmission(callerID, StepGuess)
	return nil
}

func (r *Room) recordSubmission(playerID string, kind StepKind) {
	logger.Debugf("[room %s] %s submitted %s", r.id, playerID, kind)
	r.broadcast(EventPlayerSubmitted, PlayerSubmittedPayload{PlayerID: playerID, Kind: kind})
	r.maybeAdvance()
}

// maybeAdvance fires the early advance when every live player's chain has
// reached the step kind the current phase collects.
func (r *Room) maybeAdvance() {
	var kind StepKind
	switch r.phase {
	case PhaseWriting:
		kind = StepPrompt
	case PhaseDrawing:
		kind = StepDrawing
	case PhaseGuessing:
		kind = StepGuess
	default:
		return
	}
	if len(r.order) == 0 {
		return
	}
	if countWithStep(r.history, kind) >= len(r.order) {
		r.advanceFrom(r.phase, r.timer.epoch)
	}
}
