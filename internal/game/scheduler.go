package game

import (
	"time"

	"drawphone/internal/shared/logger"
)

// countdown is the room's single scheduled-task slot. Arming it replaces
// whatever was pending, so at most one timer is live per room. The epoch
// distinguishes phase instances: a transition may only fire for the epoch
// it was armed under, which keeps a stale timeout from re-running a
// transition an early advance already performed.
type countdown struct {
	epoch     int
	deadline  time.Time
	remaining int
}

func (r *Room) armTimer(d time.Duration) {
	r.timer.epoch++
	r.timer.deadline = time.Now().Add(d)
	r.timer.remaining = int(d / time.Second)
}

func (r *Room) clearTimer() {
	r.timer.epoch++
	r.timer.deadline = time.Time{}
	r.timer.remaining = 0
}

// HandleTick is called once per second by the registry's ticker loop. It
// broadcasts countdown progress and fires the transition for the phase
// being left once the deadline passes.
func (r *Room) HandleTick(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.timer.deadline.IsZero() {
		return
	}

	left := r.timer.deadline.Sub(now)
	if left > 0 {
		remaining := int((left + time.Second - 1) / time.Second)
		if remaining != r.timer.remaining && r.phase != PhaseWaiting {
			r.timer.remaining = remaining
			r.broadcast(EventTimerTick, TimerTickPayload{Phase: r.phase.String(), Remaining: remaining})
		}
		return
	}

	logger.Debugf("[room %s] timer expired in phase %s", r.id, r.phase)
	r.advanceFrom(r.phase, r.timer.epoch)
}

// advanceFrom is the one authoritative transition routine. Both the timeout
// path and the submission gate's early advance land here; the guard makes
// it a no-op once the phase instance has already been left.
func (r *Room) advanceFrom(phase Phase, epoch int) {
	if r.closed || r.phase != phase || r.timer.epoch != epoch {
		return
	}

	switch phase {
	case PhaseWaiting:
		if len(r.order) == 0 {
			logger.Infof("[room %s] empty room expired", r.id)
			r.destroy()
			return
		}
		r.clearTimer()
	case PhaseWriting:
		r.closeWriting()
	case PhaseDrawing:
		r.closeDrawing()
	case PhaseGuessing:
		r.closeGuessing()
	case PhaseReveal:
		r.finishReveal()
	}
}
