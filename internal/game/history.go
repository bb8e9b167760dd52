package game

type StepKind string

const (
	StepPrompt  StepKind = "prompt"
	StepDrawing StepKind = "drawing"
	StepGuess   StepKind = "guess"
)

// ContributionStep is one link in a chain: a prompt text, a strokes payload,
// or a guess text. Drawing payloads are opaque to the server.
type ContributionStep struct {
	Kind StepKind `json:"type"`
	By   string   `json:"by"`
	Data any      `json:"data"`
}

// HistoryEntry is the chain started by one owner's prompt. Steps are
// append-only within a round.
type HistoryEntry struct {
	Owner    string             `json:"owner"`
	Sequence []ContributionStep `json:"sequence"`
}

func (e *HistoryEntry) hasStep(kind StepKind) bool {
	for _, s := range e.Sequence {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

func (e *HistoryEntry) stepData(kind StepKind) (any, bool) {
	for _, s := range e.Sequence {
		if s.Kind == kind {
			return s.Data, true
		}
	}
	return nil, false
}

func (e *HistoryEntry) addStep(kind StepKind, by string, data any) {
	e.Sequence = append(e.Sequence, ContributionStep{Kind: kind, By: by, Data: data})
}

func entryFor(history []*HistoryEntry, owner string) *HistoryEntry {
	for _, e := range history {
		if e.Owner == owner {
			return e
		}
	}
	return nil
}

func countWithStep(history []*HistoryEntry, kind StepKind) int {
	n := 0
	for _, e := range history {
		if e.hasStep(kind) {
			n++
		}
	}
	return n
}
