package game

import (
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// --- Emitter ---

// recorderEmitter captures everything the core emits so scenario tests can
// assert on the outbound traffic.
type emitted struct {
	To      []string
	Event   string
	Payload any
	Uni     bool
}

type recorderEmitter struct {
	mu     sync.Mutex
	events []emitted
}

func (re *recorderEmitter) Broadcast(to []string, event string, v any) {
	re.mu.Lock()
	defer re.mu.Unlock()
	re.events = append(re.events, emitted{To: to, Event: event, Payload: v})
}

func (re *recorderEmitter) Unicast(to string, event string, v any) {
	re.mu.Lock()
	defer re.mu.Unlock()
	re.events = append(re.events, emitted{To: []string{to}, Event: event, Payload: v, Uni: true})
}

func (re *recorderEmitter) byEvent(name string) []emitted {
	re.mu.Lock()
	defer re.mu.Unlock()
	var out []emitted
	for _, e := range re.events {
		if e.Event == name {
			out = append(out, e)
		}
	}
	return out
}

func (re *recorderEmitter) reset() {
	re.mu.Lock()
	defer re.mu.Unlock()
	re.events = nil
}

// --- PeriodicTickerChannelCreator ---

type MockPeriodicTickerChannelCreator struct {
	mock.Mock
}

func (m *MockPeriodicTickerChannelCreator) Create(duration time.Duration) <-chan time.Time {
	args := m.Called(duration)
	return args.Get(0).(chan time.Time)
}

// --- roomParent ---

type stubParent struct {
	mu      sync.Mutex
	removed []string
}

func (p *stubParent) removeRoom(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removed = append(p.removed, id)
}
