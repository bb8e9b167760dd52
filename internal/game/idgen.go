package game

import (
	"math/rand"
	"sync"
)

// Room codes are short and human-typable. The in-use set guards against the
// (unlikely) accidental collision; Dispose returns a code to the pool once
// its room is destroyed.

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const codeLength = 5

type Idgen struct {
	mu    sync.Mutex
	inUse map[string]struct{}
}

func NewIdgen() *Idgen {
	return &Idgen{inUse: make(map[string]struct{})}
}

func (g *Idgen) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		buf := make([]byte, codeLength)
		for i := range buf {
			buf[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
		}
		id := string(buf)
		if _, taken := g.inUse[id]; !taken {
			g.inUse[id] = struct{}{}
			return id
		}
	}
}

func (g *Idgen) Dispose(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inUse, id)
}
