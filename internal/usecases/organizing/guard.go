package organizing

import (
	"context"
	"errors"
	"sync"
)

var ErrSuperseded = errors.New("selection superseded by a newer one")

// Guard lets only the newest check per session report a result. Starting a
// check cancels the context of the previous one for the same session.
type Guard struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]*ticket
}

type ticket struct {
	id     uint64
	cancel context.CancelFunc
}

func NewGuard() *Guard {
	return &Guard{inflight: map[string]*ticket{}}
}

// Run calls fn with a context that is cancelled when a newer Run starts for
// session. A superseded run returns ErrSuperseded whatever fn returned.
func (g *Guard) Run(ctx context.Context, session string, fn func(ctx context.Context) error) error {
	ctx, id := g.begin(ctx, session)
	err := fn(ctx)
	if !g.end(session, id) {
		return ErrSuperseded
	}
	return err
}

func (g *Guard) begin(ctx context.Context, session string) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.inflight[session]; ok {
		prev.cancel()
	}
	g.seq++
	g.inflight[session] = &ticket{id: g.seq, cancel: cancel}

	return ctx, g.seq
}

// end reports whether id was still the current check for session.
func (g *Guard) end(session string, id uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	current, ok := g.inflight[session]
	if !ok || current.id != id {
		return false
	}
	current.cancel()
	delete(g.inflight, session)
	return true
}
