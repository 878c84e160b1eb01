package throttle

import (
	"fmt"
	"sync"
)

// Group hands out one Throttle per key, created lazily from shared Options.
type Group struct {
	opt Options

	mu        sync.Mutex
	throttles map[string]*Throttle
}

func NewGroup(opt Options) *Group {
	return &Group{
		opt:       opt,
		throttles: make(map[string]*Throttle),
	}
}

func (g *Group) Accept(key string) bool {
	return g.Get(key).Accept()
}

func (g *Group) Decide(key string) Decision {
	return g.Get(key).Decide()
}

// Get returns the throttle for key, creating it on first use. The group lock
// is released before the caller runs any check on it.
func (g *Group) Get(key string) *Throttle {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.throttles[key]
	if !ok {
		opt := g.opt
		opt.Name = Key(g.opt.Name, key)
		t = NewWithOptions(opt)
		g.throttles[key] = t
	}
	return t
}

// Forget drops the throttle for key. The next call for key starts fresh.
func (g *Group) Forget(key string) {
	g.mu.Lock()
	delete(g.throttles, key)
	g.mu.Unlock()
}

func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.throttles)
}

// Key joins a group prefix and a member key into a throttle name.
func Key(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", prefix, key)
}
