// Package confirm implements the two-step confirmation for destructive
// requests: the first request arms, a repeat within the TTL goes through.
package confirm

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultSize = 1024

// Key identifies one pending confirmation.
type Key struct {
	CallerID int64
	Kind     string
	TargetID int64
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%s:%d", k.CallerID, k.Kind, k.TargetID)
}

type Gate struct {
	mu    sync.Mutex
	armed *lru.Cache[Key, time.Time]
	ttl   time.Duration
	now   func() time.Time
}

func New(ttl time.Duration) (*Gate, error) {
	cache, err := lru.New[Key, time.Time](defaultSize)
	if err != nil {
		return nil, err
	}
	return &Gate{armed: cache, ttl: ttl, now: time.Now}, nil
}

// Check reports whether key is armed and not yet expired. Otherwise it arms
// key and returns false.
func (g *Gate) Check(key Key) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if expires, ok := g.armed.Get(key); ok && now.Before(expires) {
		return true
	}
	g.armed.Add(key, now.Add(g.ttl))
	return false
}

// Disarm drops a confirmation once the request it guarded has run.
func (g *Gate) Disarm(key Key) {
	g.armed.Remove(key)
}
