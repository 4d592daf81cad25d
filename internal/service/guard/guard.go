package guard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

// Guard allows at most one in-flight generation per key. Acquire returns a
// BusyError while the key is held; the returned release is idempotent.
// Locks expire after the TTL so a crashed holder cannot block forever.
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// NormalizeKey maps an empty session id onto the shared global key.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return constants.GuardConfig.GlobalKey
	}
	return key
}

type memoryLock struct {
	token   string
	expires time.Time
}

// MemoryGuard is the single-process Guard.
type MemoryGuard struct {
	mu    sync.Mutex
	locks map[string]memoryLock
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	if ttl <= 0 {
		ttl = constants.GuardConfig.DefaultTTL
	}
	return &MemoryGuard{
		locks: make(map[string]memoryLock),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) (func(), error) {
	key = NormalizeKey(key)
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if lock, ok := g.locks[key]; ok && now.Before(lock.expires) {
		return nil, errors.NewBusyError(key)
	}

	token := uuid.NewString()
	g.locks[key] = memoryLock{token: token, expires: now.Add(g.ttl)}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			if lock, ok := g.locks[key]; ok && lock.token == token {
				delete(g.locks, key)
			}
		})
	}, nil
}

// Held reports whether key is currently locked.
func (g *MemoryGuard) Held(key string) bool {
	key = NormalizeKey(key)
	g.mu.Lock()
	defer g.mu.Unlock()
	lock, ok := g.locks[key]
	return ok && g.now().Before(lock.expires)
}
