package guard

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

func assertBusy(t *testing.T, err error) {
	t.Helper()
	var busy *errors.BusyError
	if !stderrors.As(err, &busy) {
		t.Fatalf("expected busy error, got %v", err)
	}
}

func exerciseGuard(t *testing.T, g Guard) {
	t.Helper()
	ctx := context.Background()

	release, err := g.Acquire(ctx, "session-a")
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}

	_, err = g.Acquire(ctx, "session-a")
	assertBusy(t, err)

	other, err := g.Acquire(ctx, "session-b")
	if err != nil {
		t.Fatalf("independent key must not be blocked: %v", err)
	}
	other()

	release()
	release()

	again, err := g.Acquire(ctx, "session-a")
	if err != nil {
		t.Fatalf("acquire after release failed: %v", err)
	}
	again()
}

func TestMemoryGuard(t *testing.T) {
	exerciseGuard(t, NewMemoryGuard(time.Minute))
}

func TestMemoryGuardExpires(t *testing.T) {
	g := NewMemoryGuard(time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	staleRelease, err := g.Acquire(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Held("global") {
		t.Fatalf("empty key must map to the global key")
	}

	now = now.Add(2 * time.Minute)
	fresh, err := g.Acquire(context.Background(), "")
	if err != nil {
		t.Fatalf("expired lock must be reacquirable: %v", err)
	}

	staleRelease()
	if !g.Held("") {
		t.Fatalf("stale release must not drop the new holder's lock")
	}
	fresh()
	if g.Held("") {
		t.Fatalf("expected lock released")
	}
}

func TestMemoryGuardConcurrentAcquire(t *testing.T) {
	g := NewMemoryGuard(time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Acquire(context.Background(), "same"); err == nil {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if granted != 1 {
		t.Fatalf("expected exactly one holder, got %d", granted)
	}
}

func TestRedisGuard(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	g := NewRedisGuardWithClient(client, time.Minute, zap.NewNop())
	exerciseGuard(t, g)
}

func TestRedisGuardTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	g := NewRedisGuardWithClient(client, 30*time.Second, zap.NewNop())
	if _, err := g.Acquire(context.Background(), "s"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ttl := mr.TTL("personalab:inflight:s"); ttl != 30*time.Second {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	mr.FastForward(31 * time.Second)
	if _, err := g.Acquire(context.Background(), "s"); err != nil {
		t.Fatalf("expired lock must be reacquirable: %v", err)
	}
}

func TestNewRedisGuardPingFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisGuard(context.Background(), RedisConfig{Addr: addr}, zap.NewNop())
	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected config error, got %v", err)
	}
}
