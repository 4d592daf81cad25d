package guard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

// releaseScript deletes the lock only if it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisGuard shares the in-flight lock between server replicas.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisGuard(ctx context.Context, cfg RedisConfig, logger *zap.Logger) (*RedisGuard, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, constants.RedisConfig.ReadyTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		cfgErr := errors.NewConfigError("failed to connect to Redis", map[string]any{
			"addr": cfg.Addr,
		})
		cfgErr.Cause = err
		return nil, cfgErr
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB),
	)

	return NewRedisGuardWithClient(client, cfg.TTL, logger), nil
}

func NewRedisGuardWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisGuard {
	if ttl <= 0 {
		ttl = constants.GuardConfig.DefaultTTL
	}
	return &RedisGuard{client: client, ttl: ttl, logger: logger}
}

func lockKey(key string) string {
	return constants.GuardConfig.KeyPrefix + NormalizeKey(key)
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := lockKey(key)
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		g.logger.Error("Guard acquire failed", zap.String("key", redisKey), zap.Error(err))
		return nil, fmt.Errorf("acquire guard %s: %w", redisKey, err)
	}
	if !ok {
		return nil, errors.NewBusyError(NormalizeKey(key))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// 요청 ctx가 이미 취소됐을 수 있으므로 별도 ctx 사용
			releaseCtx, cancel := context.WithTimeout(context.Background(), constants.RedisConfig.ReadyTimeout)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, g.client, []string{redisKey}, token).Err(); err != nil {
				g.logger.Warn("Guard release failed", zap.String("key", redisKey), zap.Error(err))
			}
		})
	}, nil
}

func (g *RedisGuard) Close() error {
	return g.client.Close()
}
