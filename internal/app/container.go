package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/config"
	"github.com/kapu/pachinko-persona-lab/internal/server"
	"github.com/kapu/pachinko-persona-lab/internal/service/ai"
	"github.com/kapu/pachinko-persona-lab/internal/service/guard"
	"github.com/kapu/pachinko-persona-lab/internal/tui"
)

// Container bundles the assembled services shared by every surface.
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Generator *ai.PersonaGenerator

	closers []func()
}

// Build wires the generation service. No provider client is created here;
// the API key is looked up and the client built on each generation.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...ai.GeneratorOption) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	generator := ai.NewPersonaGenerator(ai.GeneratorConfig{
		Provider: cfg.AI.Provider,
		Model:    cfg.AI.Model,
	}, logger, opts...)

	logger.Info("Persona generator ready",
		zap.String("provider", generator.Provider()),
		zap.String("model", generator.Model()),
	)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Generator: generator,
	}, nil
}

// NewGuard returns the Redis guard when REDIS_ADDR is set, else an
// in-process one.
func (c *Container) NewGuard(ctx context.Context) (guard.Guard, error) {
	if !c.Config.Redis.Enabled() {
		c.Logger.Info("Using in-memory generation guard", zap.Duration("ttl", c.Config.Guard.TTL))
		return guard.NewMemoryGuard(c.Config.Guard.TTL), nil
	}

	redisGuard, err := guard.NewRedisGuard(ctx, guard.RedisConfig{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
		TTL:      c.Config.Guard.TTL,
	}, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis guard: %w", err)
	}
	c.closers = append(c.closers, func() {
		_ = redisGuard.Close()
	})
	return redisGuard, nil
}

// NewServer assembles the HTTP API.
func (c *Container) NewServer(ctx context.Context) (*server.Server, error) {
	g, err := c.NewGuard(ctx)
	if err != nil {
		return nil, err
	}
	handler := server.NewHandler(c.Generator, g, c.Logger)
	return server.New(c.Config.Server.Addr, server.NewRouter(handler, c.Logger), c.Logger), nil
}

// TUIOptions returns the terminal UI wiring.
func (c *Container) TUIOptions() tui.Options {
	return tui.Options{
		Generator: c.Generator,
		ExportDir: c.Config.Export.Dir,
		Logger:    c.Logger,
	}
}

// Close releases resources in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
