package http

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/infrastructure/config"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/database"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/identity"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/metrics"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/ratelimit"
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/middleware"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// Option customises the container before it is wired.
type Option func(*Container)

// WithTokenVerifier replaces the Keycloak verifier.
func WithTokenVerifier(v middleware.TokenVerifier) Option {
	return func(c *Container) {
		c.verifier = v
	}
}

// WithRedisClient supplies the rate limiter store. The container does not
// close a client it was given.
func WithRedisClient(client redis.UniversalClient) Option {
	return func(c *Container) {
		c.redis = client
	}
}

// Container holds the infrastructure components, repositories, use cases,
// handlers and middlewares, and wires them together.
type Container struct {
	// Core infrastructure
	db        *gorm.DB
	cfg       *config.Config
	log       logger.Interface
	redis     redis.UniversalClient
	ownsRedis bool
	metrics   *metrics.Metrics
	verifier  middleware.TokenVerifier

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	identityMiddleware *middleware.IdentityMiddleware
	rateLimiter        *middleware.RateLimitMiddleware
}

// NewContainer wires every dependency of the HTTP layer.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface, opts ...Option) (*Container, error) {
	c := &Container{
		db:  gdb,
		cfg: cfg,
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.repos = newRepositories(gdb)
	c.ucs = newUseCases(c.repos, log)
	c.hdlrs = newHandlers(c.ucs, database.NewHealthChecker(gdb), log)

	c.initMiddlewares()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if c.cfg.Metrics.Enabled {
		c.metrics = metrics.New()
		if err := c.db.Use(metrics.NewGormPlugin(c.metrics)); err != nil {
			return fmt.Errorf("failed to register database metrics: %w", err)
		}
	}

	if c.verifier == nil {
		c.verifier = identity.NewVerifier(&c.cfg.Identity, c.log)
	}

	if c.cfg.RateLimit.Enabled && c.redis == nil {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		c.ownsRedis = true
		c.log.Infow("rate limiting enabled", "redis", c.cfg.Redis.GetAddr())
	}

	return nil
}

func (c *Container) initMiddlewares() {
	c.identityMiddleware = middleware.NewIdentityMiddleware(c.verifier)

	if c.cfg.RateLimit.Enabled {
		c.rateLimiter = middleware.NewRateLimitMiddleware(
			ratelimit.NewRedisRateLimiter(c.redis),
			c.rejectionCounter(),
			c.log.Named("ratelimit"),
		)
	}
}

func (c *Container) rejectionCounter() *prometheus.CounterVec {
	if c.metrics == nil {
		return nil
	}
	return c.metrics.RateLimiterRejections
}

// Shutdown releases resources the container opened itself.
func (c *Container) Shutdown() {
	if closer, ok := c.verifier.(interface{ Close() }); ok {
		closer.Close()
	}
	if c.redis != nil && c.ownsRedis {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
