package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/application/user"
	"github.com/synerjet/bendesk/internal/infrastructure/auth"
	"github.com/synerjet/bendesk/internal/infrastructure/cache"
	"github.com/synerjet/bendesk/internal/infrastructure/config"
	"github.com/synerjet/bendesk/internal/infrastructure/email"
	"github.com/synerjet/bendesk/internal/infrastructure/metrics"
	"github.com/synerjet/bendesk/internal/infrastructure/ratelimit"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
	"github.com/synerjet/bendesk/internal/interfaces/http/handlers"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers of the HTTP server and wires them together.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	metrics *metrics.Metrics

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	checker        authorization.Checker

	// Infrastructure services shared by several use cases
	jwtSvc       *auth.JWTService
	hasher       *auth.BcryptPasswordHasher
	tokenCache   cache.TokenCache
	loginLimiter ratelimit.RateLimiter
	closers      []func() error
	files        *storage.FileStore
	notifier     *email.TicketNotifier
	avatars      handlers.AvatarSource
	userService  *user.Service
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, m *metrics.Metrics, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		log:     log,
		metrics: m,
	}

	// Section 1: infrastructure services and repositories
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Section 2: authorization policy
	if err := c.initAuthorization(); err != nil {
		c.Close()
		return nil, err
	}

	// Section 3: use cases
	c.initUseCases()

	// Section 4: handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Close releases the resources opened by the container.
func (c *Container) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.log.Warnw("failed to release resource", "error", err)
		}
	}
	c.closers = nil
}

func wrapInit(what string, err error) error {
	return fmt.Errorf("failed to initialize %s: %w", what, err)
}
