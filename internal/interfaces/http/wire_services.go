package http

import (
	"context"

	"github.com/synerjet/bendesk/internal/application/user"
	"github.com/synerjet/bendesk/internal/infrastructure/auth"
	"github.com/synerjet/bendesk/internal/infrastructure/cache"
	"github.com/synerjet/bendesk/internal/infrastructure/email"
	"github.com/synerjet/bendesk/internal/infrastructure/graph"
	"github.com/synerjet/bendesk/internal/infrastructure/permission"
	"github.com/synerjet/bendesk/internal/infrastructure/ratelimit"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/authorization"
)

// ============================================================
// Section 1: Infrastructure
// ============================================================

// initInfrastructure opens the token cache and upload directory and creates
// the repositories, auth services and notification channel.
func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, cfg, log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessTTL())
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, cfg.Auth.JWT.CookieName, log)
	c.userService = user.NewService(c.repos.userRepo, c.hasher, c.jwtSvc, log)

	files, err := storage.NewFileStore(cfg.Storage.UploadDir, cfg.Storage.MaxUploadSize, log)
	if err != nil {
		return wrapInit("upload storage", err)
	}
	c.files = files

	c.notifier = email.NewTicketNotifier(email.NewSender(cfg.Email, log), log)

	tokenCache, closeCache, err := cache.NewTokenCache(ctx, cfg.Mail, cfg.Redis)
	if err != nil {
		return wrapInit("token cache", err)
	}
	c.tokenCache = tokenCache
	c.closers = append(c.closers, closeCache)

	limiter, closeLimiter, err := ratelimit.NewLoginLimiter(ctx, cfg.Auth.LoginRateLimit, cfg.Redis)
	if err != nil {
		return wrapInit("login rate limiter", err)
	}
	c.loginLimiter = limiter
	c.closers = append(c.closers, closeLimiter)

	// Avatars come from the same directory tenant as the mailbox.
	if cfg.Mail.Enabled {
		tokens := graph.NewTokenProvider(cfg.Mail, tokenCache, log)
		c.avatars = graph.NewAvatarService(graph.NewClient(cfg.Mail, tokens, log), tokenCache, log)
	} else {
		c.avatars = noAvatars{}
		log.Infow("mail integration disabled, avatars fall back to initials")
	}
	return nil
}

// ============================================================
// Section 2: Authorization
// ============================================================

// initAuthorization chooses the role policy. With casbin the static grants
// are synced into the casbin_rule table on every start.
func (c *Container) initAuthorization() error {
	if !c.cfg.Authorization.UseCasbin {
		c.checker = authorization.StaticChecker{}
		return nil
	}

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return wrapInit("permission enforcer", err)
	}
	result, err := permission.NewPolicySync(enforcer, c.log).Sync()
	if err != nil {
		return wrapInit("permission policy", err)
	}
	c.log.Infow("permission policy synced", "added", result.Added, "removed", result.Removed)
	c.checker = enforcer
	return nil
}

type noAvatars struct{}

func (noAvatars) Avatar(context.Context, string) ([]byte, string, error) {
	return nil, "", graph.ErrPhotoNotFound
}
