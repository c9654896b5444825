package graph

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/synerjet/bendesk/internal/infrastructure/cache"
	"github.com/synerjet/bendesk/internal/shared/config"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

const (
	defaultScope  = "https://graph.microsoft.com/.default"
	tokenCacheKey = "graph:app_token"
	// expirySkew renews the token slightly before Graph rejects it.
	expirySkew = time.Minute
)

// tokenSource is the part of clientcredentials.Config the provider uses.
type tokenSource interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// TokenProvider returns an app-only Graph token, reusing the cached one
// until it is about to expire.
type TokenProvider struct {
	source tokenSource
	cache  cache.TokenCache
	now    func() time.Time
	logger logger.Interface
}

func NewTokenProvider(cfg config.MailConfig, tc cache.TokenCache, log logger.Interface) *TokenProvider {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL(),
		Scopes:       []string{defaultScope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return newTokenProvider(cc, tc, time.Now, log)
}

func newTokenProvider(src tokenSource, tc cache.TokenCache, now func() time.Time, log logger.Interface) *TokenProvider {
	return &TokenProvider{source: src, cache: tc, now: now, logger: log.With("component", "graph.token")}
}

func (p *TokenProvider) AccessToken(ctx context.Context) (string, error) {
	if tok, ok, err := p.cache.Get(ctx, tokenCacheKey); err != nil {
		p.logger.Warnw("token cache read failed, requesting a new token", "error", err)
	} else if ok {
		return tok, nil
	}

	tok, err := p.source.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to acquire graph token: %w", err)
	}

	if !tok.Expiry.IsZero() {
		ttl := tok.Expiry.Sub(p.now()) - expirySkew
		if err := p.cache.Set(ctx, tokenCacheKey, tok.AccessToken, ttl); err != nil {
			p.logger.Warnw("token cache write failed", "error", err)
		}
	}
	return tok.AccessToken, nil
}
