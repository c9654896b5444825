package graph

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/synerjet/bendesk/internal/infrastructure/cache"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

const (
	avatarCachePrefix = "avatar:"
	avatarTTL         = 6 * time.Hour
	missingAvatarTTL  = 30 * time.Minute
	missingMarker     = "-"
)

type photoFetcher interface {
	Photo(ctx context.Context, email string) ([]byte, string, error)
}

// AvatarService serves directory photos, caching hits and misses so the
// ticket pages do not hit Graph on every render.
type AvatarService struct {
	photos photoFetcher
	cache  cache.TokenCache
	logger logger.Interface
}

func NewAvatarService(photos photoFetcher, tc cache.TokenCache, log logger.Interface) *AvatarService {
	return &AvatarService{photos: photos, cache: tc, logger: log.With("component", "graph.avatar")}
}

// Avatar returns ErrPhotoNotFound when the user has no photo.
func (s *AvatarService) Avatar(ctx context.Context, email string) ([]byte, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	key := avatarCachePrefix + email

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warnw("avatar cache read failed", "email", email, "error", err)
	} else if ok {
		if cached == missingMarker {
			return nil, "", ErrPhotoNotFound
		}
		if data, contentType, ok := decodeAvatar(cached); ok {
			return data, contentType, nil
		}
	}

	data, contentType, err := s.photos.Photo(ctx, email)
	if errors.Is(err, ErrPhotoNotFound) {
		s.store(ctx, key, missingMarker, missingAvatarTTL)
		return nil, "", err
	}
	if err != nil {
		return nil, "", err
	}
	s.store(ctx, key, contentType+";"+base64.StdEncoding.EncodeToString(data), avatarTTL)
	return data, contentType, nil
}

func (s *AvatarService) store(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warnw("avatar cache write failed", "key", key, "error", err)
	}
}

func decodeAvatar(v string) ([]byte, string, bool) {
	contentType, encoded, ok := strings.Cut(v, ";")
	if !ok {
		return nil, "", false
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", false
	}
	return data, contentType, true
}
