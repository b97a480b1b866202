package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"banner-buddy/internal/core/cache"
	"banner-buddy/internal/core/logger"
	"banner-buddy/internal/features/banners/domain"
	"banner-buddy/internal/features/banners/ports"

	"go.uber.org/zap"
)

const activeBannersCacheKey = "active_banners"

// CachedProvider decorates a BannerProvider with a Redis cache of the record list.
// Failed fetches are never cached.
type CachedProvider struct {
	next  ports.BannerProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProvider creates a new CachedProvider. A ttl of 0 disables caching.
func NewCachedProvider(next ports.BannerProvider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

// FetchActiveBanners serves the cached list when present, otherwise fetches and caches it.
func (p *CachedProvider) FetchActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	if p.ttl <= 0 {
		return p.next.FetchActiveBanners(ctx)
	}

	if banners, ok := p.lookup(ctx); ok {
		return banners, nil
	}

	banners, err := p.next.FetchActiveBanners(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(banners)
	if err != nil {
		logger.Get().Warn("Failed to marshal banners for cache", zap.Error(err))
		return banners, nil
	}
	if err := p.cache.Set(ctx, activeBannersCacheKey, data, p.ttl); err != nil {
		logger.Get().Warn("Failed to cache banners", zap.Error(err))
	}

	return banners, nil
}

func (p *CachedProvider) lookup(ctx context.Context) ([]domain.Banner, bool) {
	data, err := p.cache.Get(ctx, activeBannersCacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			logger.Get().Warn("Failed to read banner cache", zap.Error(err))
		}
		return nil, false
	}

	var banners []domain.Banner
	if err := json.Unmarshal(data, &banners); err != nil {
		logger.Get().Warn("Discarding unreadable banner cache entry", zap.Error(err))
		return nil, false
	}
	return banners, true
}
