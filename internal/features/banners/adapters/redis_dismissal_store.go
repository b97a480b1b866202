package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"banner-buddy/internal/core/cache"
)

const dismissedBannersKey = "dismissedBanners"

// RedisDismissalStore implements ports.DismissalStore using the cache adaptation.
// Each session keeps a JSON array of banner ids that expires with the session.
type RedisDismissalStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisDismissalStore creates a new RedisDismissalStore.
func NewRedisDismissalStore(c cache.Cache, ttl time.Duration) *RedisDismissalStore {
	return &RedisDismissalStore{
		cache: c,
		ttl:   ttl,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID + ":" + dismissedBannersKey
}

// Load retrieves the dismissed ids of a session.
func (s *RedisDismissalStore) Load(ctx context.Context, sessionID string) ([]string, error) {
	data, err := s.cache.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get dismissed banners: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dismissed banners: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Save replaces the dismissed ids of a session.
func (s *RedisDismissalStore) Save(ctx context.Context, sessionID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal dismissed banners: %w", err)
	}

	if err := s.cache.Set(ctx, sessionKey(sessionID), data, s.ttl); err != nil {
		return fmt.Errorf("failed to save dismissed banners: %w", err)
	}
	return nil
}
