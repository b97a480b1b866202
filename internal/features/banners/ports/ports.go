package ports

import (
	"context"
	"time"

	"banner-buddy/internal/features/banners/domain"
	theming "banner-buddy/internal/features/theming/domain"
)

// BannerProvider defines the secondary port for fetching banner records.
// Implementations return active banners ordered by start date, newest first.
// Failures are reported as *domain.FetchError.
type BannerProvider interface {
	FetchActiveBanners(ctx context.Context) ([]domain.Banner, error)
}

// DismissalStore defines the secondary port for session-scoped dismissal memory.
type DismissalStore interface {
	// Load returns the dismissed banner ids of a session, in dismissal order.
	// A session without stored dismissals yields an empty list.
	Load(ctx context.Context, sessionID string) ([]string, error)
	// Save replaces the stored ids of a session with the full list.
	Save(ctx context.Context, sessionID string, ids []string) error
}

// Timer is a pending one-shot callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// MountRequest carries the inputs of a new display session.
type MountRequest struct {
	// SessionID identifies the browsing session. A new id is generated when empty.
	SessionID string `json:"sessionId"`
	// BannerConfig is the grouped configuration object. It may be nil.
	BannerConfig theming.Config `json:"bannerConfig"`
}

// SessionService defines the primary port for display sessions.
type SessionService interface {
	Mount(ctx context.Context, req MountRequest) (*domain.DisplayView, error)
	View(ctx context.Context, sessionID string) (*domain.DisplayView, error)
	Refresh(ctx context.Context, sessionID string) (*domain.DisplayView, error)
	Dismiss(ctx context.Context, sessionID string) (*domain.DisplayView, error)
	UpdateConfig(ctx context.Context, sessionID string, grouped theming.Config) (*domain.DisplayView, error)
	Unmount(ctx context.Context, sessionID string) error
	ActiveBanners(ctx context.Context) ([]domain.Banner, error)
}
