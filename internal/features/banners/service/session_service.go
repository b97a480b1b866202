package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"banner-buddy/internal/core/logger"
	"banner-buddy/internal/core/metrics"
	"banner-buddy/internal/features/banners/domain"
	"banner-buddy/internal/features/banners/ports"
	theming "banner-buddy/internal/features/theming/domain"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const fetchKey = "active_banners"

// SessionOptions configures a SessionServiceImpl.
type SessionOptions struct {
	// Individual is the individually-set value layer shared by every session.
	Individual theming.Config
	// Scheduler runs auto-dismiss timers. Defaults to the runtime timer.
	Scheduler ports.Scheduler
	// AutoDismissDelay defaults to DefaultAutoDismissDelay.
	AutoDismissDelay time.Duration
	// TTL is the idle lifetime of a session; 0 keeps sessions until evicted by size.
	TTL time.Duration
	// MaxSessions bounds the registry; 0 means unbounded.
	MaxSessions int
	Metrics     *metrics.Metrics
}

type session struct {
	id string
	// mu guards grouped.
	mu         sync.Mutex
	grouped    theming.Config
	controller *Controller
}

// SessionServiceImpl implements ports.SessionService.
type SessionServiceImpl struct {
	provider ports.BannerProvider
	store    ports.DismissalStore
	opts     SessionOptions

	// mu serializes registration so a remount replaces exactly one instance.
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
	group    singleflight.Group
}

// NewSessionService creates a new SessionServiceImpl.
// Evicted or expired sessions are torn down, which cancels their timers.
func NewSessionService(provider ports.BannerProvider, store ports.DismissalStore, opts SessionOptions) *SessionServiceImpl {
	s := &SessionServiceImpl{
		provider: provider,
		store:    store,
		opts:     opts,
	}
	s.sessions = expirable.NewLRU[string, *session](opts.MaxSessions, s.onEvict, opts.TTL)
	return s
}

func (s *SessionServiceImpl) onEvict(id string, sess *session) {
	if sess.controller.Closed() {
		return
	}
	sess.controller.Close()
	s.opts.Metrics.SessionClosed()
	logger.Get().Debug("Display session closed", zap.String("session_id", id))
}

// Mount creates a display session, replacing any previous one under the same id,
// and loads the active banners into it. A fetch failure still mounts the session;
// the provider errors are reported in the view.
func (s *SessionServiceImpl) Mount(ctx context.Context, req ports.MountRequest) (*domain.DisplayView, error) {
	id := req.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	sess := &session{
		id:      id,
		grouped: maps.Clone(req.BannerConfig),
	}
	mode := theming.ResolveMode(s.layers(sess.grouped))
	sess.controller = NewController(id, mode, s.store,
		WithScheduler(s.opts.Scheduler),
		WithAutoDismissDelay(s.opts.AutoDismissDelay),
		WithMetrics(s.opts.Metrics),
	)

	s.mu.Lock()
	s.sessions.Remove(id)
	s.sessions.Add(id, sess)
	s.mu.Unlock()
	s.opts.Metrics.SessionOpened()

	logger.Get().Info("Display session mounted",
		zap.String("session_id", id),
		zap.String("mode", string(mode)),
	)

	banners, fetchErr := s.fetch(ctx)
	if fetchErr != nil {
		if err := sess.controller.SetMode(ctx, mode); err != nil {
			return nil, err
		}
		return s.view(sess, fetchErr.Errors), nil
	}

	if err := sess.controller.Load(ctx, banners); err != nil {
		return nil, err
	}
	return s.view(sess, nil), nil
}

// View returns the current view-model of a session.
func (s *SessionServiceImpl) View(ctx context.Context, sessionID string) (*domain.DisplayView, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sess, nil), nil
}

// Refresh refetches the banners. On failure the previous banners stay in place.
func (s *SessionServiceImpl) Refresh(ctx context.Context, sessionID string) (*domain.DisplayView, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	banners, fetchErr := s.fetch(ctx)
	if fetchErr != nil {
		return s.view(sess, fetchErr.Errors), nil
	}

	if err := sess.controller.Load(ctx, banners); err != nil {
		return nil, err
	}
	return s.view(sess, nil), nil
}

// Dismiss explicitly dismisses the current sticky banner of a session.
func (s *SessionServiceImpl) Dismiss(ctx context.Context, sessionID string) (*domain.DisplayView, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	bannerID, err := sess.controller.Dismiss(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrControllerClosed) {
			return nil, err
		}
		return nil, fmt.Errorf("service: failed to dismiss banner: %w", err)
	}

	if bannerID != "" {
		logger.Get().Info("Banner dismissed",
			zap.String("session_id", sessionID),
			zap.String("banner_id", bannerID),
		)
	}
	return s.view(sess, nil), nil
}

// UpdateConfig replaces the grouped configuration of a session and re-applies its mode.
func (s *SessionServiceImpl) UpdateConfig(ctx context.Context, sessionID string, grouped theming.Config) (*domain.DisplayView, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.grouped = maps.Clone(grouped)
	mode := theming.ResolveMode(s.layers(sess.grouped))
	sess.mu.Unlock()

	if err := sess.controller.SetMode(ctx, mode); err != nil {
		return nil, err
	}
	return s.view(sess, nil), nil
}

// Unmount tears a session down.
func (s *SessionServiceImpl) Unmount(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sessions.Remove(sessionID) {
		return domain.ErrSessionNotFound
	}
	return nil
}

// ActiveBanners returns the provider's current active banners.
func (s *SessionServiceImpl) ActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	banners, fetchErr := s.fetch(ctx)
	if fetchErr != nil {
		return nil, fetchErr
	}
	return banners, nil
}

// Len returns the number of mounted sessions.
func (s *SessionServiceImpl) Len() int {
	return s.sessions.Len()
}

// Close tears down every session.
func (s *SessionServiceImpl) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Purge()
}

// get returns a live session and renews its expiry, so TTL counts from the last use.
func (s *SessionServiceImpl) get(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok || sess.controller.Closed() {
		return nil, domain.ErrSessionNotFound
	}

	s.sessions.Add(sessionID, sess)
	// The entry may have expired between Get and Add.
	if sess.controller.Closed() {
		s.sessions.Remove(sessionID)
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// fetch collapses concurrent provider calls into one.
func (s *SessionServiceImpl) fetch(ctx context.Context) ([]domain.Banner, *domain.FetchError) {
	v, err, _ := s.group.Do(fetchKey, func() (any, error) {
		return s.provider.FetchActiveBanners(ctx)
	})
	if err != nil {
		s.opts.Metrics.ObserveFetch(metrics.FetchError)
		logger.Get().Error("Error fetching banners", zap.Error(err))

		var fe *domain.FetchError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, domain.NewFetchError(err)
	}

	s.opts.Metrics.ObserveFetch(metrics.FetchSuccess)
	banners, _ := v.([]domain.Banner)
	return banners, nil
}

func (s *SessionServiceImpl) layers(grouped theming.Config) theming.Layers {
	return theming.Layers{Grouped: grouped, Individual: s.opts.Individual}
}

func (s *SessionServiceImpl) view(sess *session, errs []domain.ProviderError) *domain.DisplayView {
	sess.mu.Lock()
	grouped := sess.grouped
	sess.mu.Unlock()

	v := ComposeView(sess.id, sess.controller.Snapshot(), s.layers(grouped))
	v.Errors = errs
	return v
}
