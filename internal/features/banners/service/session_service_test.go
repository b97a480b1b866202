package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"banner-buddy/internal/features/banners/domain"
	"banner-buddy/internal/features/banners/ports"
	theming "banner-buddy/internal/features/theming/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, provider ports.BannerProvider, opts SessionOptions) (*SessionServiceImpl, *manualScheduler, *memoryStore) {
	t.Helper()
	sched := &manualScheduler{}
	store := newMemoryStore()
	if opts.Scheduler == nil {
		opts.Scheduler = sched
	}
	svc := NewSessionService(provider, store, opts)
	t.Cleanup(svc.Close)
	return svc, sched, store
}

func TestSessionService_Mount(t *testing.T) {
	ctx := context.Background()

	t.Run("Sticky", func(t *testing.T) {
		provider := new(MockBannerProvider)
		provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil).Once()
		svc, sched, _ := newTestSessionService(t, provider, SessionOptions{})

		view, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})

		require.NoError(t, err)
		assert.Equal(t, "s-1", view.SessionID)
		assert.Equal(t, theming.ModeSticky, view.Mode)
		assert.True(t, view.ShowStickyBanner)
		assert.False(t, view.ShowTickerBanner)
		assert.Equal(t, "b1", view.CurrentBanner.ID)
		assert.Equal(t, "utility:warning", view.CurrentBanner.IconName)
		assert.Empty(t, view.Errors)
		assert.Len(t, sched.pending(), 1)
		provider.AssertExpectations(t)
	})

	t.Run("TickerFromGroupedConfig", func(t *testing.T) {
		provider := new(MockBannerProvider)
		provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil).Once()
		svc, sched, _ := newTestSessionService(t, provider, SessionOptions{
			Individual: theming.Config{"mode": "sticky", "tickerSpeedSeconds": "5"},
		})

		view, err := svc.Mount(ctx, ports.MountRequest{
			SessionID:    "s-1",
			BannerConfig: theming.Config{"mode": "ticker"},
		})

		require.NoError(t, err)
		assert.Equal(t, theming.ModeTicker, view.Mode)
		assert.True(t, view.ShowTickerBanner)
		require.Len(t, view.TickerItems, 3)
		assert.Equal(t, "b1-primary-0", view.TickerItems[0].Key)
		assert.Equal(t, "--bannerbuddy-ticker-duration: 18s;", view.TickerTrackStyle)
		assert.Empty(t, sched.pending())
	})

	t.Run("GeneratedID", func(t *testing.T) {
		provider := new(MockBannerProvider)
		provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
		svc, _, _ := newTestSessionService(t, provider, SessionOptions{})

		view, err := svc.Mount(ctx, ports.MountRequest{})

		require.NoError(t, err)
		assert.NotEmpty(t, view.SessionID)
		assert.Equal(t, 1, svc.Len())
	})

	t.Run("FetchErrorStillMounts", func(t *testing.T) {
		provider := new(MockBannerProvider)
		provider.On("FetchActiveBanners", mock.Anything).
			Return(nil, domain.NewFetchError(errors.New("graphql"), "INVALID_FIELD")).Once()
		svc, sched, _ := newTestSessionService(t, provider, SessionOptions{})

		view, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})

		require.NoError(t, err)
		assert.Equal(t, []domain.ProviderError{{Message: "INVALID_FIELD"}}, view.Errors)
		assert.False(t, view.ShowBanner)
		assert.Empty(t, view.CurrentBanner.ID)
		assert.Empty(t, sched.pending())
	})

	t.Run("PlainErrorBecomesFetchError", func(t *testing.T) {
		provider := new(MockBannerProvider)
		provider.On("FetchActiveBanners", mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()
		svc, _, _ := newTestSessionService(t, provider, SessionOptions{})

		view, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})

		require.NoError(t, err)
		assert.Equal(t, []domain.ProviderError{{Message: "dial tcp: refused"}}, view.Errors)
	})

	t.Run("RemountTearsDownPrevious", func(t *testing.T) {
		provider := new(MockBannerProvider)
		provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
		svc, sched, _ := newTestSessionService(t, provider, SessionOptions{})

		_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
		require.NoError(t, err)
		first := sched.pending()[0]

		_, err = svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
		require.NoError(t, err)

		assert.True(t, first.stopped)
		assert.Len(t, sched.pending(), 1)
		assert.Equal(t, 1, svc.Len())
	})
}

func TestSessionService_Refresh(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil).Once()
	svc, _, _ := newTestSessionService(t, provider, SessionOptions{})

	_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)

	t.Run("FailureKeepsPriorBanners", func(t *testing.T) {
		provider.On("FetchActiveBanners", mock.Anything).
			Return(nil, domain.NewFetchError(errors.New("timeout"))).Once()

		view, err := svc.Refresh(ctx, "s-1")

		require.NoError(t, err)
		assert.NotEmpty(t, view.Errors)
		assert.Equal(t, "b1", view.CurrentBanner.ID)
	})

	t.Run("SuccessReplaces", func(t *testing.T) {
		provider.On("FetchActiveBanners", mock.Anything).
			Return([]domain.Banner{{ID: "n1", Status: domain.StatusActive, Variant: domain.VariantError}}, nil).Once()

		view, err := svc.Refresh(ctx, "s-1")

		require.NoError(t, err)
		assert.Empty(t, view.Errors)
		assert.Equal(t, "n1", view.CurrentBanner.ID)
		assert.Equal(t, "utility:error", view.CurrentBanner.IconName)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	provider.AssertExpectations(t)
}

func TestSessionService_Dismiss(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
	svc, _, store := newTestSessionService(t, provider, SessionOptions{})

	_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)

	view, err := svc.Dismiss(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "b2", view.CurrentBanner.ID)
	assert.Equal(t, []string{"b1"}, view.Dismissed)
	assert.Equal(t, []string{"b1"}, store.stored("s-1"))

	// The dismissal survives a remount of the same browsing session.
	view, err = svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)
	assert.Equal(t, "b2", view.CurrentBanner.ID)

	t.Run("StoreFailure", func(t *testing.T) {
		store.saveErr = errors.New("redis down")
		defer func() { store.saveErr = nil }()

		_, err := svc.Dismiss(ctx, "s-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service: failed to dismiss banner")
	})

	t.Run("UnknownSession", func(t *testing.T) {
		_, err := svc.Dismiss(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestSessionService_UpdateConfig(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
	svc, sched, _ := newTestSessionService(t, provider, SessionOptions{})

	_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)
	require.Len(t, sched.pending(), 1)

	grouped := theming.Config{"mode": "ticker", "tokenPreset": "broadcast"}
	view, err := svc.UpdateConfig(ctx, "s-1", grouped)
	require.NoError(t, err)

	assert.Equal(t, theming.ModeTicker, view.Mode)
	assert.Equal(t, "broadcast", view.Tokens.Preset)
	assert.Empty(t, sched.pending())

	// The caller's map is copied.
	grouped["mode"] = "sticky"
	view, err = svc.View(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, theming.ModeTicker, view.Mode)

	_, err = svc.UpdateConfig(ctx, "missing", nil)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_Unmount(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
	svc, sched, _ := newTestSessionService(t, provider, SessionOptions{})

	_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)
	armed := sched.pending()[0]

	require.NoError(t, svc.Unmount(ctx, "s-1"))

	assert.True(t, armed.stopped)
	assert.Equal(t, 0, svc.Len())
	assert.ErrorIs(t, svc.Unmount(ctx, "s-1"), domain.ErrSessionNotFound)
	_, err = svc.View(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_EvictionClosesController(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
	svc, sched, _ := newTestSessionService(t, provider, SessionOptions{MaxSessions: 1})

	_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)
	first := sched.pending()[0]

	_, err = svc.Mount(ctx, ports.MountRequest{SessionID: "s-2"})
	require.NoError(t, err)

	assert.True(t, first.stopped, "evicting a session cancels its timer")
	assert.Equal(t, 1, svc.Len())
	_, err = svc.View(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_Expiry(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
	svc, sched, _ := newTestSessionService(t, provider, SessionOptions{TTL: 20 * time.Millisecond})

	_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)
	armed := sched.pending()[0]

	assert.Eventually(t, func() bool {
		_, err := svc.View(ctx, "s-1")
		return errors.Is(err, domain.ErrSessionNotFound)
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return len(sched.pending()) == 0
	}, time.Second, 5*time.Millisecond)
	assert.True(t, armed.isStopped())
}

func TestSessionService_UseRenewsExpiry(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
	ttl := 200 * time.Millisecond
	svc, _, _ := newTestSessionService(t, provider, SessionOptions{TTL: ttl})

	_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)

	deadline := time.Now().Add(2 * ttl)
	for time.Now().Before(deadline) {
		_, err := svc.View(ctx, "s-1")
		require.NoError(t, err, "a session in use must not expire")
		time.Sleep(25 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return svc.Len() == 0
	}, 2*time.Second, 10*time.Millisecond, "an idle session expires")
	_, err = svc.View(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_ClosedControllerIsGone(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil)
	svc, _, _ := newTestSessionService(t, provider, SessionOptions{})

	_, err := svc.Mount(ctx, ports.MountRequest{SessionID: "s-1"})
	require.NoError(t, err)

	sess, ok := svc.sessions.Get("s-1")
	require.True(t, ok)
	sess.controller.Close()

	_, err = svc.View(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.Dismiss(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_ActiveBanners(t *testing.T) {
	ctx := context.Background()
	provider := new(MockBannerProvider)
	provider.On("FetchActiveBanners", mock.Anything).Return(sampleBanners(), nil).Once()
	provider.On("FetchActiveBanners", mock.Anything).Return(nil, domain.NewFetchError(errors.New("boom"))).Once()
	svc, _, _ := newTestSessionService(t, provider, SessionOptions{})

	banners, err := svc.ActiveBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, banners, 3)

	_, err = svc.ActiveBanners(ctx)
	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "boom", fe.Errors[0].Message)
}
