package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"banner-buddy/internal/core/logger"
	"banner-buddy/internal/core/metrics"
	"banner-buddy/internal/features/banners/domain"
	"banner-buddy/internal/features/banners/ports"
	theming "banner-buddy/internal/features/theming/domain"

	"go.uber.org/zap"
)

// DefaultAutoDismissDelay is how long a sticky banner stays before it rotates away.
const DefaultAutoDismissDelay = 15 * time.Second

// Controller owns the banner state of one display session: the fetched banners,
// the mode, the dismissed ids and the single pending auto-dismiss timer.
type Controller struct {
	mu sync.Mutex

	sessionID string
	store     ports.DismissalStore
	scheduler ports.Scheduler
	delay     time.Duration
	metrics   *metrics.Metrics

	mode      theming.Mode
	banners   []domain.Banner
	dismissed map[string]struct{}
	order     []string

	timer ports.Timer
	// generation invalidates callbacks of cancelled or superseded timers.
	generation uint64
	closed     bool
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithScheduler sets the scheduler used for auto-dismiss timers.
func WithScheduler(s ports.Scheduler) ControllerOption {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithAutoDismissDelay overrides DefaultAutoDismissDelay.
func WithAutoDismissDelay(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithMetrics records dismissals on m.
func WithMetrics(m *metrics.Metrics) ControllerOption {
	return func(c *Controller) {
		c.metrics = m
	}
}

// NewController creates the controller of a display session in the given mode.
// No timer is armed until banners are loaded.
func NewController(sessionID string, mode theming.Mode, store ports.DismissalStore, opts ...ControllerOption) *Controller {
	c := &Controller{
		sessionID: sessionID,
		store:     store,
		scheduler: NewScheduler(),
		delay:     DefaultAutoDismissDelay,
		mode:      mode,
		dismissed: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Mode theming.Mode
	// Visible are the active banners on screen: all of them in ticker mode,
	// the undismissed ones in sticky mode.
	Visible []domain.Banner
	// Current is the first visible banner, or the zero placeholder.
	Current      domain.Banner
	Dismissed    []string
	TimerPending bool
}

// Load replaces the banners wholesale and re-enters mode sync.
func (c *Controller) Load(ctx context.Context, banners []domain.Banner) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrControllerClosed
	}

	c.banners = append([]domain.Banner(nil), banners...)
	c.syncModeLocked(ctx)
	return nil
}

// SetMode changes the display mode and re-enters mode sync, even when the mode is unchanged.
func (c *Controller) SetMode(ctx context.Context, mode theming.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrControllerClosed
	}

	c.mode = mode
	c.syncModeLocked(ctx)
	return nil
}

// Dismiss hides the current sticky banner for the rest of the session and persists
// the full dismissed set. It returns the dismissed id, or "" when nothing was dismissed.
// Dismissing in ticker mode is a no-op.
func (c *Controller) Dismiss(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return "", domain.ErrControllerClosed
	}
	if c.mode != theming.ModeSticky {
		return "", nil
	}

	c.clearTimerLocked()

	current, ok := c.currentLocked()
	if !ok {
		return "", nil
	}

	c.addDismissedLocked(current.ID)
	c.metrics.ObserveDismissal(metrics.DismissExplicit)

	var saveErr error
	if err := c.store.Save(ctx, c.sessionID, c.dismissedLocked()); err != nil {
		saveErr = fmt.Errorf("lifecycle: failed to persist dismissed banners: %w", err)
	}

	c.armLocked()
	return current.ID, saveErr
}

// Close cancels the pending timer. Every later call fails with domain.ErrControllerClosed
// and no timer callback acts after Close returns.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearTimerLocked()
	c.closed = true
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := c.visibleLocked()
	var current domain.Banner
	if len(visible) > 0 {
		current = visible[0]
	}

	return Snapshot{
		Mode:         c.mode,
		Visible:      visible,
		Current:      current,
		Dismissed:    c.dismissedLocked(),
		TimerPending: c.timer != nil,
	}
}

func (c *Controller) syncModeLocked(ctx context.Context) {
	if c.mode == theming.ModeTicker {
		c.clearTimerLocked()
		return
	}

	c.loadDismissedLocked(ctx)
	c.armLocked()
}

// loadDismissedLocked replaces the in-memory set with the stored one,
// dropping ids that were only auto-dismissed.
func (c *Controller) loadDismissedLocked(ctx context.Context) {
	ids, err := c.store.Load(ctx, c.sessionID)
	if err != nil {
		logger.Get().Warn("Failed to load dismissed banners, keeping in-memory state",
			zap.String("session_id", c.sessionID),
			zap.Error(err),
		)
		return
	}

	c.dismissed = make(map[string]struct{}, len(ids))
	c.order = c.order[:0]
	for _, id := range ids {
		c.addDismissedLocked(id)
	}
}

func (c *Controller) armLocked() {
	c.clearTimerLocked()

	if c.mode != theming.ModeSticky {
		return
	}
	if _, ok := c.currentLocked(); !ok {
		return
	}

	gen := c.generation
	c.timer = c.scheduler.AfterFunc(c.delay, func() {
		c.autoDismiss(gen)
	})
}

func (c *Controller) clearTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

// autoDismiss hides the current banner without persisting it.
func (c *Controller) autoDismiss(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation {
		return
	}
	if c.mode != theming.ModeSticky {
		return
	}

	c.clearTimerLocked()

	current, ok := c.currentLocked()
	if !ok {
		return
	}

	c.addDismissedLocked(current.ID)
	c.metrics.ObserveDismissal(metrics.DismissAuto)
	logger.Get().Debug("Banner auto-dismissed",
		zap.String("session_id", c.sessionID),
		zap.String("banner_id", current.ID),
	)

	c.armLocked()
}

func (c *Controller) addDismissedLocked(id string) {
	if _, ok := c.dismissed[id]; ok {
		return
	}
	c.dismissed[id] = struct{}{}
	c.order = append(c.order, id)
}

func (c *Controller) dismissedLocked() []string {
	return append([]string{}, c.order...)
}

func (c *Controller) visibleLocked() []domain.Banner {
	active := domain.FilterActive(c.banners)
	if c.mode == theming.ModeTicker {
		return active
	}

	visible := active[:0]
	for _, b := range active {
		if _, ok := c.dismissed[b.ID]; !ok {
			visible = append(visible, b)
		}
	}
	return visible
}

func (c *Controller) currentLocked() (domain.Banner, bool) {
	visible := c.visibleLocked()
	if len(visible) == 0 || visible[0].ID == "" {
		return domain.Banner{}, false
	}
	return visible[0], true
}
