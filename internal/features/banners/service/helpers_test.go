package service

import (
	"context"
	"sync"
	"time"

	"banner-buddy/internal/features/banners/domain"
	"banner-buddy/internal/features/banners/ports"

	"github.com/stretchr/testify/mock"
)

// manualScheduler records timers and fires them on demand.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	s       *manualScheduler
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// pending returns the timers neither stopped nor fired.
func (s *manualScheduler) pending() []*manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// fireAll runs every pending timer once, as if its delay elapsed.
func (s *manualScheduler) fireAll() int {
	timers := s.pending()
	for _, t := range timers {
		s.mu.Lock()
		t.fired = true
		s.mu.Unlock()
		t.f()
	}
	return len(timers)
}

// isStopped reports whether the timer was cancelled.
func (t *manualTimer) isStopped() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.stopped
}

// all returns every timer ever scheduled.
func (s *manualScheduler) all() []*manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*manualTimer(nil), s.timers...)
}

// memoryStore is an in-memory DismissalStore.
type memoryStore struct {
	mu      sync.Mutex
	data    map[string][]string
	saves   int
	loadErr error
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]string)}
}

func (m *memoryStore) Load(ctx context.Context, sessionID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]string{}, m.data[sessionID]...), nil
}

func (m *memoryStore) Save(ctx context.Context, sessionID string, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data[sessionID] = append([]string{}, ids...)
	return nil
}

func (m *memoryStore) stored(sessionID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[sessionID]
}

// MockBannerProvider is a mock implementation of ports.BannerProvider.
type MockBannerProvider struct {
	mock.Mock
}

func (m *MockBannerProvider) FetchActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Banner), args.Error(1)
}

func sampleBanners() []domain.Banner {
	return []domain.Banner{
		{ID: "b1", Name: "BB-0001", Status: domain.StatusActive, Variant: domain.VariantWarning, Title: "Maintenance tonight", StartDate: "2026-10-17"},
		{ID: "b2", Name: "BB-0002", Status: domain.StatusActive, Variant: domain.VariantInfo, Title: "Release notes", StartDate: "2026-10-10"},
		{ID: "b3", Name: "BB-0003", Status: domain.StatusActive, Variant: domain.VariantSuccess, Title: "Deployment complete", StartDate: "2026-10-01"},
	}
}
