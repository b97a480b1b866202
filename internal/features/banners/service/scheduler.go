package service

import (
	"time"

	"banner-buddy/internal/features/banners/ports"
)

type clockScheduler struct{}

// NewScheduler returns a scheduler backed by the runtime timer.
func NewScheduler() ports.Scheduler {
	return clockScheduler{}
}

func (clockScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
