package utils

import (
	"context"
	"sync"
)

// Sync is the waiting side of a sync point. Wait returns false if the
// context is canceled before the point is reached.
type Sync interface {
	Wait(ctx context.Context) bool
}

// SyncTrigger is the signaling side of a sync point.
// Calling Done more than once is allowed.
type SyncTrigger interface {
	Done()
}

type syncPoint struct {
	once    sync.Once
	reached chan struct{}
}

func NewSyncPoint() (Sync, SyncTrigger) {
	s := &syncPoint{
		reached: make(chan struct{}),
	}
	return s, s
}

func (s *syncPoint) Wait(ctx context.Context) bool {
	select {
	case <-s.reached:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *syncPoint) Done() {
	s.once.Do(func() { close(s.reached) })
}
