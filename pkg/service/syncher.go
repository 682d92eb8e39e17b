package service

import (
	"errors"
	"sync"
)

type Syncher interface {
	SetError(err error)
	Wait() error
}

func Sync(wg *sync.WaitGroup) Syncher {
	return &syncher{
		wait: wg,
	}
}

type syncher struct {
	lock sync.Mutex
	wait *sync.WaitGroup
	err  []error
}

func (s *syncher) SetError(err error) {
	if err != nil {
		s.lock.Lock()
		defer s.lock.Unlock()
		s.err = append(s.err, err)
	}
}

func (s *syncher) Wait() error {
	s.wait.Wait()
	s.lock.Lock()
	defer s.lock.Unlock()
	return errors.Join(s.err...)
}

// Trigger is a Syncher released by an explicit call to Trigger.
// Triggering more than once is a no-op.
type Trigger interface {
	Syncher
	Trigger()
}

func SyncTrigger() Trigger {
	return &trigger{
		done: make(chan struct{}),
	}
}

type trigger struct {
	once sync.Once
	lock sync.Mutex
	err  error
	done chan struct{}
}

var _ Trigger = (*trigger)(nil)

func (t *trigger) Trigger() {
	t.once.Do(func() { close(t.done) })
}

func (t *trigger) SetError(err error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.err = err
}

func (t *trigger) Wait() error {
	<-t.done
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.err
}
