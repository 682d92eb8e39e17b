package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/service", "service group")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// Service is a long running part of a process, for example the http
// server exposing a mesh base.
// Start returns a Syncher released when the service is ready to serve and
// one released when it has terminated.
type Service interface {
	Start(ctx context.Context) (ready Syncher, done Syncher, err error)
	Wait() error
}

// Services is a group of services sharing one context.
// If one of them fails to start, the context of all members is canceled.
type Services interface {
	Add(s Service) error
	Start(st ...Service) error
	Stop()
	Wait() error
}

type member struct {
	name string
	done Syncher
}

type services struct {
	lock    sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	members map[Service]*member
	started bool
	wg      sync.WaitGroup
	errs    []error
}

func New(ctx context.Context) Services {
	ctx, cancel := context.WithCancel(ctx)
	return &services{
		ctx:     ctx,
		cancel:  cancel,
		members: map[Service]*member{},
	}
}

// Add adds a service to the group. If the group is already running,
// the service is started immediately and Add waits for it to be ready.
func (t *services) Add(s Service) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.members[s]; ok {
		return nil
	}
	t.members[s] = &member{name: fmt.Sprintf("%T", s)}
	if !t.started {
		return nil
	}
	return t.startServices(s)
}

// Start starts the given services or, if none are given, all services added
// so far. It returns after all started services are ready.
func (t *services) Start(st ...Service) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(st) == 0 {
		if t.started {
			return nil
		}
		t.started = true
		for s := range t.members {
			st = append(st, s)
		}
	} else {
		for _, s := range st {
			if t.members[s] == nil {
				t.members[s] = &member{name: fmt.Sprintf("%T", s)}
			}
		}
	}
	return t.startServices(st...)
}

func (t *services) startServices(list ...Service) error {
	var ready []Syncher
	for _, s := range list {
		m := t.members[s]
		if m.done != nil {
			continue
		}
		r, err := t.start(s, m)
		if err != nil {
			t.cancel()
			return err
		}
		if r != nil {
			ready = append(ready, r)
		}
	}

	for _, r := range ready {
		if err := r.Wait(); err != nil {
			t.cancel()
			return err
		}
	}
	return nil
}

func (t *services) start(s Service, m *member) (Syncher, error) {
	log.Debug("starting service {{service}}", "service", m.name)
	ready, done, err := s.Start(t.ctx)
	if err != nil {
		return nil, fmt.Errorf("service %s: %w", m.name, err)
	}
	if done == nil {
		return nil, fmt.Errorf("service %s does not return a done syncher", m.name)
	}
	m.done = done
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		err := done.Wait()
		if err != nil {
			log.Error("service {{service}} failed", "service", m.name, "error", err)
			t.lock.Lock()
			t.errs = append(t.errs, fmt.Errorf("service %s: %w", m.name, err))
			t.lock.Unlock()
		} else {
			log.Debug("service {{service}} finished", "service", m.name)
		}
	}()
	return ready, nil
}

// Stop cancels the context shared by the services of the group.
func (t *services) Stop() {
	t.cancel()
}

// Wait waits for all started services to finish and returns
// their joined errors.
func (t *services) Wait() error {
	t.wg.Wait()
	t.lock.Lock()
	defer t.lock.Unlock()
	return errors.Join(t.errs...)
}
