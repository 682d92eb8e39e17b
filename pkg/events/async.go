package events

import (
	"context"
	"sync"
	"time"

	"k8s.io/client-go/util/workqueue"

	"github.com/mandelsoft/meshmodel/pkg/healthz"
)

// tick is the period of the health check of the dispatcher.
const tick = 30 * time.Second

type entry[I Id] struct {
	id I
}

// tickCmd is queued periodically to report the liveness
// of the worker.
type tickCmd struct{}

// AsyncHandler decouples event delivery from the triggering
// goroutine. Events are queued and delivered in order by a single
// worker, so a slow handler does not block the event source.
type AsyncHandler[I Id] struct {
	name    string
	handler EventHandler[I]
	queue   workqueue.RateLimitingInterface
	once    sync.Once
	done    chan struct{}
}

var _ EventHandler[Id] = (*AsyncHandler[Id])(nil)

func NewAsyncHandler[I Id](name string, h EventHandler[I]) *AsyncHandler[I] {
	return &AsyncHandler[I]{
		name:    name,
		handler: h,
		queue: workqueue.NewRateLimitingQueueWithConfig(workqueue.DefaultControllerRateLimiter(), workqueue.RateLimitingQueueConfig{
			Name: name,
		}),
		done: make(chan struct{}),
	}
}

func (a *AsyncHandler[I]) HandleEvent(id I) {
	a.queue.Add(&entry[I]{id})
}

// Start starts the worker. It stops after the context is cancelled
// and all queued events are delivered.
func (a *AsyncHandler[I]) Start(ctx context.Context) {
	a.once.Do(func() {
		log.Info("starting async event dispatcher {{name}}", "name", a.name)
		healthz.Start(a.key(), tick)
		a.queue.AddAfter(tickCmd{}, tick)
		go func() {
			<-ctx.Done()
			a.queue.ShutDownWithDrain()
		}()
		go func() {
			defer close(a.done)
			for a.processNext() {
			}
			healthz.End(a.key())
			log.Info("async event dispatcher {{name}} stopped", "name", a.name)
		}()
	})
}

// Wait waits until a started worker is finished.
func (a *AsyncHandler[I]) Wait() {
	<-a.done
}

func (a *AsyncHandler[I]) Len() int {
	return a.queue.Len()
}

func (a *AsyncHandler[I]) key() string {
	return "dispatcher " + a.name
}

func (a *AsyncHandler[I]) processNext() bool {
	item, shutdown := a.queue.Get()
	if shutdown {
		return false
	}
	defer a.queue.Done(item)
	a.queue.Forget(item)

	if _, ok := item.(tickCmd); ok {
		healthz.Tick(a.key())
		a.queue.AddAfter(tickCmd{}, tick)
		return true
	}

	e := item.(*entry[I])
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("event handler {{name}} panicked: {{panic}}", "name", a.name, "panic", r)
			}
		}()
		a.handler.HandleEvent(e.id)
	}()
	return true
}
