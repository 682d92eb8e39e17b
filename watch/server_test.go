package watch_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/pkg/server"
	"github.com/mandelsoft/meshmodel/watch"
)

type Request struct {
	Key string `json:"key"`
}

type Event struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

type Handler = watch.EventHandler[Event]

type Registry struct {
	lock     sync.Mutex
	handlers map[string][]Handler
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: map[string][]Handler{},
	}
}

func (r *Registry) RegisterWatchHandler(req Request, h Handler) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.handlers[req.Key] = append(r.handlers[req.Key], h)
}

func (r *Registry) UnregisterWatchHandler(req Request, h Handler) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.handlers[req.Key] = slices.DeleteFunc(r.handlers[req.Key], func(e Handler) bool { return e == h })
}

func (r *Registry) Count(key string) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.handlers[key])
}

func (r *Registry) Trigger(evt Event) {
	r.lock.Lock()
	list := slices.Clone(r.handlers[evt.Key])
	r.lock.Unlock()

	for _, h := range list {
		h.HandleEvent(evt)
	}
}

type Consumer struct {
	lock     sync.Mutex
	messages []string
}

func (c *Consumer) HandleEvent(e Event) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.messages = append(c.messages, e.Message)
}

func (c *Consumer) Messages() []string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return slices.Clone(c.messages)
}

var _ = Describe("watch", func() {
	var ctx context.Context
	var cancel context.CancelFunc
	var srv *server.Server
	var registry *Registry
	var endpoint *watch.RequestHandler[Request, Event]
	var url string

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		registry = NewRegistry()
		endpoint = watch.WatchHttpHandler[Request, Event](registry)

		srv = server.NewServer(0, false, time.Second)
		srv.Handle("/watch", endpoint)
		Must2(srv.Start(ctx))
		url = fmt.Sprintf("ws://%s/watch", srv.ListenAddr())
	})

	AfterEach(func() {
		endpoint.Close()
		cancel()
		MustBeSuccessful(srv.Wait())
	})

	It("forwards events", func() {
		consumer := &Consumer{}
		cctx, ccancel := context.WithCancel(ctx)
		client := watch.NewClient[Request, Event](url)
		s := Must(client.Register(cctx, Request{Key: "test"}, consumer))

		Eventually(func() int { return registry.Count("test") }).Should(Equal(1))
		for i := 1; i <= 3; i++ {
			registry.Trigger(Event{Key: "test", Message: fmt.Sprintf("message %d", i)})
		}
		registry.Trigger(Event{Key: "other", Message: "other"})

		Eventually(consumer.Messages).Should(Equal([]string{"message 1", "message 2", "message 3"}))
		ccancel()
		MustBeSuccessful(s.Wait())
	})

	It("unregisters closed connections", func() {
		cctx, ccancel := context.WithCancel(ctx)
		client := watch.NewClient[Request, Event](url)
		s := Must(client.Register(cctx, Request{Key: "test"}, &Consumer{}))

		Eventually(func() int { return registry.Count("test") }).Should(Equal(1))
		Expect(endpoint.Connections()).To(Equal(1))
		ccancel()
		MustBeSuccessful(s.Wait())
		Eventually(func() int { return registry.Count("test") }).Should(Equal(0))
		Eventually(endpoint.Connections).Should(Equal(0))
	})

	It("reports invalid requests", func() {
		client := watch.NewClient[string, Event](url)
		w := Must(client.Watch(ctx, "invalid"))
		defer w.Close()
		_, err := w.Receive()
		Expect(err).To(MatchError(watch.ErrServer))
	})
})
