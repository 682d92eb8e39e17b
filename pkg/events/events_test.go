package events_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/pkg/events"
)

type Event struct {
	Kind      string
	Namespace string
	Name      string
}

func (e Event) GetType() string {
	return e.Kind
}

func (e Event) GetNamespace() string {
	return e.Namespace
}

type Handler struct {
	lock   sync.Mutex
	events []string
}

func (h *Handler) HandleEvent(e Event) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.events = append(h.events, e.Name)
}

func (h *Handler) Events() []string {
	h.lock.Lock()
	defer h.lock.Unlock()
	return append([]string(nil), h.events...)
}

type Lister struct {
	current []Event
	listed  chan struct{}
}

func (l *Lister) ListObjectIds(typ string, ns string, atomic ...func()) ([]Event, error) {
	for _, a := range atomic {
		a()
	}
	var result []Event
	for _, e := range l.current {
		if (typ == "" || e.Kind == typ) && (ns == "" || e.Namespace == ns) {
			result = append(result, e)
		}
	}
	if l.listed != nil {
		l.listed <- struct{}{}
	}
	return result, nil
}

var _ = Describe("event registry", func() {
	var lister *Lister
	var registry events.HandlerRegistry[Event]

	BeforeEach(func() {
		lister = &Lister{
			current: []Event{
				{"Created", "ns1", "a"},
				{"Created", "ns2", "b"},
			},
		}
		registry = events.NewHandlerRegistry[Event](lister)
	})

	It("dispatches by kind and namespace", func() {
		all := &Handler{}
		kind := &Handler{}
		ns := &Handler{}
		registry.RegisterHandler(all, false, "")
		registry.RegisterHandler(kind, false, "Deleted")
		registry.RegisterHandler(ns, false, "", "ns1")

		registry.HandleEvent(Event{"Created", "ns1", "e1"})
		registry.HandleEvent(Event{"Deleted", "ns2", "e2"})

		Expect(all.Events()).To(Equal([]string{"e1", "e2"}))
		Expect(kind.Events()).To(Equal([]string{"e2"}))
		Expect(ns.Events()).To(Equal([]string{"e1"}))
	})

	It("unregisters handlers", func() {
		h := &Handler{}
		registry.RegisterHandler(h, false, "Created", "ns1")
		registry.HandleEvent(Event{"Created", "ns1", "e1"})
		registry.UnregisterHandler(h, "Created", "ns1")
		registry.HandleEvent(Event{"Created", "ns1", "e2"})
		Expect(h.Events()).To(Equal([]string{"e1"}))
	})

	It("ignores duplicate registrations", func() {
		h := &Handler{}
		registry.RegisterHandler(h, false, "")
		registry.RegisterHandler(h, false, "")
		registry.HandleEvent(Event{"Created", "ns1", "e1"})
		Expect(h.Events()).To(Equal([]string{"e1"}))
	})

	It("ramps up handlers", func() {
		h := &Handler{}
		Expect(registry.RegisterHandler(h, true, "Created", "ns2").Wait(context.Background())).To(BeTrue())
		Expect(h.Events()).To(Equal([]string{"b"}))
	})

	It("queues events during ramp up", func() {
		lister.listed = make(chan struct{}, 1)
		test := registry.(events.HandlerRegistrationTest[Event])

		h := &Handler{}
		trigger := make(chan struct{})
		s := test.RegisterHandlerSync(trigger, h, true, "")
		<-lister.listed
		registry.HandleEvent(Event{"Deleted", "ns1", "c"})
		Expect(h.Events()).To(BeEmpty())
		close(trigger)
		Expect(s.Wait(context.Background())).To(BeTrue())
		Expect(h.Events()).To(Equal([]string{"a", "b", "c"}))
	})

	It("dispatches asynchronously", func() {
		h := &Handler{}
		registry.RegisterHandler(h, false, "")
		async := events.NewAsyncHandler[Event]("test", registry)

		ctx, cancel := context.WithCancel(context.Background())
		async.Start(ctx)
		async.HandleEvent(Event{"Created", "ns1", "e1"})
		async.HandleEvent(Event{"Created", "ns1", "e2"})
		Eventually(h.Events).Should(Equal([]string{"e1", "e2"}))
		cancel()
		async.Wait()
		Expect(async.Len()).To(Equal(0))
	})
})
