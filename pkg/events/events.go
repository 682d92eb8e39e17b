package events

import (
	"slices"
	"sync"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// Id is the routing information of an event.
// Handlers are registered for a type and a set of namespaces.
type Id interface {
	GetType() string
	GetNamespace() string
}

// ObjectLister provides the events used to ramp up a handler
// registered for the current state. atomic must be called
// by the lister while the listed state is consistent.
type ObjectLister[I Id] interface {
	ListObjectIds(typ string, ns string, atomic ...func()) ([]I, error)
}

type EventHandler[I Id] interface {
	HandleEvent(I)
}

type HandlerRegistration[I Id] interface {
	RegisterHandler(h EventHandler[I], current bool, kind string, nss ...string) utils.Sync
	UnregisterHandler(h EventHandler[I], kind string, nss ...string)
}

// HandlerRegistrationTest allows tests to delay the ramp-up of a
// handler until the trigger channel provides a value.
type HandlerRegistrationTest[I Id] interface {
	HandlerRegistration[I]
	RegisterHandlerSync(t <-chan struct{}, h EventHandler[I], current bool, kind string, nss ...string) utils.Sync
}

type HandlerRegistry[I Id] interface {
	HandlerRegistrationTest[I]
	EventHandler[I]

	TriggerEvent(I)
}

// KeyFunc maps an event to the representation passed
// to the handlers.
type KeyFunc[I Id] func(id I) I

// route is the registration key of a handler. The empty type or
// namespace matches all events.
type route struct {
	kind      string
	namespace string
}

type registry[I Id] struct {
	lock        sync.Mutex
	key         KeyFunc[I]
	subscribers map[route][]*subscriber[I]
	lister      ObjectLister[I]
}

var _ HandlerRegistrationTest[Id] = (*registry[Id])(nil)

// NewHandlerRegistry provides a registry dispatching events by
// type and namespace.
func NewHandlerRegistry[I Id](l ObjectLister[I], k ...KeyFunc[I]) HandlerRegistry[I] {
	return &registry[I]{
		key:         utils.OptionalDefaulted[KeyFunc[I]](func(id I) I { return id }, k...),
		subscribers: map[route][]*subscriber[I]{},
		lister:      l,
	}
}

func (r *registry[I]) HandleEvent(id I) {
	r.TriggerEvent(id)
}

// RegisterHandler registers a handler for a type and namespaces.
// With current set, the handler first gets events for all existing
// objects before it gets new events. The returned Sync is reached
// when this ramp-up is finished.
func (r *registry[I]) RegisterHandler(h EventHandler[I], current bool, kind string, nss ...string) utils.Sync {
	return r.RegisterHandlerSync(nil, h, current, kind, nss...)
}

func (r *registry[I]) RegisterHandlerSync(t <-chan struct{}, h EventHandler[I], current bool, kind string, nss ...string) utils.Sync {
	s, done := utils.NewSyncPoint()
	register := func() {
		defer done.Done()
		for _, ns := range namespacesOf(nss) {
			r.subscribe(t, h, current, route{kind, ns})
		}
	}
	if current {
		go register()
	} else {
		register()
	}
	return s
}

func namespacesOf(nss []string) []string {
	if len(nss) == 0 {
		return []string{""}
	}
	return nss
}

// find must be called under lock.
func (r *registry[I]) find(rt route, h EventHandler[I]) int {
	return slices.IndexFunc(r.subscribers[rt], func(s *subscriber[I]) bool { return s.handler == h })
}

func (r *registry[I]) subscribe(t <-chan struct{}, h EventHandler[I], current bool, rt route) {
	r.lock.Lock()
	known := r.find(rt, h) >= 0
	r.lock.Unlock()
	if known {
		return
	}

	s := &subscriber[I]{handler: h, rampup: true}
	activate := func() {
		r.lock.Lock()
		defer r.lock.Unlock()
		if r.find(rt, h) < 0 {
			r.subscribers[rt] = append(r.subscribers[rt], s)
		}
	}

	var initial []I
	if current && r.lister != nil {
		var err error
		initial, err = r.lister.ListObjectIds(rt.kind, rt.namespace, activate)
		if err != nil {
			log.LogError(err, "cannot list current state for {{kind}} in {{namespace}}", "kind", rt.kind, "namespace", rt.namespace)
		}
	} else {
		activate()
	}
	if t != nil {
		<-t
	}
	s.Rampup(initial)
}

func (r *registry[I]) UnregisterHandler(h EventHandler[I], kind string, nss ...string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, ns := range namespacesOf(nss) {
		rt := route{kind, ns}
		i := r.find(rt, h)
		if i < 0 {
			continue
		}
		list := slices.Delete(r.subscribers[rt], i, i+1)
		if len(list) == 0 {
			delete(r.subscribers, rt)
		} else {
			r.subscribers[rt] = list
		}
	}
}

func (r *registry[I]) matching(id I) []*subscriber[I] {
	r.lock.Lock()
	defer r.lock.Unlock()

	var result []*subscriber[I]
	for _, kind := range utils.AppendUnique([]string{""}, id.GetType()) {
		for _, ns := range utils.AppendUnique([]string{""}, id.GetNamespace()) {
			result = append(result, r.subscribers[route{kind, ns}]...)
		}
	}
	return result
}

func (r *registry[I]) TriggerEvent(id I) {
	id = r.key(id)
	for _, s := range r.matching(id) {
		s.HandleEvent(id)
	}
}

// subscriber queues new events for a handler until the events
// for the current state have been delivered.
type subscriber[I Id] struct {
	lock    sync.Mutex
	rampup  bool
	queue   []I
	handler EventHandler[I]
}

var _ EventHandler[Id] = (*subscriber[Id])(nil)

func (s *subscriber[I]) Rampup(ids []I) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, id := range append(ids, s.queue...) {
		s.handler.HandleEvent(id)
	}
	s.rampup = false
	s.queue = nil
}

func (s *subscriber[I]) HandleEvent(id I) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.rampup {
		s.queue = append(s.queue, id)
	} else {
		s.handler.HandleEvent(id)
	}
}
