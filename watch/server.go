package watch

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

type EventHandler[E any] interface {
	HandleEvent(e E)
}

// Registry is the source of events for watch requests.
type Registry[R any, E any] interface {
	RegisterWatchHandler(r R, h EventHandler[E])
	UnregisterWatchHandler(r R, h EventHandler[E])
}

// WatchHttpHandler provides an http handler upgrading requests to
// websocket connections. The first client message is the watch request,
// afterwards all events provided by the registry for this request
// are sent to the client as JSON text messages.
func WatchHttpHandler[R, E any](r Registry[R, E]) *RequestHandler[R, E] {
	return &RequestHandler[R, E]{registry: r}
}

type RequestHandler[R, E any] struct {
	lock        sync.Mutex
	registry    Registry[R, E]
	connections []*handler[R, E]
}

var _ http.Handler = (*RequestHandler[any, any])(nil)

// Close closes all open watch connections.
func (h *RequestHandler[R, E]) Close() error {
	h.lock.Lock()
	conns := slices.Clone(h.connections)
	h.lock.Unlock()

	for _, c := range conns {
		c.Close()
	}
	return nil
}

// Connections provides the number of open watch connections.
func (h *RequestHandler[R, E]) Connections() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.connections)
}

func (h *RequestHandler[R, E]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Debug("new watch request from {{remote}}", "remote", r.RemoteAddr)
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.LogError(err, "upgrading watch request")
		return
	}

	msg, op, err := wsutil.ReadClientData(conn)
	if err != nil {
		log.LogError(err, "reading watch request")
		sendError(conn, err.Error())
		return
	}
	if op != ws.OpText && op != ws.OpBinary {
		log.Error("unexpected opcode {{op}} for watch request", "op", op)
		sendError(conn, "data message with watch request required")
		return
	}

	var req R
	err = json.Unmarshal(msg, &req)
	if err != nil {
		log.LogError(err, "decoding watch request")
		sendError(conn, fmt.Sprintf("invalid watch request: %s", err))
		return
	}

	c := newHandler[R, E](h, conn, req)
	go c.drain()
}

func sendError(conn net.Conn, msg string) {
	wsutil.WriteServerMessage(conn, ws.OpText, (&Error{msg}).Data())
	conn.Close()
}

func (h *RequestHandler[R, E]) addHandler(c *handler[R, E]) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.connections = append(h.connections, c)
}

func (h *RequestHandler[R, E]) removeHandler(c *handler[R, E]) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.connections = utils.FilterSlice(h.connections, func(e *handler[R, E]) bool { return e != c })
}

////////////////////////////////////////////////////////////////////////////////

// handler forwards events to a single watch connection.
type handler[R, E any] struct {
	owner *RequestHandler[R, E]
	req   R

	lock   sync.Mutex
	conn   net.Conn
	closed bool
}

func newHandler[R, E any](owner *RequestHandler[R, E], conn net.Conn, req R) *handler[R, E] {
	h := &handler[R, E]{owner: owner, conn: conn, req: req}
	log.Info("registering watch handler for {{req}}", "req", req)
	owner.addHandler(h)
	owner.registry.RegisterWatchHandler(req, h)
	return h
}

// drain consumes control frames until the client closes
// the connection.
func (h *handler[R, E]) drain() {
	for {
		_, _, err := wsutil.ReadClientData(h.conn)
		if err != nil {
			if !IsErrClosed(err) {
				log.LogError(err, "watch connection for {{req}} failed", "req", h.req)
			}
			h.Close()
			return
		}
	}
}

func (h *handler[R, E]) HandleEvent(e E) {
	data, err := json.Marshal(e)
	if err != nil {
		log.LogError(err, "cannot marshal event {{event}}", "event", e)
		return
	}

	h.lock.Lock()
	if h.closed {
		h.lock.Unlock()
		return
	}
	log.Debug("sending event {{event}}", "event", e)
	err = wsutil.WriteServerMessage(h.conn, ws.OpText, data)
	h.lock.Unlock()

	if err != nil {
		log.LogError(err, "cannot send event -> closing connection")
		go h.Close()
	}
}

func (h *handler[R, E]) Close() error {
	h.lock.Lock()
	if h.closed {
		h.lock.Unlock()
		return nil
	}
	h.closed = true
	h.lock.Unlock()

	log.Info("closing watch connection for {{req}}", "req", h.req)
	h.conn.Close()
	h.owner.registry.UnregisterWatchHandler(h.req, h)
	h.owner.removeHandler(h)
	return nil
}

////////////////////////////////////////////////////////////////////////////////

// Error is sent to the client if the watch request cannot be served.
type Error struct {
	Error string `json:"error"`
}

func (e *Error) Message() string {
	return string(e.Data())
}

func (e *Error) Data() []byte {
	data, _ := json.Marshal(e)
	return data
}
