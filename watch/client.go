package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// ErrServer is reported for error messages sent by the watch endpoint.
var ErrServer = errors.New("watch endpoint error")

// Client connects to a watch endpoint sending requests of type R
// and receiving events of type E.
type Client[R, E any] struct {
	dialer ws.Dialer
	url    string
}

func NewClient[R, E any](url string, dialer ...ws.Dialer) *Client[R, E] {
	return &Client[R, E]{
		dialer: utils.OptionalDefaulted(ws.DefaultDialer, dialer...),
		url:    url,
	}
}

// Watch opens a connection and sends the watch request.
func (c *Client[R, E]) Watch(ctx context.Context, req R) (*Watch[E], error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("invalid watch request: %w", err)
	}
	conn, _, _, err := c.dialer.Dial(ctx, c.url)
	if err != nil {
		return nil, err
	}
	if err := wsutil.WriteClientMessage(conn, ws.OpText, data); err != nil {
		conn.Close()
		return nil, err
	}
	return &Watch[E]{conn: conn}, nil
}

// Register starts a watch and forwards all received events to the
// given handler until the context is canceled or the server closes
// the connection.
func (c *Client[R, E]) Register(ctx context.Context, req R, h EventHandler[E]) (Syncher, error) {
	w, err := c.Watch(ctx, req)
	if err != nil {
		return nil, err
	}

	s := &syncher{done: make(chan struct{})}
	go func() {
		select {
		case <-ctx.Done():
		case <-s.done:
		}
		w.Close()
	}()
	go func() {
		defer close(s.done)
		for {
			events, err := w.Receive()
			if err != nil {
				if !IsErrClosed(err) && ctx.Err() == nil {
					s.err = err
				}
				return
			}
			for _, e := range events {
				h.HandleEvent(e)
			}
		}
	}()
	return s, nil
}

// Syncher waits for the end of a registered watch.
type Syncher interface {
	Wait() error
}

type syncher struct {
	done chan struct{}
	err  error
}

func (s *syncher) Wait() error {
	<-s.done
	return s.err
}

// Watch is an open watch connection.
type Watch[E any] struct {
	once sync.Once
	conn net.Conn
}

// message is an event or an error reported by the endpoint.
type message[E any] struct {
	event E
	err   *string
}

func (m *message[E]) UnmarshalJSON(data []byte) error {
	var e struct {
		Error *string `json:"error"`
	}
	if json.Unmarshal(data, &e) == nil && e.Error != nil {
		m.err = e.Error
		return nil
	}
	return json.Unmarshal(data, &m.event)
}

// Receive waits for the next frames and decodes the events they carry.
func (w *Watch[E]) Receive() ([]E, error) {
	frames, err := wsutil.ReadServerMessage(w.conn, nil)
	if err != nil {
		return nil, err
	}

	var events []E
	for _, f := range frames {
		if f.OpCode != ws.OpText && f.OpCode != ws.OpBinary {
			continue
		}
		var m message[E]
		if err := json.Unmarshal(f.Payload, &m); err != nil {
			return nil, err
		}
		if m.err != nil {
			return nil, fmt.Errorf("%w: %s", ErrServer, *m.err)
		}
		events = append(events, m.event)
	}
	return events, nil
}

// Close closes the connection. It may be called multiple times.
func (w *Watch[E]) Close() error {
	var err error
	w.once.Do(func() { err = w.conn.Close() })
	return err
}
