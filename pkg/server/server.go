package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mandelsoft/meshmodel/pkg/service"
)

// Server is an http server usable as service.
type Server struct {
	*http.Server
	*http.ServeMux

	shutdownTimeout time.Duration

	lock    sync.Mutex
	addr    net.Addr
	ready   service.Trigger
	syncher service.Syncher
}

var _ service.Service = (*Server)(nil)

// NewServer creates a server for the given port. Port 0 selects
// a free port, which is available by ListenAddr after the server
// is ready. If def is set, handlers registered with Register are served.
func NewServer(port int, def bool, shutdownTimeout time.Duration) *Server {
	mux := http.NewServeMux()
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	if def {
		mux.Handle("/", default_mux)
	}
	return &Server{
		Server:          server,
		ServeMux:        mux,
		shutdownTimeout: shutdownTimeout,
	}
}

// ListenAddr provides the listen address after the server is ready.
func (s *Server) ListenAddr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.addr
}

// Start listens on the configured port and serves requests
// until the context is cancelled.
func (s *Server) Start(ctx context.Context) (service.Syncher, service.Syncher, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.syncher != nil {
		return s.ready, s.syncher, nil
	}
	l, err := net.Listen("tcp", s.Server.Addr)
	if err != nil {
		return nil, nil, err
	}
	s.addr = l.Addr()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	s.syncher = service.Sync(wg)
	s.ready = service.SyncTrigger()

	go func() {
		defer wg.Done()
		log.Info("starting http server on {{addr}}", "addr", l.Addr())
		s.syncher.SetError(s.serve(ctx, l))
		log.Info("http server on {{addr}} stopped", "addr", l.Addr())
	}()
	s.ready.Trigger()
	return s.ready, s.syncher, nil
}

func (s *Server) Wait() error {
	s.lock.Lock()
	syncher := s.syncher
	s.lock.Unlock()
	if syncher == nil {
		return nil
	}
	return syncher.Wait()
}

func (s *Server) serve(ctx context.Context, l net.Listener) error {
	serverErr := make(chan error, 1)
	go func() {
		// Shutdown causes Serve to return http.ErrServerClosed.
		serverErr <- s.Serve(l)
	}()
	var err error
	select {
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		err = s.Shutdown(sctx)
	case err = <-serverErr:
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenAndServeContext serves requests until the context is cancelled.
func (s *Server) ListenAndServeContext(ctx context.Context) error {
	_, done, err := s.Start(ctx)
	if err != nil {
		return err
	}
	return done.Wait()
}
