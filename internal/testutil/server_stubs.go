package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// StubHTTPServer satisfies the server package's httpServer interface and counts calls.
// A non-nil Unblock makes Shutdown wait for it (or for the context to expire).
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Unblock     chan struct{}

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
}

// NewFailingHTTPServer returns a stub whose ListenAndServe fails immediately.
func NewFailingHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{AddrVal: ":0", ListenErr: errors.New("listen failure")}
}

// NewClosedHTTPServer returns a stub that reports a normal close from ListenAndServe.
func NewClosedHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{AddrVal: ":0", ListenErr: http.ErrServerClosed}
}

// NewBlockingHTTPServer returns a stub whose Shutdown hangs until Unblock is closed.
func NewBlockingHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{AddrVal: ":0", HandlerVal: http.NewServeMux(), Unblock: make(chan struct{})}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdownCalls++
	s.mu.Unlock()
	if s.Unblock == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Unblock:
		return s.ShutdownErr
	}
}

func (s *StubHTTPServer) Addr() string { return s.AddrVal }

func (s *StubHTTPServer) Handler() http.Handler { return s.HandlerVal }

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}
