package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Anotida-Much/task-manager/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer serves the API over a listener supplied by a SecurityLayer.
type HTTPServer struct {
	server *http.Server
	addr   string
}

// NewHTTPServer creates an HTTP server for the given handler and address.
func NewHTTPServer(handler http.Handler, addr string) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		addr: addr,
	}
}

// Start opens the listener and serves until Stop is called. A clean
// shutdown is not reported as an error.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
