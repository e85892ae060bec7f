package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nhdewitt/http-echo/internal/metrics"
	"github.com/nhdewitt/http-echo/internal/request"
	"github.com/nhdewitt/http-echo/internal/response"
)

type Server struct {
	listener       net.Listener
	isListening    atomic.Bool
	handler        Handler
	readBufferSize int
	metrics        *metrics.Metrics
}

// Serve binds the port and starts accepting connections in the
// background. Port 0 picks a free port, see Addr.
func Serve(port int, handler Handler, opts ...Option) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		listener:       listener,
		handler:        handler,
		readBufferSize: request.DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.isListening.Store(true)
	go s.listen()

	return s, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close stops accepting. Connections already being handled are left alone.
func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return
			}
			logrus.WithError(err).Error("Error accepting connection")
			continue
		}

		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	s.metrics.ConnectionOpened()
	defer s.metrics.ConnectionClosed()

	log := logrus.WithFields(logrus.Fields{
		"conn_id":     uuid.NewString(),
		"remote_addr": conn.RemoteAddr().String(),
	})

	req, err := request.RequestFromReader(conn, s.readBufferSize)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		s.metrics.Failed(metrics.ReasonEmpty)
		log.Debug("Connection closed before any data arrived")
		return
	case errors.Is(err, request.ErrIncompleteRequest):
		s.metrics.Failed(metrics.ReasonIncomplete)
		log.Debug("Header section not terminated, holding connection until peer closes")
		// no response; wait for the peer to go away
		n, _ := io.Copy(io.Discard, conn)
		log.WithFields(logrus.Fields{"discarded_bytes": n}).Debug("Peer closed incomplete request")
		return
	case errors.Is(err, request.ErrMalformedJSONBody):
		s.metrics.Failed(metrics.ReasonMalformedJSON)
		log.WithError(err).Warn("Dropping connection")
		return
	default:
		s.metrics.Failed(metrics.ReasonReadError)
		log.WithError(err).Warn("Error reading request")
		return
	}

	log = log.WithFields(logrus.Fields{"method": req.Method, "uri": req.URI})
	if err := s.handler(response.NewWriter(conn), req); err != nil {
		s.metrics.Failed(metrics.ReasonWriteError)
		log.WithError(err).Warn("Error writing response")
		return
	}

	s.metrics.ResponseWritten()
	log.Info("Echoed request")
}
