package server

import (
	"github.com/nhdewitt/http-echo/internal/metrics"
)

// Option is a func that allows configuring a Server
type Option func(*Server)

// WithReadBufferSize caps how many bytes of the first chunk are read.
func WithReadBufferSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.readBufferSize = n
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}
