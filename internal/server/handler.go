package server

import (
	"github.com/nhdewitt/http-echo/internal/request"
	"github.com/nhdewitt/http-echo/internal/response"
)

// Handler answers one parsed request. It runs at most once per connection.
type Handler func(w *response.Writer, req *request.Request) error

// EchoHandler writes req back as the JSON body of a 200 response.
func EchoHandler(w *response.Writer, req *request.Request) error {
	return response.WriteEcho(w, req)
}
