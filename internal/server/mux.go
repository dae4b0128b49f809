package server

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	server  *Server
	version string
}

// NewMux returns the HTTP surface for the server
func NewMux(s *Server, version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		server:  s,
		version: version,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/room").Handler(this.getRoom())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
