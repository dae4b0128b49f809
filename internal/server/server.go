package server

import (
	"blackjack-server/pkg/protocol"
	"blackjack-server/pkg/room"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10

// Server connects line-oriented transports to a room
type Server struct {
	room       *room.Room
	dispatcher *protocol.Dispatcher
	logger     logrus.FieldLogger

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

// New returns a server for the room
func New(r *room.Room, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Server{
		room:       r,
		dispatcher: protocol.NewDispatcher(r, logger),
		logger:     logger,
		conns:      make(map[net.Conn]struct{}),
	}
}

// Close closes every open connection and waits for their handlers to finish
// Each handler removes its session from the room on the way out. Connections arriving after Close
// are turned away
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// trackConn registers a connection handler with the server
// It returns false once the server is closed; the caller must then drop the connection
func (s *Server) trackConn(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	return true
}

// untrackConn must be called once by every handler whose trackConn succeeded
func (s *Server) untrackConn(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conns, conn)
	s.wg.Done()
}

// join creates a session for a new connection and seats it in the room
func (s *Server) join(conn net.Conn) (*room.Session, logrus.FieldLogger, error) {
	session := s.room.NewSession()
	log := s.logger.WithFields(logrus.Fields{
		"player":     session.String(),
		"remoteAddr": conn.RemoteAddr().String(),
	})

	if err := s.room.Join(session); err != nil {
		return nil, log, err
	}

	log.Info("client connected")
	return session, log, nil
}

func (s *Server) leave(session *room.Session, log logrus.FieldLogger) {
	if err := s.room.Leave(session); err != nil {
		log.WithError(err).Warn("could not leave room")
	}

	log.Info("client disconnected")
}
