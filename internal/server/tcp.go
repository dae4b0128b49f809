package server

import (
	"blackjack-server/pkg/room"
	"bufio"
	"context"
	"errors"
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

// ListenAndServeTCP listens on addr and serves the line protocol until ctx is cancelled
func (s *Server) ListenAndServeTCP(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.logger.WithField("addr", ln.Addr().String()).Info("listening for tcp connections")
	return s.ServeTCP(ctx, ln)
}

// ServeTCP accepts connections on ln until ctx is cancelled
// Every connection gets its own session; each line it sends is one command
func (s *Server) ServeTCP(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				s.logger.WithError(err).Warn("accept timed out")
				time.Sleep(time.Millisecond * 50)
				continue
			}

			return err
		}

		if !s.trackConn(conn) {
			s.logger.WithField("remoteAddr", conn.RemoteAddr().String()).Debug("server closed, dropping connection")
			_ = conn.Close()
			continue
		}

		go s.handleTCPConn(conn)
	}
}

// handleTCPConn serves a connection already registered with trackConn
func (s *Server) handleTCPConn(conn net.Conn) {
	defer func() {
		_ = conn.Close()
		s.untrackConn(conn)
	}()

	session, log, err := s.join(conn)
	if err != nil {
		log.WithError(err).Warn("could not join room")
		return
	}

	done := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.tcpWriteLoop(conn, session, log, done)
	}()

	s.tcpReadLoop(conn, session, log)
	s.leave(session, log)

	close(done)
	<-writerDone
}

func (s *Server) tcpReadLoop(conn net.Conn, session *room.Session, log logrus.FieldLogger) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		log.WithField("line", line).Trace("received line")

		if err := s.dispatcher.Dispatch(session, line); err != nil {
			log.WithError(err).Info("closing connection")
			return
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.WithError(err).Error("could not read line")
	}
}

func (s *Server) tcpWriteLoop(conn net.Conn, session *room.Session, log logrus.FieldLogger, done <-chan struct{}) {
	w := bufio.NewWriter(conn)
	for {
		select {
		case <-done:
			return
		case msg := <-session.SendChan():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if _, err := w.WriteString(msg + "\n"); err != nil {
				log.WithError(err).Error("could not write line")
				_ = conn.Close()
				return
			}

			// batch whatever the room queued in the same turn
			if len(session.SendChan()) > 0 {
				continue
			}

			if err := w.Flush(); err != nil {
				log.WithError(err).Error("could not write line")
				_ = conn.Close()
				return
			}
		}
	}
}
