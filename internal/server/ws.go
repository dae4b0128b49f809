package server

import (
	"blackjack-server/pkg/room"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// getWS bridges a websocket onto the line protocol
// Each text frame in holds one or more lines; each line out is sent as its own text frame
func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		s := m.server
		netConn := conn.UnderlyingConn()
		if !s.trackConn(netConn) {
			logrus.WithField("remoteAddr", netConn.RemoteAddr().String()).Debug("server closed, dropping connection")
			_ = conn.Close()
			return
		}
		defer func() {
			_ = conn.Close()
			s.untrackConn(netConn)
		}()

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		session, log, err := s.join(netConn)
		if err != nil {
			log.WithError(err).Warn("could not join room")
			return
		}

		done := make(chan struct{})
		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			s.webSocketWriteLoop(conn, session, log, done)
		}()

		s.webSocketReadLoop(conn, session, log)
		s.leave(session, log)

		close(done)
		<-writerDone
	}
}

func (s *Server) webSocketWriteLoop(conn *websocket.Conn, session *room.Session, log logrus.FieldLogger, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				return
			}
		case msg := <-session.SendChan():
			log.WithField("message", msg).Trace("sending message to client")

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				log.WithError(err).Error("could not write message")
				_ = conn.Close()
				return
			}
		}
	}
}

func (s *Server) webSocketReadLoop(conn *websocket.Conn, session *room.Session, log logrus.FieldLogger) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Error("could not read message")
			}

			return
		}

		for _, line := range strings.Split(string(data), "\n") {
			if err := s.dispatcher.Dispatch(session, line); err != nil {
				log.WithError(err).Info("closing connection")
				return
			}
		}
	}
}
