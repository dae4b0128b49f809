package server

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/room"
	"bufio"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

const readWait = time.Second * 5

// createTestServer returns a server over a room that deals cards in the given order
func createTestServer(t *testing.T, cards string) *Server {
	t.Helper()

	c := deck.CardsFromString(cards)
	values := make([]int, len(c))
	for i, card := range c {
		values[i] = int(card.Rank) - 1
	}

	opts := room.DefaultOptions()
	opts.DealerDelay = 0
	opts.Generator = rng.NewSequence(values...)

	r := room.NewRoom(opts)
	r.StartShift()

	s := New(r, logrus.StandardLogger())
	t.Cleanup(func() {
		s.Close()
		r.EndShift()
	})

	return s
}

// serveTestTCP serves s on a loopback port and returns the address
func serveTestTCP(t *testing.T, s *Server) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.ServeTCP(ctx, ln)
	}()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-errCh)
	})

	return ln.Addr().String()
}

type lineClient struct {
	t      *testing.T
	conn   net.Conn
	reader *bufio.Reader
}

func dialTestTCP(t *testing.T, addr string) *lineClient {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return &lineClient{
		t:      t,
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

func (c *lineClient) send(line string) {
	c.t.Helper()

	if _, err := c.conn.Write([]byte(line + "\n")); err != nil {
		c.t.Fatal(err)
	}
}

func (c *lineClient) readLine() string {
	c.t.Helper()

	_ = c.conn.SetReadDeadline(time.Now().Add(readWait))
	line, err := c.reader.ReadString('\n')
	if err != nil {
		c.t.Fatal(err)
	}

	return strings.TrimSuffix(line, "\n")
}

// readUntil reads lines until one starts with prefix and returns everything read
func (c *lineClient) readUntil(prefix string) []string {
	c.t.Helper()

	lines := make([]string, 0)
	for {
		line := c.readLine()
		lines = append(lines, line)
		if strings.HasPrefix(line, prefix) {
			return lines
		}
	}
}

// waitForPlayers polls the room until it holds n sessions
func waitForPlayers(t *testing.T, s *Server, n int) *room.Snapshot {
	t.Helper()

	deadline := time.Now().Add(readWait)
	for {
		snap, err := s.room.Snapshot()
		if err != nil {
			t.Fatal(err)
		}

		if len(snap.Players) == n {
			return snap
		}

		if time.Now().After(deadline) {
			t.Fatalf("expected %d players, have %d", n, len(snap.Players))
		}

		time.Sleep(time.Millisecond * 10)
	}
}

func getJSON(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, statusCode, resp.StatusCode)
	if respObj != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(respObj))
	}
}
