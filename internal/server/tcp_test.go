package server

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServer_TCP(t *testing.T) {
	a := assert.New(t)

	// dealer 6; player K Q; dealer draws 10 then K
	s := createTestServer(t, "6,K,Q,10,K")
	addr := serveTestTCP(t, s)

	c := dialTestTCP(t, addr)
	a.Regexp(`^SERVER_MSG: Player \[\w+\] joined\. \(Total: 1\)$`, c.readLine())
	a.Regexp(`^WELCOME: Welcome to the Blackjack Server! \(ID: \w+, Balance: 1000\)$`, c.readLine())

	c.send("PLACE_BET:100")
	a.Equal("ERROR: It is not betting time.", c.readLine())

	c.send("START")
	lines := c.readUntil("INFO: Please place your bet.")
	a.Contains(lines, "GAME_PHASE: Betting Phase Started!")
	a.Equal(msgSeparator(), c.readLine())

	c.send("PLACE_BET:lots")
	a.Equal("ERROR: Invalid bet amount.", c.readLine())

	c.send("PLACE_BET:100")
	lines = c.readUntil("YOUR_TURN:")
	a.Contains(lines, "INITIAL_DEAL: Dealer=[6], Cards=[K,Q], Total=[20]")

	c.send("PLAYER_ACTION:Fly")
	a.Equal("ERROR: Unknown action: Fly", c.readLine())

	c.send("PLAYER_ACTION:stand")
	lines = c.readUntil("GAME_END:")
	a.Contains(lines, "INFO: Balance after settlement: [1100]")
	a.Contains(lines, "GAME_RESULT:WIN")

	c.send("NOPE")
	a.Equal("ERROR: Unknown command: NOPE", c.readLine())

	c.send("BALANCE")
	a.Equal("INFO: Current Balance is [1100].", c.readLine())
}

func TestServer_TCP_disconnect(t *testing.T) {
	a := assert.New(t)

	s := createTestServer(t, "10,K,7,9,9,7")
	addr := serveTestTCP(t, s)

	alice := dialTestTCP(t, addr)
	alice.readUntil("WELCOME:")
	bob := dialTestTCP(t, addr)
	bob.readUntil("WELCOME:")
	alice.readUntil("SERVER_MSG: Player")

	alice.send("START")
	bob.readUntil("INFO: Please place your bet.")
	alice.send("PLACE_BET:100")
	bob.send("PLACE_BET:100")

	// dealer 10; alice K 7; bob 9 9
	bob.readUntil("TURN:")
	lines := alice.readUntil("YOUR_TURN:")
	a.Contains(lines, "INITIAL_DEAL: Dealer=[10], Cards=[K,7], Total=[17]")

	// alice hangs up on her turn and bob is up next
	_ = alice.conn.Close()
	lines = bob.readUntil("YOUR_TURN:")
	a.Regexp(`^SERVER_MSG: Player \[\w+\] left\.$`, lines[0])

	bob.send("PLAYER_ACTION:Stand")
	lines = bob.readUntil("GAME_END:")
	a.Contains(lines, "GAME_RESULT:WIN")

	snap := waitForPlayers(t, s, 1)
	a.Equal(1100, snap.Players[0].Balance)
}

func TestServer_Close(t *testing.T) {
	a := assert.New(t)

	s := createTestServer(t, "2")
	addr := serveTestTCP(t, s)

	c := dialTestTCP(t, addr)
	c.readUntil("WELCOME:")

	s.Close()
	waitForPlayers(t, s, 0)

	_, err := c.reader.ReadString('\n')
	a.Error(err)

	// the listener is still up, but a closed server turns newcomers away without seating them
	late := dialTestTCP(t, addr)
	_ = late.conn.SetReadDeadline(time.Now().Add(readWait))
	_, err = late.reader.ReadString('\n')
	a.Error(err)
	waitForPlayers(t, s, 0)
}

func TestServer_trackConn(t *testing.T) {
	a := assert.New(t)

	s := createTestServer(t, "2")
	c1, c2 := net.Pipe()
	defer c2.Close()

	a.True(s.trackConn(c1))
	a.Len(s.conns, 1)
	s.untrackConn(c1)
	a.Len(s.conns, 0)

	s.Close()
	a.False(s.trackConn(c1))
	a.Len(s.conns, 0)

	// nothing was added to the wait group, so a second Close returns
	s.Close()
}

func msgSeparator() string {
	return "------------------------------------------------"
}
