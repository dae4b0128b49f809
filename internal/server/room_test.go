package server

import (
	"blackjack-server/pkg/room"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type roomResponse struct {
	Phase   string `json:"phase"`
	Players []struct {
		ID         string `json:"id"`
		Balance    int    `json:"balance"`
		CurrentBet int    `json:"currentBet"`
		Hand       struct {
			Cards []string `json:"cards"`
			Score int      `json:"score"`
		} `json:"hand"`
		InRound bool `json:"inRound"`
	} `json:"players"`
	Dealer struct {
		Cards []string `json:"cards"`
		Score int      `json:"score"`
	} `json:"dealer"`
	Log []string `json:"log"`
}

func TestMux_getRoom(t *testing.T) {
	a := assert.New(t)

	s := createTestServer(t, "6,A,7")
	ts := httptest.NewServer(NewMux(s, ""))
	defer ts.Close()

	var resp roomResponse
	getJSON(t, ts, "/room", &resp, http.StatusOK)
	a.Equal("Idle", resp.Phase)
	a.Empty(resp.Players)

	alice := room.NewSessionWithID("alice", 1000, 64)
	a.NoError(s.room.Join(alice))
	a.NoError(s.room.StartGame(alice))
	a.NoError(s.room.PlaceBet(alice, 100))

	resp = roomResponse{}
	getJSON(t, ts, "/room", &resp, http.StatusOK)
	a.Equal("Playing", resp.Phase)
	if a.Len(resp.Players, 1) {
		p := resp.Players[0]
		a.Equal("alice", p.ID)
		a.Equal(900, p.Balance)
		a.Equal(100, p.CurrentBet)
		a.Equal([]string{"A", "7"}, p.Hand.Cards)
		a.Equal(18, p.Hand.Score)
		a.True(p.InRound)
	}
	a.Equal([]string{"6"}, resp.Dealer.Cards)
	a.Equal(6, resp.Dealer.Score)
	a.Contains(resp.Log, "SERVER_MSG: [alice] placed a bet of 100.")
}

func TestMux_getRoom_closed(t *testing.T) {
	a := assert.New(t)

	s := createTestServer(t, "2")
	ts := httptest.NewServer(NewMux(s, ""))
	defer ts.Close()

	s.room.EndShift()

	var resp errorResponse
	getJSON(t, ts, "/room", &resp, http.StatusServiceUnavailable)
	a.Equal("Service Unavailable", resp.Message)
	a.Equal(http.StatusServiceUnavailable, resp.StatusCode)
}
