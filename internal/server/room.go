package server

import (
	"blackjack-server/pkg/room"
	"errors"
	"net/http"
)

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := m.server.room.Snapshot()
		if err != nil {
			if errors.Is(err, room.ErrRoomClosed) {
				writeJSONError(w, http.StatusServiceUnavailable, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, snap)
	}
}
