package room

// Phase is the room-wide stage of a round
// A round walks Idle -> Betting -> Playing -> DealerPlay -> Settlement -> Idle
// An abandoned round (nobody left in it) drops straight back to Idle
type Phase int

// Phase constants
const (
	PhaseIdle Phase = iota
	PhaseBetting
	PhasePlaying
	PhaseDealerPlay
	PhaseSettlement
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseBetting:
		return "Betting"
	case PhasePlaying:
		return "Playing"
	case PhaseDealerPlay:
		return "DealerPlay"
	case PhaseSettlement:
		return "Settlement"
	}

	return "Unknown"
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
