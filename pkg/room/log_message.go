package room

const logMessageLimit = 25

// addLogMessage records a broadcast line, keeping the most recent ones
// NOTE: must only be called from the run loop
func (r *Room) addLogMessage(msg string) {
	m := append(r.logMessages, msg)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	r.logMessages = m
}
