package rng

// Generator is the random source cards are drawn from
// Implementations must be safe for concurrent use
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
