package actor

// Rand is the random source behind every probabilistic decision
// (firing, shield activation, pattern shuffles, spawning).
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// roll reports whether a Bernoulli trial with probability p succeeds.
func roll(rng Rand, p float64) bool {
	return rng.Float64() < p
}
