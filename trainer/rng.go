package trainer

// seed is the fixed initial PRNG state used for syn0 initialization,
// matching the reference implementation's seed=1.
const seed int64 = 1

// nextRandom advances the 64-bit linear congruential generator used
// throughout training: r <- r*25214903917 + 11, wrapping on overflow.
func nextRandom(r int64) int64 {
	return r*25214903917 + 11
}
