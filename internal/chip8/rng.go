package chip8

import "math/rand"

// rng is the mask-and-byte generator CXNN draws from. Every sibling
// implementation in the retrieval pack reaches for math/rand here with no
// third-party PRNG anywhere in the corpus, so this core does the same.
type rng struct {
	source *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{source: rand.New(rand.NewSource(seed))}
}

// byte returns a uniformly distributed random byte.
func (r *rng) byte() byte {
	return byte(r.source.Intn(256))
}
