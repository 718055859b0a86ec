package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every deck shuffle derives from the generator returned here, so a seed
// replays a whole game.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSeed returns a seed drawn from the runtime's entropy-seeded source
func NewSeed() int64 {
	for {
		if s := rand.Int64(); s != 0 {
			return s
		}
	}
}

// FromSeed returns New(seed), or a generator seeded from system entropy when
// seed is zero. The seed actually used is returned so it can be logged.
func FromSeed(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = NewSeed()
	}
	return New(seed), seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
