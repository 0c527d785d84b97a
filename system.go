package rngenie

import "math/rand/v2"

// SystemSource adapts the math/rand/v2 generators to Source for casual use where
// replaying a sequence is not required.
type SystemSource struct {
	r *rand.Rand // nil selects the global generator
}

// NewSystemSource returns a Source backed by the randomly seeded global generator of math/rand/v2.
func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

// NewSeededSystemSource returns a Source backed by a private math/rand/v2 PCG generator.
// Its sequences depend on the Go release and should not be persisted; use Pcg32 for that.
func NewSeededSystemSource(seed uint64) *SystemSource {
	return &SystemSource{r: rand.New(rand.NewPCG(seed, seed^DefaultStream))}
}

func (s *SystemSource) IntRange(minInclusive, maxExclusive int) (int, error) {
	n, err := span(minInclusive, maxExclusive)
	if err != nil {
		return 0, err
	}
	if s.r == nil {
		return minInclusive + int(rand.Uint32N(n)), nil
	}
	return minInclusive + int(s.r.Uint32N(n)), nil
}

func (s *SystemSource) Float64() float64 {
	if s.r == nil {
		return rand.Float64()
	}
	return s.r.Float64()
}

func (s *SystemSource) Fill(buf []byte) {
	u := s.uint64
	for i := 0; i < len(buf); i += 8 {
		v := u()
		for j := i; j < i+8 && j < len(buf); j++ {
			buf[j] = byte(v)
			v >>= 8
		}
	}
}

func (s *SystemSource) uint64() uint64 {
	if s.r == nil {
		return rand.Uint64()
	}
	return s.r.Uint64()
}

// StateHash always returns 0, the standard library generators expose no stable state.
func (s *SystemSource) StateHash() uint64 {
	return 0
}
