package rngenie

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

const (
	pcgMultiplier = 6364136223846793005

	// DefaultSeed and DefaultStream are the reference constants of the PCG32 paper.
	DefaultSeed   uint64 = 0x853C49E6748FEA9B
	DefaultStream uint64 = 0xDA3E39CB94B95BDB

	// StateSize is the length of a blob produced by Save. Restore only needs the first 8 bytes.
	StateSize    = 16
	minStateSize = 8
)

// Pcg32 is a Deterministic Pseudo-Random Number Generator based on the PCG-XSH-RR algorithm
// (see https://www.pcg-random.org).
// This random number generator is deterministic in the sequence of numbers it generates:
// the same seed and stream id always yield the same sequence.
// Every stream id selects a different sequence with period 2^64.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe. Use Fork to hand each goroutine its own instance.
// This random number generator has a small memory footprint (32 bytes).
type Pcg32 struct {
	state uint64
	inc   uint64 // always odd, never changes after construction

	// origin of the engine, kept for NewStreamFromSeed and NewOriginalStream
	seed   uint64
	stream uint64
}

// NewPcg32 seeds an engine on DefaultStream.
func NewPcg32(seed uint64) *Pcg32 {
	return NewPcg32Stream(seed, DefaultStream)
}

// NewDefaultPcg32 seeds an engine with DefaultSeed on DefaultStream.
func NewDefaultPcg32() *Pcg32 {
	return NewPcg32Stream(DefaultSeed, DefaultStream)
}

// NewPcg32Stream seeds an engine on the given stream. All values of seed and streamID are valid.
func NewPcg32Stream(seed, streamID uint64) *Pcg32 {
	p := &Pcg32{
		inc:    streamIncrement(streamID),
		seed:   seed,
		stream: streamID,
	}
	p.Uint32()
	p.state += seed
	p.Uint32()
	return p
}

// pcg32FromState transplants state into a new engine without the seeding steps.
func pcg32FromState(state, streamID, seed, originStream uint64) *Pcg32 {
	return &Pcg32{
		state:  state,
		inc:    streamIncrement(streamID),
		seed:   seed,
		stream: originStream,
	}
}

func streamIncrement(streamID uint64) uint64 {
	return streamID<<1 | 1
}

// Uint32 returns the next pseudo-random number in the sequence.
// The output is derived from the state before the step, so a copy of the state
// reproduces the next output regardless of the increment.
func (p *Pcg32) Uint32() uint32 {
	old := p.state
	p.state = old*pcgMultiplier + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}

// IntRange returns a pseudo-random number in the half-open interval [minInclusive, maxExclusive).
// This function compensates for modulo bias by rejecting draws below (2^32 - range) mod range,
// so it has a variable (expected < 2) number of draws.
func (p *Pcg32) IntRange(minInclusive, maxExclusive int) (int, error) {
	n, err := span(minInclusive, maxExclusive)
	if err != nil {
		return 0, err
	}
	threshold := -n % n
	r := p.Uint32()
	for r < threshold {
		r = p.Uint32()
	}
	return minInclusive + int(r%n), nil
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// Two draws are combined into a 53 bit mantissa, the full resolution of a float64.
func (p *Pcg32) Float64() float64 {
	hi := uint64(p.Uint32())
	lo := uint64(p.Uint32())
	return float64(hi<<21|lo&0x1FFFFF) * (1.0 / (1 << 53))
}

// Fill fills buf with little-endian output, four bytes per draw.
func (p *Pcg32) Fill(buf []byte) {
	i := 0
	for ; i+4 <= len(buf); i += 4 {
		binary.LittleEndian.PutUint32(buf[i:], p.Uint32())
	}
	if i < len(buf) {
		var tail [4]byte
		binary.LittleEndian.PutUint32(tail[:], p.Uint32())
		copy(buf[i:], tail[:])
	}
}

// StateHash returns the raw state word.
func (p *Pcg32) StateHash() uint64 {
	return p.state
}

// Seed returns the seed the engine was constructed with.
func (p *Pcg32) Seed() uint64 {
	return p.seed
}

// Stream returns the stream id the engine was constructed with.
func (p *Pcg32) Stream() uint64 {
	return p.stream
}

// Save serializes the engine state into StateSize bytes: the state word followed by the
// increment, both little-endian. The increment is informational only.
func (p *Pcg32) Save() []byte {
	b := make([]byte, StateSize)
	binary.LittleEndian.PutUint64(b[0:8], p.state)
	binary.LittleEndian.PutUint64(b[8:16], p.inc)
	return b
}

// Restore sets the state word from a blob produced by Save.
// The increment of p is kept, restoring a blob saved on another stream continues
// from that state on p's stream.
func (p *Pcg32) Restore(b []byte) error {
	if len(b) < minStateSize {
		return fmt.Errorf("restore pcg32 from %d bytes: %w", len(b), ErrShortState)
	}
	p.state = binary.LittleEndian.Uint64(b[0:8])
	internalLogger.V(1).Info("restored state", "stream", p.stream, "stateHash", p.state)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *Pcg32) MarshalBinary() ([]byte, error) {
	return p.Save(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Pcg32) UnmarshalBinary(data []byte) error {
	return p.Restore(data)
}

// Fork branches the timeline: the child starts from the current state on the same stream,
// so its first draw equals the parent's next draw and both stay in lockstep.
func (p *Pcg32) Fork() *Pcg32 {
	child := pcg32FromState(p.state, p.streamID(), p.seed, p.stream)
	internalLogger.V(1).Info("forked", "stream", p.stream, "stateHash", p.state)
	return child
}

// ForkStream branches the timeline onto another stream. The child's first draw still equals
// the parent's next draw since output is taken from the old state, later draws diverge.
// The child reports streamID as its Stream.
func (p *Pcg32) ForkStream(streamID uint64) *Pcg32 {
	child := pcg32FromState(p.state, streamID, p.seed, streamID)
	internalLogger.V(1).Info("forked onto stream", "from", p.stream, "to", streamID, "stateHash", p.state)
	return child
}

// NewStreamFromSeed seeds a fresh engine from the original seed on streamID.
// The result does not depend on how far p has advanced.
func (p *Pcg32) NewStreamFromSeed(streamID uint64) *Pcg32 {
	internalLogger.V(1).Info("new stream from seed", "seed", p.seed, "stream", streamID)
	return NewPcg32Stream(p.seed, streamID)
}

// NewOriginalStream recreates the engine as it was right after construction.
func (p *Pcg32) NewOriginalStream() *Pcg32 {
	internalLogger.V(1).Info("new original stream", "seed", p.seed, "stream", p.stream)
	return NewPcg32Stream(p.seed, p.stream)
}

// streamID recovers the stream selecting the current increment.
func (p *Pcg32) streamID() uint64 {
	return p.inc >> 1
}
