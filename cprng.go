package rngenie

import (
	"crypto/rand"
	"encoding/binary"
)

// CryptoSource is a cryptographically secure Source that reads random bytes in batches
// to reduce the number of calls to the underlying crypto/rand.Reader (OS call).
// Use it for tokens, lotteries or shuffles that must not be predictable.
// This random number generator is not deterministic in the sequence of numbers it generates,
// Save/Restore and forking have no meaning here and StateHash always returns 0.
// This random number generator is thread-safe as long as each goroutine uses its own instance.
type CryptoSource struct {
	bufPos uint32
	buf    []byte
}

// NewCryptoSource creates a new CryptoSource with a buffer capacity of capBytes.
// A larger buffer reduces the number of operating system calls to crypto/rand.Reader,
// improving performance. A smaller buffer reduces memory usage.
// NewCryptoSource panics if the operating system fails to provide random bytes.
func NewCryptoSource(capBytes uint32) *CryptoSource {
	if capBytes < 8 {
		capBytes = 8 // minimum buffer size to hold at least one uint64
	}
	c := &CryptoSource{buf: make([]byte, capBytes)}
	c.refill()
	return c
}

func (c *CryptoSource) refill() {
	if _, err := rand.Read(c.buf); err != nil {
		panic(err)
	}
	c.bufPos = 0
}

// ensure that n bytes are available, otherwise refill the buffer
func (c *CryptoSource) ensure(n uint32) {
	if c.bufPos+n > uint32(len(c.buf)) {
		c.refill()
	}
}

// Uint32 returns a uniformly distributed uint32.
func (c *CryptoSource) Uint32() uint32 {
	c.ensure(4)
	v := binary.LittleEndian.Uint32(c.buf[c.bufPos : c.bufPos+4])
	c.bufPos += 4
	return v
}

// Uint64 returns a uniformly distributed uint64.
func (c *CryptoSource) Uint64() uint64 {
	c.ensure(8)
	v := binary.LittleEndian.Uint64(c.buf[c.bufPos : c.bufPos+8])
	c.bufPos += 8
	return v
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// It uses 53 random bits, the full precision of a float64, and never returns 1.0, NaN or Inf.
func (c *CryptoSource) Float64() float64 {
	return float64(c.Uint64()>>11) * (1.0 / (1 << 53))
}

// IntRange returns a uniformly distributed integer in [minInclusive, maxExclusive).
//
// For implementation details, see:
//
//	https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
//	https://lemire.me/blog/2016/06/30/fast-random-shuffling
func (c *CryptoSource) IntRange(minInclusive, maxExclusive int) (int, error) {
	n, err := span(minInclusive, maxExclusive)
	if err != nil {
		return 0, err
	}
	return minInclusive + int(c.uint32n(n)), nil
}

// uint32n returns a value in [0,n) without bias, n must be > 0.
func (c *CryptoSource) uint32n(n uint32) uint32 {
	prod := uint64(c.Uint32()) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := -n % n
		for low < thresh {
			prod = uint64(c.Uint32()) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// Fill reads len(buf) bytes directly from crypto/rand, bypassing the batch buffer.
func (c *CryptoSource) Fill(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
}

// StateHash always returns 0, a cryptographic source exposes no state.
func (c *CryptoSource) StateHash() uint64 {
	return 0
}
