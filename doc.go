// Package rngenie provides a deterministic, bit-reproducible PCG32 engine together with
// the Source capability consumed by the samplers in dist, the weighted picker in picker,
// the card deck in cards and the dice roller in dice.
//
// A Pcg32 built from the same seed and stream id always produces the same sequence.
// Engines can be branched or re-derived:
//
//	rng := rngenie.NewPcg32(100)
//	branch := rng.Fork()               // continues the current timeline
//	other := rng.ForkStream(7)         // same starting point, different sequence
//	worker := rng.NewStreamFromSeed(2) // independent of how far rng has advanced
//
// Engines, CryptoSource and the Normal sampler are not safe for concurrent use.
// Give each goroutine its own engine, typically via Fork or NewStreamFromSeed.
package rngenie
