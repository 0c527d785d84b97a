package rngenie

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T, verbosity int) *[]string {
	t.Helper()
	prev := Logger()
	t.Cleanup(func() { internalLogger = prev })

	var lines []string
	SetLogger(funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: verbosity}))
	return &lines
}

func TestDerivationIsLoggedAtV1(t *testing.T) {
	lines := captureLogs(t, 1)
	rng := NewPcg32(1)
	_ = rng.Fork()
	_ = rng.ForkStream(3)
	_ = rng.NewStreamFromSeed(4)
	_ = rng.NewOriginalStream()
	_ = rng.Restore(rng.Save())

	assert.Len(t, *lines, 5)
	for _, l := range *lines {
		assert.Contains(t, l, "rngenie")
	}
	assert.Contains(t, (*lines)[1], `"to"=3`)
}

func TestDrawsAreNotLogged(t *testing.T) {
	lines := captureLogs(t, 1)
	rng := NewPcg32(1)
	for range 100 {
		_, _ = rng.IntRange(0, 10)
		_ = rng.Float64()
	}
	assert.Empty(t, *lines)
}

func TestDefaultVerbosityHidesDiagnostics(t *testing.T) {
	lines := captureLogs(t, 0)
	_ = NewPcg32(1).Fork()
	assert.Empty(t, *lines)
}
