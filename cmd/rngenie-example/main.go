package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"

	"github.com/TomTonic/rngenie"
	"github.com/TomTonic/rngenie/cards"
	"github.com/TomTonic/rngenie/dice"
	"github.com/TomTonic/rngenie/dist"
	"github.com/TomTonic/rngenie/internal/bench"
	"github.com/TomTonic/rngenie/internal/config"
	"github.com/TomTonic/rngenie/internal/stats"
	"github.com/TomTonic/rngenie/picker"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := newLogger(cfg.LogLevel)
	rngenie.SetLogger(funcr.New(func(prefix, args string) {
		log.Debug().Str("logger", prefix).Msg(args)
	}, funcr.Options{Verbosity: 1}))

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("example failed")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(lvl)
}

func run(cfg config.Config, log zerolog.Logger) error {
	rng := rngenie.NewPcg32Stream(cfg.Seed, cfg.Stream)
	log.Info().Uint64("seed", cfg.Seed).Uint64("stream", cfg.Stream).Msg("engine ready")

	if err := forking(rng); err != nil {
		return err
	}
	if err := samplers(rng.NewStreamFromSeed(1), cfg.Samples, log); err != nil {
		return err
	}
	if err := games(rng.NewStreamFromSeed(2)); err != nil {
		return err
	}
	if cfg.Bench {
		return compareSources(cfg, log)
	}
	return nil
}

func forking(rng *rngenie.Pcg32) error {
	show := func(label string, src rngenie.Source) error {
		out := make([]int, 3)
		for i := range out {
			v, err := src.IntRange(0, 100)
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			out[i] = v
		}
		fmt.Println(label+":", out)
		return nil
	}

	if err := show("main engine", rng); err != nil {
		return err
	}
	branch := rng.Fork()
	other := rng.ForkStream(1)
	stream := rng.NewStreamFromSeed(2)
	saved := rng.Save()
	for _, s := range []struct {
		label string
		src   rngenie.Source
	}{
		{"main engine, next", rng},
		{"fork (same timeline)", branch},
		{"fork onto stream 1", other},
		{"stream 2 from seed", stream},
	} {
		if err := show(s.label, s.src); err != nil {
			return err
		}
	}
	if err := rng.Restore(saved); err != nil {
		return err
	}
	return show("main engine, replayed", rng)
}

type summarized interface {
	dist.Distribution[float64]
	ExpectedMean() float64
	ExpectedVariance() float64
}

func samplers(rng rngenie.Source, n int, log zerolog.Logger) error {
	uniform, err := dist.NewUniform(-1, 1)
	if err != nil {
		return err
	}
	triangular, err := dist.NewTriangular(0, 5, 10)
	if err != nil {
		return err
	}
	normal, err := dist.NewNormal(3, 2)
	if err != nil {
		return err
	}

	for _, d := range []struct {
		name string
		dist summarized
	}{
		{"uniform(-1, 1)", uniform},
		{"triangular(0, 5, 10)", triangular},
		{"normal(3, 2)", normal},
	} {
		var s stats.Summary
		for range n {
			x, err := d.dist.Sample(rng)
			if err != nil {
				return err
			}
			s.Add(x)
		}
		log.Debug().Str("distribution", d.name).Int("n", s.N).Msg("sampled")
		fmt.Printf("%-22s mean %8.4f (expected %8.4f)  variance %8.4f (expected %8.4f)  range [%.3f, %.3f]\n",
			d.name, s.Mean(), d.dist.ExpectedMean(), s.Variance(), d.dist.ExpectedVariance(), s.Min, s.Max)
	}
	return nil
}

func games(rng rngenie.Source) error {
	loot := picker.New[string]().
		MustAdd("common", 0.75).
		MustAdd("rare", 0.20).
		MustAdd("legendary", 0.05)
	drops := make([]string, 5)
	for i := range drops {
		item, err := loot.One(rng)
		if err != nil {
			return err
		}
		drops[i] = item
	}
	fmt.Println("loot:", drops)

	deck := cards.NewDeck(true)
	if err := deck.Shuffle(rng); err != nil {
		return err
	}
	hand, err := deck.DrawN(5)
	if err != nil {
		return err
	}
	fmt.Printf("hand: %s (%d left)\n", cards.Format(hand), deck.Len())

	roll, err := dice.Roll("3d6+2", rng)
	if err != nil {
		return err
	}
	fmt.Printf("3d6+2: %v%+d = %d\n", roll.Rolls, roll.Modifier, roll.Total)
	return nil
}

func compareSources(cfg config.Config, log zerolog.Logger) error {
	const innerLoops = 200_000
	pcg := rngenie.NewPcg32(cfg.Seed)
	crypto := rngenie.NewCryptoSource(8192)
	system := rngenie.NewSystemSource()

	log.Info().Int64("precisionNanos", bench.Precision()).Int("repeats", cfg.BenchRepeats).Msg("measuring sources")
	timesPcg := bench.Measure(cfg.BenchRepeats, innerLoops, func() { _ = pcg.Float64() })
	timesCrypto := bench.Measure(cfg.BenchRepeats, innerLoops, func() { _ = crypto.Float64() })
	timesSystem := bench.Measure(cfg.BenchRepeats, innerLoops, func() { _ = system.Float64() })

	speedups := []float64{0, bench.TimesFasterToSpeedup(1.5), bench.TimesFasterToSpeedup(3)}
	for _, other := range []struct {
		name  string
		times []float64
	}{
		{"crypto", timesCrypto},
		{"system", timesSystem},
	} {
		results, err := bench.CompareRuntimes(timesPcg, other.times, speedups, 10_000, cfg.Seed)
		if err != nil {
			return err
		}
		medPcg, err := bench.MedianNanos(timesPcg)
		if err != nil {
			return err
		}
		medOther, err := bench.MedianNanos(other.times)
		if err != nil {
			return err
		}
		spread, err := bench.SpreadNanos(other.times)
		if err != nil {
			return err
		}
		fmt.Printf("pcg32 %.2f ns/call vs %s %.2f ns/call (mean %.2f ± %.2f)\n",
			medPcg, other.name, medOther, spread.Mean, spread.StdDev)
		for _, r := range results {
			fmt.Printf("  speedup >= %5.1f%% -> confidence %.3f\n", r.RelativeSpeedup*100, r.Confidence)
		}
	}
	return nil
}
