package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-dyneq/dsp/core"
	"github.com/cwbudde/algo-dyneq/dsp/dynamics"
	"github.com/cwbudde/algo-dyneq/dsp/filter/design"
	"github.com/cwbudde/algo-dyneq/dsp/filter/ideal"
)

// SimulateCmd runs a control goroutine writing random parameters against a
// consumer that pulls once per block.
type SimulateCmd struct {
	Blocks     int     `help:"Number of blocks the consumer processes." default:"1000"`
	BlockSize  int     `help:"Samples per block." default:"512"`
	SampleRate float64 `help:"Sample rate in Hz." default:"48000"`
	Burst      int     `help:"Parameter writes per control burst." default:"8"`
	Points     int     `help:"Query frequencies evaluated per recompute." default:"128"`
	Seed       int64   `help:"Random seed for the control goroutine." default:"1"`
	Realtime   bool    `help:"Pace blocks at the wall-clock block duration."`
}

// simStats counts work on both sides of the parameter hand-off.
type simStats struct {
	writes       atomic.Int64
	blocks       int
	kneeRebuilds int
	filterUpdate int
	minGainDB    float64
}

func (c *SimulateCmd) Run(rc *runContext) error {
	if c.Blocks < 1 || c.Points < 1 || c.Burst < 1 {
		return errors.New("blocks, points and burst must be >= 1")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := c.simulate(ctx, rc)
	if err != nil {
		return err
	}

	printTitle(rc.out, "Simulation")
	printKeyValue(rc.out, "Blocks", stats.blocks)
	printKeyValue(rc.out, "Parameter writes", stats.writes.Load())
	printKeyValue(rc.out, "Knee rebuilds", stats.kneeRebuilds)
	printKeyValue(rc.out, "Filter recomputes", stats.filterUpdate)
	printKeyValue(rc.out, "Deepest gain", fmt.Sprintf("%.2f dB", stats.minGainDB))
	return nil
}

func (c *SimulateCmd) simulate(ctx context.Context, rc *runContext) (*simStats, error) {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(c.SampleRate),
		core.WithBlockSize(c.BlockSize),
	)

	knee := dynamics.NewKneeComputer()
	filter, err := ideal.NewFilter(ideal.WithSampleRate(cfg.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("create filter: %w", err)
	}

	freqs := make([]float64, c.Points)
	ideal.LogFrequencies(freqs, 20, math.Min(20000, 0.45*cfg.SampleRate))
	w := make([]float64, c.Points)
	ideal.AngularFrequencies(w, freqs, cfg.SampleRate)
	filter.Prepare(cfg.SampleRate, c.Points)

	// Detector levels sweep -60..0 dB across each block.
	levels := make([]float64, cfg.BlockSize)
	for i := range levels {
		levels[i] = -60 + 60*float64(i)/float64(max(1, cfg.BlockSize-1))
	}
	gains := make([]float64, cfg.BlockSize)

	rc.log.Info("simulation started",
		"blocks", c.Blocks, "block_size", cfg.BlockSize, "sample_rate", cfg.SampleRate,
		"block_duration", cfg.BlockDuration())

	stats := &simStats{}
	g, gctx := errgroup.WithContext(ctx)
	consumerDone := make(chan struct{})

	g.Go(func() error {
		rng := rand.New(rand.NewSource(c.Seed))
		types := design.FilterTypes()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-consumerDone:
				return nil
			default:
			}

			for range c.Burst {
				switch rng.Intn(8) {
				case 0:
					knee.SetThreshold(-60 + 60*rng.Float64())
				case 1:
					knee.SetRatio(1 + 19*rng.Float64())
				case 2:
					knee.SetKneeWidth(12 * rng.Float64())
				case 3:
					knee.SetCurve(2*rng.Float64() - 1)
				case 4:
					filter.SetFrequency(20 * math.Pow(1000, rng.Float64()))
				case 5:
					filter.SetGain(-18 + 36*rng.Float64())
				case 6:
					filter.SetQ(0.1 + 9.9*rng.Float64())
				case 7:
					filter.SetFilterType(types[rng.Intn(len(types))])
					filter.SetOrder(1 + rng.Intn(8))
				}
				stats.writes.Add(1)
			}
			time.Sleep(time.Duration(rng.Intn(200)) * time.Microsecond)
		}
	})

	g.Go(func() error {
		defer close(consumerDone)

		var tick <-chan time.Time
		if c.Realtime {
			ticker := time.NewTicker(cfg.BlockDuration())
			defer ticker.Stop()
			tick = ticker.C
		}

		stats.minGainDB = 0
		for stats.blocks < c.Blocks {
			if tick != nil {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case <-tick:
				}
			} else if err := gctx.Err(); err != nil {
				return err
			}

			if knee.Pull() {
				stats.kneeRebuilds++
			}
			knee.ProcessBlock(gains, levels)
			for _, gdb := range gains {
				stats.minGainDB = math.Min(stats.minGainDB, gdb)
			}

			if filter.UpdateMagnitude(w) {
				stats.filterUpdate++
			}
			stats.blocks++
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		rc.log.Warn("simulation interrupted", "blocks", stats.blocks, "err", err)
		return stats, nil
	}

	rc.log.Debug("simulation finished", "writes", stats.writes.Load(), "blocks", stats.blocks)
	return stats, nil
}
