// Command tetra-stress plays seeded games with random input as fast as it
// can and prints a timing report.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/replay"
)

const tickDelta = 1.0 / 60.0

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the input generator and the first game.")
	verify := flag.Bool("verify", false, "Record every game and check that replaying it gives the same result.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "tetra-stress"})
	logger.Info("Starting stress test", "duration", *duration, "seed", *seed, "verify", *verify)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Verify:         *verify,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	startTime := time.Now()
	for ctx.Err() == nil {
		result, err := playGame(ctx, rng, *verify, &report.TickTime)
		if err != nil {
			logger.Fatal("Game failed", "err", err)
		}
		report.Add(result)
		logger.Debug("Game finished", "score", result.Progress.Score, "ticks", result.Ticks)
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("Stress test finished", "games", report.Games, "ticks", report.TotalTicks)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("Failed to generate report", "err", err)
	}
	fmt.Println("--- End of Report ---")
}

// GameResult summarizes one finished or interrupted game.
type GameResult struct {
	Ticks    uint64
	Locks    uint64
	Over     bool
	Progress engine.Progress
	Verified bool
}

// randomIntents presses each intent with a small probability and keeps
// shifts held for a while, which is roughly how a hurried player behaves.
func randomIntents(rng *rand.Rand) engine.Intents {
	var in engine.Intents
	for _, intent := range []engine.Intent{engine.MoveLeft, engine.MoveRight, engine.SoftDrop, engine.HardDrop, engine.RotateCW, engine.RotateCCW, engine.Hold} {
		if rng.IntN(20) == 0 {
			in.Pressed = in.Pressed.With(intent)
		}
	}
	if rng.IntN(4) == 0 {
		in.Held = in.Held.With(engine.MoveLeft)
	} else if rng.IntN(4) == 0 {
		in.Held = in.Held.With(engine.MoveRight)
	}
	return in
}

// playGame runs one game until it ends or ctx expires, adding every tick's
// duration to ticks.
func playGame(ctx context.Context, rng *rand.Rand, verify bool, ticks *Stats) (GameResult, error) {
	game, err := engine.New(engine.DefaultConfig(), engine.WithSeed(rng.Uint64(), rng.Uint64()))
	if err != nil {
		return GameResult{}, err
	}

	var buf bytes.Buffer
	var recorder *replay.Recorder
	if verify {
		if recorder, err = replay.NewRecorder(&buf, game); err != nil {
			return GameResult{}, err
		}
	}

	for !game.Over() && ctx.Err() == nil {
		in := randomIntents(rng)

		tickStart := time.Now()
		if recorder != nil {
			if err := recorder.Tick(tickDelta, in); err != nil {
				return GameResult{}, err
			}
		} else {
			game.Tick(tickDelta, in)
		}
		ticks.Samples = append(ticks.Samples, time.Since(tickStart))
	}

	result := GameResult{Ticks: game.Ticks(), Locks: game.Locks(), Over: game.Over(), Progress: game.Progress()}
	if recorder == nil {
		return result, nil
	}

	if err := recorder.Close(); err != nil {
		return GameResult{}, err
	}
	recording, err := replay.Read(&buf)
	if err != nil {
		return GameResult{}, err
	}
	if _, err := recording.Replay(); err != nil {
		return GameResult{}, fmt.Errorf("seed %v: %w", recording.Header.Seed, err)
	}
	result.Verified = true
	return result, nil
}
