// Command tetra plays the game in a raylib window.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/tetra/config"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/highscore"
	"github.com/plus3/tetra/replay"
)

func main() {
	envFile := flag.String("env", ".env", "Environment file to load settings from.")
	seed := flag.Uint64("seed", 0, "Seed for the piece generator; 0 picks one at random.")
	record := flag.String("record", "", "Write an intent log of the first game to this file.")
	flag.Parse()

	if err := run(*envFile, *seed, *record); err != nil {
		log.Error("tetra failed", "err", err)
		os.Exit(1)
	}
}

func run(envFile string, seed uint64, record string) error {
	settings, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "tetra"})
	logger.SetLevel(settings.LogLevel)

	if seed == 0 {
		seed = rand.Uint64()
	}
	game, err := engine.New(settings.Engine, engine.WithLogger(logger), engine.WithSeed(seed, seed^0x9e3779b97f4a7c15))
	if err != nil {
		return err
	}

	store, err := highscore.Open(settings.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()
	store.Track(game, settings.Player, logger)

	var recorder *replay.Recorder
	if record != "" {
		f, err := os.Create(record)
		if err != nil {
			return fmt.Errorf("create recording: %w", err)
		}
		defer f.Close()
		if recorder, err = replay.NewRecorder(f, game); err != nil {
			return err
		}
		logger.Info("Recording", "file", record)
	}

	bounds := game.Board().Bounds()
	rl.InitWindow(int32(boardOffset*2+bounds.Width()*cellSize+panelWidth), int32(boardOffset*2+bounds.Height()*cellSize), "Tetra")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())

		if rl.IsKeyPressed(rl.KeyR) && game.Over() {
			if recorder != nil {
				if err := recorder.Close(); err != nil {
					logger.Error("Failed to finish recording", "err", err)
				}
				recorder = nil
			}
			game.Reset(rand.Uint64(), rand.Uint64())
		}

		intents := collectIntents(rl.IsKeyPressed, rl.IsKeyDown)
		if recorder != nil {
			if err := recorder.Tick(dt, intents); err != nil {
				logger.Error("Recording stopped", "err", err)
				recorder = nil
			}
		} else {
			game.Tick(dt, intents)
		}

		draw(game.Snapshot())
	}

	if recorder != nil {
		return recorder.Close()
	}
	return nil
}
