// Command tetra-term plays the game in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/plus3/tetra/config"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/highscore"
	"github.com/plus3/tetra/termui"
)

func main() {
	envFile := flag.String("env", ".env", "Environment file to load settings from.")
	player := flag.String("player", "", "Name saved with high scores; defaults to TETRA_PLAYER.")
	logFile := flag.String("log", "", "Write logs to this file while playing.")
	scores := flag.Int("scores", 0, "Print the top N high scores and exit.")
	flag.Parse()

	if err := run(*envFile, *player, *logFile, *scores); err != nil {
		log.Error("tetra-term failed", "err", err)
		os.Exit(1)
	}
}

func run(envFile, player, logFile string, scores int) error {
	settings, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if player == "" {
		player = settings.Player
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "tetra"})
	logger.SetLevel(settings.LogLevel)

	store, err := highscore.Open(settings.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	if scores > 0 {
		entries, err := store.Top(context.Background(), scores, 0)
		if err != nil {
			return err
		}
		fmt.Println(termui.ScoreTable(entries))
		return nil
	}

	// The program owns the terminal; logs go to a file or nowhere.
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	game, err := engine.New(settings.Engine, engine.WithLogger(logger))
	if err != nil {
		return err
	}
	store.Track(game, player, logger)

	if _, err := tea.NewProgram(termui.New(game, termui.WithPlayer(player)), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	p := game.Progress()
	fmt.Printf("%s: %d points, %d lines, level %d\n", player, p.Score, p.Lines, p.Level)
	return nil
}
