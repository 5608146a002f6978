// Command tetra-replay replays intent logs written by tetra -record and
// checks that they reproduce the recorded result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/plus3/tetra/replay"
	"github.com/plus3/tetra/termui"
)

func main() {
	board := flag.Bool("board", false, "Print the final board of every replay.")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tetra-replay"})
	if flag.NArg() == 0 {
		logger.Fatal("usage: tetra-replay [-board] FILE...")
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := replayFile(os.Stdout, path, *board); err != nil {
			logger.Error("Replay failed", "file", path, "err", err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func replayFile(w io.Writer, path string, board bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	recording, err := replay.Read(f)
	if err != nil {
		return err
	}

	game, err := recording.Replay()
	if err != nil && !errors.Is(err, replay.ErrDiverged) {
		return err
	}

	status := "ok"
	switch {
	case err != nil:
		status = "DIVERGED"
	case recording.End == nil:
		status = "unchecked"
	}
	p := game.Progress()
	fmt.Fprintf(w, "%s: %s, %d steps, %d ticks, score %d, lines %d, level %d\n",
		path, status, len(recording.Steps), game.Ticks(), p.Score, p.Lines, p.Level)

	if board {
		fmt.Fprintln(w, termui.New(game).View())
	}
	return err
}
