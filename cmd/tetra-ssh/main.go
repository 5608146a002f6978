// Command tetra-ssh serves the terminal game over SSH. Every session plays
// its own game and high scores are saved under the SSH user name.
package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/plus3/tetra/config"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/highscore"
	"github.com/plus3/tetra/termui"
)

// server builds a game per session.
type server struct {
	settings config.Settings
	store    *highscore.Store
	logger   *log.Logger
}

func (srv *server) handler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	player := s.User()
	if player == "" {
		player = srv.settings.Player
	}

	logger := srv.logger.With("player", player)
	game, err := engine.New(srv.settings.Engine, engine.WithLogger(logger), engine.WithSeed(rand.Uint64(), rand.Uint64()))
	if err != nil {
		// Settings were validated at startup.
		panic(err)
	}
	srv.store.Track(game, player, logger)

	m := termui.New(game, termui.WithPlayer(player), termui.WithRenderer(bubbletea.MakeRenderer(s)))
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

func main() {
	envFile := flag.String("env", ".env", "Environment file to load settings from.")
	flag.Parse()

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatal("Failed to load settings", "err", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "tetra-ssh"})
	logger.SetLevel(settings.LogLevel)

	store, err := highscore.Open(settings.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open high scores", "err", err)
	}
	defer store.Close()

	srv := &server{settings: settings, store: store, logger: logger}
	limit := newLimiter(settings.MaxSessionsPerIP, logger)

	sshServer, err := wish.NewServer(
		wish.WithAddress(settings.SSHAddr),
		wish.WithHostKeyPath(settings.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.handler),
			logging.Middleware(),
			activeterm.Middleware(),
			limit.middleware,
		),
	)
	if err != nil {
		logger.Fatal("Failed to create ssh server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("Starting SSH server", "addr", settings.SSHAddr)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Error("Could not start server", "err", err)
			done <- nil
		}
	}()

	<-done

	logger.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		logger.Error("Could not stop server", "err", err)
	}
}
