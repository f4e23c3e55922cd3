// Package tui provides the terminal front ends around the text game: the
// match setup menu, the results board, and SSH hosting via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/number-grab/internal/config"
	"github.com/vovakirdan/number-grab/internal/console"
	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/game"
	"github.com/vovakirdan/number-grab/internal/logging"
	"github.com/vovakirdan/number-grab/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.numbergrab/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Settings are the game rules offered to every session. The ledger
	// path and debug level are taken from here as well.
	Settings config.Settings
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	s := config.Default()
	return SSHServerConfig{
		Address:     s.SSH.Address,
		HostKeyPath: s.SSH.HostKeyPath,
		IdleTimeout: s.SSH.IdleTimeout,
		Settings:    s,
	}
}

// SSHServer wraps a Wish SSH server that hosts one game per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *logging.Reporter
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := logging.New(os.Stderr, cfg.Settings.Debug, "numbergrab-ssh")

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Open storage
	if cfg.Settings.DBPath != "" {
		store, err := storage.Open(cfg.Settings.DBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			// Continue without storage
		} else {
			srv.store = store
		}
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".numbergrab", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// gameMiddleware runs the session: the setup menu when the client has a
// terminal, then one game.
func (s *SSHServer) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.playSession(sess)
		next(sess)
	}
}

func (s *SSHServer) playSession(sess ssh.Session) {
	settings := s.config.Settings
	log := s.logger.With("user", sess.User())

	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		// Without a terminal there is no menu and no hot seat.
		settings.AI = true
		g, err := s.newGame(sess, settings, console.NewSource(sess, sess), console.NewPrinter(sess, nil), log)
		if err != nil {
			log.Error("cannot start game", "error", err)
			return
		}
		g.Play()
		return
	}

	// Nothing reads window changes; keep the channel from filling up.
	go func() {
		for range winCh {
		}
	}()

	input := newSessionInput(sess)
	rcfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	settings, ok, err := chooseSetup(input, sess, s.store, settings, rcfg)
	if err != nil {
		log.Error("menu failed", "error", err)
		return
	}
	if !ok {
		return
	}

	t := term.NewTerminal(sessionTerminal{Reader: input.attach(), Writer: sess}, "")
	src, disp := console.NewTerminalSource(t), console.NewPrinter(t, bubbletea.MakeRenderer(sess))
	g, err := s.newGame(sess, settings, src, disp, log)
	if err != nil {
		log.Error("cannot start game", "error", err)
		return
	}
	log.Info("game started", "game", g.ID(), "mode", g.Config().Mode())
	g.Play()
}

// chooseSetup runs the menu, and the results board when asked for, until a
// setup is picked. Each program reads through its own attached reader,
// which is closed when the program ends. ok is false when the player quit.
func chooseSetup(input *sessionInput, out io.Writer, store *storage.Store, settings config.Settings, rcfg core.RuntimeConfig) (config.Settings, bool, error) {
	for {
		menuIn := input.attach()
		res, err := RunMenu(settings, rcfg, tea.WithInput(menuIn), tea.WithOutput(out))
		menuIn.Close()
		if err != nil {
			return settings, false, err
		}

		switch {
		case res.WantsScoreboard:
			boardIn := input.attach()
			back, boardErr := RunResultsBoard(store, rcfg.ScreenW, rcfg.ScreenH, tea.WithInput(boardIn), tea.WithOutput(out))
			boardIn.Close()
			if boardErr != nil {
				return settings, false, boardErr
			}
			if !back {
				return settings, false, nil
			}
		case res.Quit:
			return settings, false, nil
		default:
			return res.Settings, true, nil
		}
	}
}

func (s *SSHServer) newGame(sess ssh.Session, settings config.Settings, src game.MoveSource, disp game.Display, log *logging.Reporter) (*game.Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	opts := []game.Option{
		game.WithLogger(log),
		game.WithExit(func(code int) { sess.Exit(code) }),
	}
	if s.store != nil {
		opts = append(opts, game.WithRecorder(s.store))
	}
	return game.New(settings.GameConfig(), src, disp, opts...)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
