package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-baseball/internal/config"
	"github.com/vovakirdan/tui-baseball/internal/core"
	"github.com/vovakirdan/tui-baseball/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the host key file. Empty means ~/.baseball/host_key,
	// generated on first start.
	HostKeyPath string

	// Game is the configuration every session plays with.
	Game config.BaseballConfig

	// TickRate is the redraw rate of each session.
	TickRate int

	// IdleTimeout closes connections with no input for this long.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		Game:        config.DefaultBaseballConfig(),
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// hostKey returns the host key path and makes sure its directory exists.
func (c SSHServerConfig) hostKey() (string, error) {
	path := c.HostKeyPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".baseball", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// SSHServer serves one game per SSH connection. All sessions share the
// results store, which may be nil.
type SSHServer struct {
	cfg    SSHServerConfig
	store  *storage.Store
	logger *log.Logger
	server *ssh.Server
	active atomic.Int64
}

// NewSSHServer creates a server. The caller owns store and closes it after
// Serve returns.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "baseball-ssh",
		})
	}

	keyPath, err := cfg.hostKey()
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, store: store, logger: logger}
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.handler),
			s.logSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// Serve accepts connections until ctx is done, then shuts down. Games in
// progress are cancelled through their session contexts.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.Address)

	errc := make(chan error, 1)
	go func() { errc <- s.server.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "sessions", s.Active())
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.server.Shutdown(sctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Active returns the number of connected sessions.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// runtime sizes a session's screen from its pty.
func (s *SSHServer) runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
}

func (s *SSHServer) handler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "baseball needs a terminal, connect with: ssh -t")
		return nil, nil
	}

	rc := s.runtime(pty.Window.Width, pty.Window.Height)
	model := NewSessionModel(sess.Context(), s.cfg.Game, s.store, rc, playerFor(sess.User()))
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// logSessions tags each session with an id so its start and end lines
// can be matched up.
func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		logger := s.logger.With(
			"session", uuid.NewString(),
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		start := time.Now()
		logger.Info("session started", "active", s.active.Add(1))
		defer func() {
			logger.Info("session ended",
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1))
		}()
		next(sess)
	}
}

// playerFor names the player saved with a session's games.
func playerFor(user string) string {
	if user == "" {
		return "guest"
	}
	return user
}
