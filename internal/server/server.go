// Package server serves the terminal preview of the deck over SSH.
package server

import (
	"context"
	"errors"
	"net"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	lm "github.com/charmbracelet/wish/logging"
	"github.com/maaslalani/pitchdeck/internal/model"
)

// Server hosts the preview for every SSH session.
type Server struct {
	host   string
	port   int
	srv    *ssh.Server
	logger *log.Logger
}

// New creates a server listening on host:port. The host key is read from
// keyPath and generated there when missing. Each session gets its own copy
// of presentation.
func New(keyPath, host string, port int, presentation model.Model, logger *log.Logger) (*Server, error) {
	s := &Server{host: host, port: port, logger: logger}
	srv, err := wish.NewServer(
		wish.WithAddress(s.Addr()),
		wish.WithHostKeyPath(keyPath),
		wish.WithMiddleware(
			bm.Middleware(handler(presentation)),
			activeterm.Middleware(),
			lm.MiddlewareWithLogger(logger),
		),
	)
	if err != nil {
		return nil, err
	}
	s.srv = srv
	return s, nil
}

func handler(presentation model.Model) bm.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sess.Pty()
		return presentation.WithSize(pty.Window.Width, pty.Window.Height), []tea.ProgramOption{tea.WithAltScreen()}
	}
}

// Addr is the address the server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Starting SSH server", "addr", s.Addr())
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting sessions and waits for open ones until ctx is
// done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping SSH server")
	return s.srv.Shutdown(ctx)
}
