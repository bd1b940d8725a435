package server

import (
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/academia/internal/bootstrap"
	"github.com/yigit/academia/internal/config"
	"github.com/yigit/academia/internal/session"
	"github.com/yigit/academia/internal/transport"
)

// shutdownGrace bounds how long Run waits for active sessions to finish
// after the listener closes. Sessions blocked on a client that never sends
// again would otherwise hold the process open forever.
const shutdownGrace = 10 * time.Second

// Server holds the state for the TCP record server.
type Server struct {
	config     *config.Config
	dispatcher *session.Dispatcher
	logger     zerolog.Logger
	listener   *transport.Listener

	wg sync.WaitGroup
}

// NewServer creates and initializes a new server instance by calling
// bootstrap functions.
func NewServer(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, err
	}

	deps, err := bootstrap.BuildDependencies(cfg, lgr)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:     cfg,
		dispatcher: deps.Dispatcher,
		logger:     lgr,
	}, nil
}

// Run starts accepting connections and blocks until a shutdown signal
// arrives or the listener fails.
func (s *Server) Run() error {
	listener, err := transport.Listen(s.config.ListenAddr())
	if err != nil {
		s.logger.Error().Err(err).Str("addr", s.config.ListenAddr()).Msg("Failed to bind listener")
		return err
	}
	s.listener = listener
	s.logger.Info().Str("addr", listener.Addr()).Msg("Server listening")

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- s.acceptLoop()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown()
}

// acceptLoop hands each accepted connection to its own session goroutine.
// A buffered semaphore caps the number of concurrent sessions.
func (s *Server) acceptLoop() error {
	sem := make(chan struct{}, s.config.Server.MaxClients)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error().Err(err).Msg("Accept failed")
			continue
		}

		s.logger.Info().Str("remoteAddr", conn.RemoteAddr()).Msg("New connection")

		sem <- struct{}{}
		s.wg.Add(1)
		go func(c transport.Conn) {
			defer func() {
				<-sem
				s.wg.Done()
			}()
			s.dispatcher.Serve(c)
		}(conn)
	}
}

// Shutdown stops accepting new connections and waits, up to a grace period,
// for active sessions to drain.
func (s *Server) Shutdown() error {
	s.logger.Info().Msg("Closing listener...")
	if err := s.listener.Close(); err != nil {
		s.logger.Error().Err(err).Msg("Listener close error")
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info().Msg("All sessions drained.")
	case <-time.After(shutdownGrace):
		s.logger.Warn().Msg("Shutdown grace period elapsed with sessions still active")
	}

	s.logger.Info().Msg("Server shutdown complete.")
	return nil
}
