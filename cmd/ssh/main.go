package main

import (
	"bufio"
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/1Sankalp/VoiceFlight/internal/audio"
	"github.com/1Sankalp/VoiceFlight/internal/config"
	"github.com/1Sankalp/VoiceFlight/internal/draw"
	"github.com/1Sankalp/VoiceFlight/internal/loop"
	"github.com/1Sankalp/VoiceFlight/internal/object"
	"github.com/1Sankalp/VoiceFlight/internal/sound"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

// Kiosk deployment: the host machine's microphone drives every SSH session.
// The pipeline and speaker output are shared; each session gets its own
// game loop and rendering.
var (
	pipeline *audio.Pipeline
	player   *sound.Player
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "voiceflight",
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("starting", "host", host, "port", port, "hostKey", hostKeyPath)

	pipeline = audio.NewPipeline(logger)
	player = sound.NewPlayer(
		config.GetEnv("FLIGHT_AMBIENT_WAV", ""),
		config.GetEnv("FLIGHT_IMPACT_WAV", ""),
		logger,
	)

	sprite := object.LoadSprite(config.GetEnv("FLIGHT_SPRITE", ""))
	spawnInterval := config.GetEnvDuration("FLIGHT_SPAWN_INTERVAL", loop.DefaultSpawnInterval)
	gapHeight := config.GetEnvFloat("FLIGHT_GAP_HEIGHT", object.DefaultGapHeight)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(logger, sprite, spawnInterval, gapHeight),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}

	if err := pipeline.Close(); err != nil {
		logger.Error("closing audio pipeline", "err", err)
	}
	player.Close()
}

// gameMiddleware runs a game session on each SSH connection.
func gameMiddleware(logger *log.Logger, sprite *object.Sprite, spawnInterval time.Duration, gapHeight float64) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				wish.Fatalln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			logger.Info("new session",
				"user", sess.User(), "term", pty.Term,
				"size", pty.Window)

			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			reader := bufio.NewReader(sess)
			err := loop.Run(reader, sess, loop.Options{
				Volume:        pipeline,
				Sound:         player,
				Sprite:        sprite,
				Logger:        logger.With("user", sess.User()),
				TermSize:      sizeTracker.getSize,
				SpawnInterval: spawnInterval,
				GapHeight:     gapHeight,
				// Shared host microphone; the server closes it on shutdown.
				OwnsVolume: false,
			})
			if err != nil {
				logger.Error("session error", "user", sess.User(), "err", err)
			}

			logger.Info("session ended", "user", sess.User())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
