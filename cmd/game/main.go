package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/1Sankalp/VoiceFlight/internal/audio"
	"github.com/1Sankalp/VoiceFlight/internal/config"
	"github.com/1Sankalp/VoiceFlight/internal/loop"
	"github.com/1Sankalp/VoiceFlight/internal/object"
	"github.com/1Sankalp/VoiceFlight/internal/sound"
)

func main() {
	logger := newLogger()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	pipeline := audio.NewPipeline(logger)
	player := sound.NewPlayer(
		config.GetEnv("FLIGHT_AMBIENT_WAV", ""),
		config.GetEnv("FLIGHT_IMPACT_WAV", ""),
		logger,
	)
	defer player.Close()

	opts := loop.Options{
		Volume:        pipeline,
		Sound:         player,
		Sprite:        object.LoadSprite(config.GetEnv("FLIGHT_SPRITE", "")),
		Logger:        logger,
		SpawnInterval: config.GetEnvDuration("FLIGHT_SPAWN_INTERVAL", loop.DefaultSpawnInterval),
		GapHeight:     config.GetEnvFloat("FLIGHT_GAP_HEIGHT", object.DefaultGapHeight),
		OwnsVolume:    true,
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes structured logs to FLIGHT_LOG. The terminal belongs to
// the game while running, so without a log file logging is discarded.
func newLogger() *log.Logger {
	path := config.GetEnv("FLIGHT_LOG", "")
	if path == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	return log.New(f)
}
