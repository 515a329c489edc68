// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/1Sankalp/VoiceFlight/internal/draw"
	"github.com/1Sankalp/VoiceFlight/internal/input"
	"github.com/1Sankalp/VoiceFlight/internal/object"
	"github.com/1Sankalp/VoiceFlight/internal/sound"
)

// VolumeSource is the audio capture pipeline the loop flies on. Ensure is
// called on game start and must be idempotent; Sample fills dst with the
// current frequency bins, reduces them to the volume scalar, and reports
// whether a sample was available.
type VolumeSource interface {
	Ensure() error
	Sample(dst []byte) (float64, bool)
	Close() error
}

// Options configures a game session.
type Options struct {
	Volume VolumeSource
	Sound  *sound.Player  // Optional; nil disables audio playback
	Sprite *object.Sprite // Optional glider art
	Logger *log.Logger

	// TermSize reports the terminal dimensions each frame. Defaults to the
	// local stdout size; SSH sessions supply their pty size instead.
	TermSize draw.TermSizeFunc

	SpawnInterval time.Duration // Defaults to DefaultSpawnInterval
	GapHeight     float64       // Defaults to object.DefaultGapHeight

	// OwnsVolume makes the loop close the volume source on exit. Shared
	// sources (one host microphone, many sessions) leave this false.
	OwnsVolume bool
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	if opts.SpawnInterval <= 0 {
		opts.SpawnInterval = DefaultSpawnInterval
	}
	if opts.GapHeight <= 0 {
		opts.GapHeight = object.DefaultGapHeight
	}

	state := NewState()
	state.InputStream = input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	defer func() {
		if opts.Sound != nil {
			opts.Sound.StopAmbient()
		}
		if opts.OwnsVolume && opts.Volume != nil {
			if err := opts.Volume.Close(); err != nil {
				opts.Logger.Error("closing audio pipeline", "err", err)
			}
		}
	}()

	termWidth, termHeight, _ := opts.TermSize()
	canvas := draw.NewScaledCanvas(renderSize(termWidth, termHeight))
	writer := draw.NewChunkWriter(w, 0, 0)
	layoutCanvas(canvas, writer, termWidth, termHeight)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		state.Steps = state.Delta.Seconds() * NominalTickRate
		lastTime = frameStart

		processInput(state, opts)
		updateScreen(canvas, writer, opts)

		runTick(state, opts)

		if !state.skipDraw {
			if err := drawFrame(state, writer, canvas); err != nil {
				return err
			}
		}
		state.skipDraw = false

		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	return nil
}

// runTick advances one simulation tick. A panic in an object update must not
// take down the session, so the tick is isolated and logged.
func runTick(state *State, opts Options) {
	defer func() {
		if r := recover(); r != nil {
			opts.Logger.Error("tick panicked", "state", state.GameState, "panic", r)
		}
	}()

	switch state.GameState {
	case GameStateIdle:
		updateIdleState(state, opts)
	case GameStateRunning:
		updateRunningState(state, opts)
	case GameStateTerminating:
		updateTerminatingState(state)
	}
}

// processInput reads and processes all pending input.
func processInput(state *State, opts Options) {
	state.Input = input.ReadInput(state.InputStream)

	if state.Input.Quit {
		state.Running = false
		return
	}

	if state.Input.Mute && opts.Sound != nil {
		now := time.Now()
		if now.Sub(state.lastMuteToggle) > muteDebounce {
			state.lastMuteToggle = now
			opts.Sound.ToggleMute()
		}
	}

	// Esc abandons a flight in progress.
	if state.Input.Esc && state.GameState == GameStateRunning {
		if state.Score > state.HighScore {
			state.HighScore = state.Score
		}
		state.GamesPlayed++
		state.GameState = GameStateIdle
		input.ResetKeyInput(state.InputStream)
	}
}

// renderSize caps terminal dimensions at the maximum render resolution.
func renderSize(termWidth, termHeight int) (cols, rows int, logicalW, logicalH float64) {
	cols, rows = termWidth, termHeight
	if cols > maxRenderCols {
		cols = maxRenderCols
	}
	if rows > maxRenderRows {
		rows = maxRenderRows
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows, fieldWidth, fieldHeight
}

// layoutCanvas centers the render area inside the terminal.
func layoutCanvas(canvas *draw.Canvas, writer *draw.ChunkWriter, termWidth, termHeight int) {
	cols, rows, _, _ := renderSize(termWidth, termHeight)
	canvas.Resize(cols, rows)
	canvas.SetOffset((termWidth-cols)/2, (termHeight-rows)/2)
	writer.SetOffset(canvas.OffsetCol(), canvas.OffsetRow())
}

// updateScreen checks for terminal resize and updates canvas scaling.
func updateScreen(canvas *draw.Canvas, writer *draw.ChunkWriter, opts Options) {
	termWidth, termHeight, err := opts.TermSize()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		return
	}
	layoutCanvas(canvas, writer, termWidth, termHeight)
}

// drawFrame clears the screen and draws all objects.
func drawFrame(state *State, writer *draw.ChunkWriter, canvas *draw.Canvas) error {
	writer.WriteString("\033[H\033[2J")
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: writer,
	}

	for _, obj := range state.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	canvas.Render(writer)

	if canvas.OffsetCol() >= 1 || canvas.OffsetRow() >= 1 {
		canvas.RenderBorder(writer)
	}

	// UI overlay goes after the canvas so it stays on top
	drawUI(state, writer, canvas)

	return writer.Flush()
}
