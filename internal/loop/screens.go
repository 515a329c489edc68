package loop

import (
	"fmt"

	"github.com/1Sankalp/VoiceFlight/internal/draw"
)

// drawUI draws the UI overlay for the current game state.
func drawUI(state *State, w *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.GameState {
	case GameStateIdle:
		drawTitleScreen(state, w, centerX, centerY)
	case GameStateRunning:
		drawFlightHUD(state, w, termWidth)
	case GameStateTerminating:
		drawFlightHUD(state, w, termWidth)
		drawImpactMark(state, w, canvas)
	}
}

// drawTitleScreen draws the title screen, with the last flight's result
// once at least one game has been played.
func drawTitleScreen(state *State, w *draw.ChunkWriter, centerX, centerY int) {
	title := "V O I C E   F L I G H T"
	w.WriteAt(centerX-len(title)/2, centerY-4, title)

	subtitle := "Make noise to climb, stay quiet to dive"
	w.WriteAt(centerX-len(subtitle)/2, centerY-2, subtitle)

	if state.GamesPlayed > 0 {
		scoreText := fmt.Sprintf("Last flight: %d", state.Score)
		w.WriteAt(centerX-len(scoreText)/2, centerY, scoreText)
	}
	if state.HighScore > 0 {
		bestText := fmt.Sprintf("Best: %d", state.HighScore)
		w.WriteAt(centerX-len(bestText)/2, centerY+1, bestText)
	}

	prompt := "Press SPACE to fly - Q to quit - M to mute"
	w.WriteAt(centerX-len(prompt)/2, centerY+3, prompt)

	if state.StartErr != nil {
		errText := fmt.Sprintf("Microphone unavailable: %v", state.StartErr)
		w.WriteAt(centerX-len(errText)/2, centerY+5, errText)
	}
}

// drawFlightHUD draws the in-flight score line.
func drawFlightHUD(state *State, w *draw.ChunkWriter, termWidth int) {
	w.WriteAt(2, 1, fmt.Sprintf("Score: %d", state.Score))

	if state.HighScore > 0 {
		bestText := fmt.Sprintf("Best: %d", state.HighScore)
		w.WriteAt(termWidth-len(bestText)-1, 1, bestText)
	}
}

// drawImpactMark marks the collision point during the crash sequence.
func drawImpactMark(state *State, w *draw.ChunkWriter, canvas *draw.Canvas) {
	col, row := canvas.LogicalToTerminal(state.impactX, state.impactY)
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	w.WriteAt(col, row, "X")
}
