// Package input reads raw key bytes from a terminal or pty stream.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
// The game is volume-controlled; keys only start, mute and quit.
type Input struct {
	Quit  bool
	Start bool // Space or Enter
	Mute  bool
	Esc   bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	start time.Time
	mute  time.Time
	esc   time.Time

	lastByte byte // Distinguishes a lone ESC press from an escape sequence
}

// Stream delivers input bytes via a channel and tracks key press times.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the current input state. Keys are "pressed" if seen within the hold
// duration, so a press is observed even when it lands between two ticks.
func ReadInput(s *Stream) Input {
	now := time.Now()

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Source gone (EOF, disconnect): quit the session.
				s.closed = true
				inp := buildInput(&s.state, now)
				inp.Quit = true
				return inp
			}
			applyByteToState(&s.state, b, now)
		default:
			inp := buildInput(&s.state, now)
			inp.Quit = inp.Quit || s.closed
			return inp
		}
	}
}

// ResetKeyInput drains pending bytes and clears key state, so a key held
// during a state transition does not immediately trigger again.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.state = keyState{}
				return
			}
		default:
			s.state = keyState{}
			return
		}
	}
}

func buildInput(state *keyState, now time.Time) Input {
	return Input{
		Quit:  now.Sub(state.quit) < keyHoldDuration,
		Start: now.Sub(state.start) < keyHoldDuration,
		Mute:  now.Sub(state.mute) < keyHoldDuration,
		Esc:   now.Sub(state.esc) < keyHoldDuration,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 3: // 3 = Ctrl-C in raw mode
		state.quit = now
	case ' ', '\n', '\r':
		state.start = now
	case 'm', 'M':
		state.mute = now
	case '\x1b':
		state.esc = now
	case '[', 'O':
		// ESC [ and ESC O introduce terminal escape sequences (arrows,
		// function keys). Those are not an Esc press.
		if state.lastByte == '\x1b' {
			state.esc = time.Time{}
		}
	}
	state.lastByte = b
}
