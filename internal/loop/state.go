package loop

import (
	"time"

	"github.com/1Sankalp/VoiceFlight/internal/audio"
	"github.com/1Sankalp/VoiceFlight/internal/input"
	"github.com/1Sankalp/VoiceFlight/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateIdle        GameState = iota // Title screen, waiting for start
	GameStateRunning                      // Active flight
	GameStateTerminating                  // Crash shown, returning to Idle
)

// State holds all game state for one session.
type State struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after the current update cycle
	Field   object.Field

	Delta time.Duration // Measured frame delta
	Steps float64       // Delta in nominal 60Hz ticks

	GameState   GameState
	Glider      *object.Glider
	Score       int
	HighScore   int
	GamesPlayed int

	Running     bool
	Input       input.Input
	InputStream *input.Stream

	// StartErr holds the last audio pipeline failure, shown on the title
	// screen until a start attempt succeeds.
	StartErr error

	terminateLeft    time.Duration // Remaining crash display time
	impactX, impactY float64       // Where the crash happened

	spectrum    [audio.SpectrumSize]byte
	obstacleBuf []*object.Obstacle // Reused each tick by collectObstacles

	skipDraw       bool // Set when a tick was skipped (no volume sample)
	lastMuteToggle time.Time
}

// NewState creates a new initialized game state.
func NewState() *State {
	return &State{
		Objects:   []object.Object{},
		GameState: GameStateIdle,
		Running:   true,
		Field:     object.Field{Width: fieldWidth, Height: fieldHeight},
	}
}

// AddObject adds an object to the game world.
func (s *State) AddObject(obj object.Object) {
	s.Objects = append(s.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (s *State) FlushSpawned() {
	s.Objects = append(s.Objects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext carrying the given volume sample.
func (s *State) UpdateContext(volume float64) object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Steps:   s.Steps,
		Volume:  volume,
		Field:   s.Field,
		Spawner: s,
		Objects: s.Objects,
	}
}
