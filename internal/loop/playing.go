package loop

import (
	"github.com/1Sankalp/VoiceFlight/internal/input"
	"github.com/1Sankalp/VoiceFlight/internal/object"
)

// updateIdleState handles the title screen.
func updateIdleState(state *State, opts Options) {
	if state.Input.Start {
		startGame(state, opts)
	}
}

// startGame acquires the audio pipeline and resets the field for a new
// flight. If the microphone cannot be opened the error is kept for the
// title screen and the game stays idle.
func startGame(state *State, opts Options) {
	if opts.Volume != nil {
		if err := opts.Volume.Ensure(); err != nil {
			state.StartErr = err
			opts.Logger.Error("audio pipeline unavailable", "err", err)
			input.ResetKeyInput(state.InputStream)
			return
		}
	}
	state.StartErr = nil

	for _, obj := range state.Objects {
		object.ReleaseObject(obj)
	}
	state.Objects = state.Objects[:0]
	state.toSpawn = state.toSpawn[:0]
	state.Score = 0

	state.AddObject(object.NewScenery())
	state.AddObject(object.NewObstacleSpawner(opts.SpawnInterval, opts.GapHeight))

	glider := object.NewGlider(gliderX, fieldHeight/2)
	glider.Sprite = opts.Sprite
	state.Glider = glider
	state.AddObject(glider)

	input.ResetKeyInput(state.InputStream)
	if opts.Sound != nil {
		opts.Sound.StartAmbient()
	}
	state.GameState = GameStateRunning
}

// updateRunningState handles active flight: sample the microphone, advance
// all objects, then check collisions against the freshly updated positions.
func updateRunningState(state *State, opts Options) {
	if opts.Volume == nil {
		state.skipDraw = true
		return
	}
	volume, ok := opts.Volume.Sample(state.spectrum[:])
	if !ok {
		// No sample this frame. Freezing the tick beats flying blind.
		state.skipDraw = true
		return
	}

	if err := updateObjects(state, volume); err != nil {
		opts.Logger.Error("object update failed", "err", err)
	}

	state.obstacleBuf = collectObstacles(state.Objects, state.obstacleBuf[:0])
	if impact, hit := detectCollision(state.Glider.Bounds(), state.Glider.Hitbox(), state.Field, state.obstacleBuf); hit {
		beginTerminating(state, opts, impact)
		return
	}

	state.Score++
}

// updateObjects updates all objects and removes any that request removal.
func updateObjects(state *State, volume float64) error {
	ctx := state.UpdateContext(volume)

	kept := state.Objects[:0] // reuse backing array
	for _, obj := range state.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	state.Objects = kept

	state.FlushSpawned()
	return nil
}

// beginTerminating starts the crash sequence.
func beginTerminating(state *State, opts Options, impact impactPoint) {
	state.impactX = impact.X
	state.impactY = impact.Y
	state.terminateLeft = terminateDelay

	if opts.Sound != nil {
		opts.Sound.PlayImpact()
		opts.Sound.StopAmbient()
	}
	object.SpawnImpact(impact.X, impact.Y,
		impactParticleCount, impactParticleSpeed, impactParticleLifetime, state)
	state.FlushSpawned()

	state.GameState = GameStateTerminating
}

// updateTerminatingState shows the crash for a short delay. Only the debris
// particles keep moving; the rest of the field is frozen in place.
func updateTerminatingState(state *State) {
	ctx := state.UpdateContext(0)
	kept := state.Objects[:0]
	for _, obj := range state.Objects {
		if _, isParticle := obj.(*object.Particle); isParticle {
			remove, _ := obj.Update(ctx)
			if remove {
				object.ReleaseObject(obj)
				continue
			}
		}
		kept = append(kept, obj)
	}
	state.Objects = kept

	state.terminateLeft -= state.Delta
	if state.terminateLeft > 0 {
		return
	}

	if state.Score > state.HighScore {
		state.HighScore = state.Score
	}
	state.GamesPlayed++
	state.GameState = GameStateIdle
	input.ResetKeyInput(state.InputStream)
}
