package loop

import "time"

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// NominalTickRate converts measured frame deltas into tick-scaled steps.
// Physics constants are expressed per 60Hz tick; a frame that took 1/30s
// advances the simulation by 2.0 steps.
const NominalTickRate = 60.0

// Logical flight field. Game objects use these dimensions; rendering scales
// them to the actual terminal size.
const (
	fieldWidth  = 800.0
	fieldHeight = 600.0
)

// gliderX is the glider's fixed horizontal position in the field.
const gliderX = 160.0

// DefaultSpawnInterval is the wall-clock cadence between obstacle spawns.
const DefaultSpawnInterval = 1800 * time.Millisecond

// terminateDelay is how long the crash is shown before returning to the
// title screen.
const terminateDelay = 750 * time.Millisecond

// Impact debris burst.
const (
	impactParticleCount    = 24
	impactParticleSpeed    = 90.0 // Logical units per second
	impactParticleLifetime = 0.9  // Seconds
)

// muteDebounce stops a held M key from re-toggling mute every frame.
const muteDebounce = 250 * time.Millisecond

// Maximum render resolution. Larger terminals get the canvas centered with
// a border; keeping the cell count bounded keeps per-frame output small
// enough for remote sessions.
const (
	maxRenderCols = 200
	maxRenderRows = 60
)
