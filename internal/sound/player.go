// Package sound plays the ambient flight loop and the impact clip.
package sound

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// playbackRate is the speaker mixing rate in Hz.
const playbackRate = beep.SampleRate(44100)

// impactToneDuration is the length of the synthesized fallback impact sound.
const impactToneDuration = 150 * time.Millisecond

// ClipStatus tags a sound asset as loaded or absent. An absent clip degrades
// to a synthesized tone, never an error.
type ClipStatus int

const (
	ClipNotLoaded ClipStatus = iota
	ClipLoaded
)

// Clip is a decoded wav asset or the NotLoaded placeholder.
type Clip struct {
	Status ClipStatus
	buffer *beep.Buffer
	rate   beep.SampleRate
}

// LoadClip decodes a wav file into memory. Any failure (missing path, bad
// file) yields a NotLoaded clip.
func LoadClip(path string) Clip {
	if path == "" {
		return Clip{}
	}
	f, err := os.Open(path)
	if err != nil {
		return Clip{}
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return Clip{}
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	return Clip{
		Status: ClipLoaded,
		buffer: buffer,
		rate:   format.SampleRate,
	}
}

// Player owns the speaker and the two game sounds. All methods are no-ops
// when the speaker could not initialize or the receiver is nil, so callers
// never have to branch on audio availability.
type Player struct {
	logger  *log.Logger
	enabled bool

	mu          sync.Mutex
	muted       bool
	ambientCtrl *beep.Ctrl
	masterVol   *effects.Volume
	impact      Clip
}

// NewPlayer initializes the speaker and loads the two clips from the given
// paths. Missing files fall back to generator tones.
func NewPlayer(ambientPath, impactPath string, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{logger: logger}

	if err := speaker.Init(playbackRate, playbackRate.N(time.Second/10)); err != nil {
		logger.Warn("speaker unavailable, sound disabled", "err", err)
		return p
	}
	p.enabled = true

	ambient := LoadClip(ambientPath)
	p.impact = LoadClip(impactPath)
	logger.Info("sound assets",
		"ambient", ambient.Status == ClipLoaded,
		"impact", p.impact.Status == ClipLoaded)

	p.ambientCtrl = &beep.Ctrl{Streamer: p.ambientStreamer(ambient), Paused: true}
	p.masterVol = &effects.Volume{Streamer: p.ambientCtrl, Base: 2}
	speaker.Play(p.masterVol)

	return p
}

// ambientStreamer builds the looping flight sound: the decoded clip when
// loaded, otherwise a quiet hum.
func (p *Player) ambientStreamer(clip Clip) beep.Streamer {
	if clip.Status == ClipLoaded {
		loop := beep.Loop(-1, clip.buffer.Streamer(0, clip.buffer.Len()))
		if clip.rate != playbackRate {
			return beep.Resample(4, clip.rate, playbackRate, loop)
		}
		return loop
	}

	tone, err := generators.SineTone(playbackRate, 98)
	if err != nil {
		return beep.Silence(-1)
	}
	return &effects.Volume{Streamer: tone, Base: 2, Volume: -5}
}

// StartAmbient unpauses the flight loop.
func (p *Player) StartAmbient() {
	if p == nil || !p.enabled {
		return
	}
	speaker.Lock()
	p.ambientCtrl.Paused = false
	speaker.Unlock()
}

// StopAmbient pauses the flight loop.
func (p *Player) StopAmbient() {
	if p == nil || !p.enabled {
		return
	}
	speaker.Lock()
	p.ambientCtrl.Paused = true
	speaker.Unlock()
}

// PlayImpact plays the crash sound once.
func (p *Player) PlayImpact() {
	if p == nil || !p.enabled {
		return
	}
	p.mu.Lock()
	muted := p.muted
	clip := p.impact
	p.mu.Unlock()
	if muted {
		return
	}

	if clip.Status == ClipLoaded {
		var s beep.Streamer = clip.buffer.Streamer(0, clip.buffer.Len())
		if clip.rate != playbackRate {
			s = beep.Resample(4, clip.rate, playbackRate, clip.buffer.Streamer(0, clip.buffer.Len()))
		}
		speaker.Play(s)
		return
	}

	tone, err := generators.SineTone(playbackRate, 110)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(playbackRate.N(impactToneDuration), tone))
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	if p == nil || !p.enabled {
		return false
	}
	p.mu.Lock()
	p.muted = !p.muted
	muted := p.muted
	p.mu.Unlock()

	speaker.Lock()
	p.masterVol.Silent = muted
	speaker.Unlock()
	return muted
}

// Muted reports the current mute state.
func (p *Player) Muted() bool {
	if p == nil || !p.enabled {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close silences and releases the speaker.
func (p *Player) Close() {
	if p == nil || !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}
