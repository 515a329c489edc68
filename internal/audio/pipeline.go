// Package audio captures microphone input and reduces it to the per-tick
// volume scalar that drives the flight dynamics.
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/malgo"
)

// captureSampleRate is the capture device sample rate in Hz.
const captureSampleRate = 44100

// Pipeline owns the microphone capture resources: a miniaudio context, a
// capture device, and a ring of recent mono samples. At most one live
// capture handle exists per Pipeline; Ensure is idempotent and Close
// releases everything so no microphone handle leaks.
type Pipeline struct {
	logger *log.Logger

	mu       sync.Mutex
	ctx      *malgo.AllocatedContext
	device   *malgo.Device
	ring     []float64 // Most recent samples, ring[pos] is the oldest
	pos      int
	received int // Total samples seen, saturates at len(ring)

	analyser *analyser
	frame    []float64 // Scratch window handed to the analyser
}

// NewPipeline creates an inactive pipeline. No audio resources are acquired
// until Ensure is called.
func NewPipeline(logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		logger:   logger,
		ring:     make([]float64, fftSize),
		analyser: newAnalyser(),
		frame:    make([]float64, fftSize),
	}
}

// Ensure acquires the capture context and device if they are not already
// live. Repeated calls while live are no-ops. A failure (no device,
// permission denied) leaves the pipeline inactive and is terminal for the
// caller's start action.
func (p *Pipeline) Ensure() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device != nil {
		return nil
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		p.logger.Debug("miniaudio", "message", message)
	})
	if err != nil {
		return fmt.Errorf("init audio context: %w", err)
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatF32
	deviceConfig.Capture.Channels = 1
	deviceConfig.SampleRate = captureSampleRate
	deviceConfig.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: p.onCapturedFrames,
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return fmt.Errorf("open capture device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		_ = ctx.Uninit()
		ctx.Free()
		return fmt.Errorf("start capture device: %w", err)
	}

	p.ctx = ctx
	p.device = device
	p.logger.Info("capture device started", "sampleRate", captureSampleRate)
	return nil
}

// onCapturedFrames is the device data callback: mono f32 frames arrive as
// little-endian bytes and are appended to the ring.
func (p *Pipeline) onCapturedFrames(_, input []byte, frameCount uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := int(frameCount)
	if n*4 > len(input) {
		n = len(input) / 4
	}
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint32(input[i*4 : i*4+4])
		p.ring[p.pos] = float64(math.Float32frombits(bits))
		p.pos = (p.pos + 1) % len(p.ring)
	}
	p.received += n
	if p.received > len(p.ring) {
		p.received = len(p.ring)
	}
}

// Spectrum fills dst (length SpectrumSize) with the current 8-bit
// frequency-magnitude snapshot. It returns false when no capture device is
// live or the ring has not filled yet; the caller must skip the tick.
// Safe for concurrent use: one pipeline may feed many game sessions.
func (p *Pipeline) Spectrum(dst []byte) bool {
	if len(dst) < SpectrumSize {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device == nil || p.received < len(p.ring) {
		return false
	}
	// Unroll the ring into chronological order. The lock stays held through
	// the analyse step: p.frame and the analyser scratch are shared across
	// all callers of this pipeline.
	n := len(p.ring)
	for i := 0; i < n; i++ {
		p.frame[i] = p.ring[(p.pos+i)%n]
	}

	p.analyser.spectrum(p.frame, dst)
	return true
}

// Sample is Spectrum followed by the volume reduction, for callers that only
// need the scalar.
func (p *Pipeline) Sample(dst []byte) (float64, bool) {
	if !p.Spectrum(dst) {
		return 0, false
	}
	return Volume(dst), true
}

// Close stops the capture device and releases the context. Safe to call
// repeatedly and safe to call without a prior Ensure. After Close, Spectrum
// returns false until Ensure succeeds again.
func (p *Pipeline) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device != nil {
		p.device.Uninit()
		p.device = nil
	}
	if p.ctx != nil {
		err := p.ctx.Uninit()
		p.ctx.Free()
		p.ctx = nil
		if err != nil {
			return fmt.Errorf("uninit audio context: %w", err)
		}
	}
	p.received = 0
	p.pos = 0
	return nil
}
