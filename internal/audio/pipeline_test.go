package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/malgo"
)

// liveTestPipeline returns a pipeline that reports a live device, with a
// full ring of sine samples, without opening real capture hardware.
func liveTestPipeline() *Pipeline {
	p := NewPipeline(log.New(io.Discard))
	p.device = new(malgo.Device)
	for i := range p.ring {
		p.ring[i] = math.Sin(float64(i) / 4)
	}
	p.received = len(p.ring)
	return p
}

// sineFrames encodes n mono samples as the little-endian f32 bytes the
// capture callback receives.
func sineFrames(n int) []byte {
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		bits := math.Float32bits(float32(math.Sin(float64(i) / 4)))
		binary.LittleEndian.PutUint32(buf[i*4:], bits)
	}
	return buf
}

func TestSpectrumLiveDevice(t *testing.T) {
	p := liveTestPipeline()
	dst := make([]byte, SpectrumSize)

	if !p.Spectrum(dst) {
		t.Fatal("Spectrum reported no value with a live device and full ring")
	}
	nonzero := false
	for _, b := range dst {
		if b != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("all bins zero for a full-scale sine input")
	}
}

// One pipeline serves every SSH session, so Spectrum must be safe while the
// capture callback keeps writing. Run with -race.
func TestSpectrumConcurrentSessions(t *testing.T) {
	p := liveTestPipeline()
	input := sineFrames(64)

	stop := make(chan struct{})
	var captures sync.WaitGroup
	captures.Add(1)
	go func() {
		defer captures.Done()
		for {
			select {
			case <-stop:
				return
			default:
				p.onCapturedFrames(nil, input, 64)
			}
		}
	}()

	var sessions sync.WaitGroup
	for s := 0; s < 2; s++ {
		sessions.Add(1)
		go func() {
			defer sessions.Done()
			dst := make([]byte, SpectrumSize)
			for i := 0; i < 200; i++ {
				if !p.Spectrum(dst) {
					t.Error("Spectrum reported no value with a live device")
					return
				}
			}
		}()
	}

	sessions.Wait()
	close(stop)
	captures.Wait()
}
