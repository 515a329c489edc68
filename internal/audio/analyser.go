package audio

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// SpectrumSize is the number of frequency-magnitude bins produced per
// snapshot. Each bin holds a value in 0..255.
const SpectrumSize = 128

// fftSize is the number of time-domain samples per analysis window.
// SpectrumSize = fftSize / 2.
const fftSize = SpectrumSize * 2

// Decibel range mapped onto the 0..255 bin scale. Magnitudes at or below
// minDecibels become 0, at or above maxDecibels become 255.
const (
	minDecibels = -100.0
	maxDecibels = -30.0
)

// analyser converts a window of mono samples into 8-bit magnitude bins.
// Its scratch buffer is shared; the owning Pipeline serializes calls under
// its mutex.
type analyser struct {
	frame []float64
}

func newAnalyser() *analyser {
	return &analyser{
		frame: make([]float64, fftSize),
	}
}

// spectrum computes magnitude bins from the given samples (length fftSize)
// into dst (length SpectrumSize). samples is clobbered by the window function.
func (a *analyser) spectrum(samples []float64, dst []byte) {
	copy(a.frame, samples)
	window.Apply(a.frame, window.Hann)

	coeffs := fft.FFTReal(a.frame)

	for i := 0; i < SpectrumSize && i < len(coeffs); i++ {
		// Normalized magnitude for this bin
		mag := cmplxAbs(coeffs[i]) / float64(fftSize)

		db := minDecibels
		if mag > 0 {
			db = 20 * math.Log10(mag)
		}

		scaled := (db - minDecibels) / (maxDecibels - minDecibels) * 255
		if scaled < 0 {
			scaled = 0
		}
		if scaled > 255 {
			scaled = 255
		}
		dst[i] = byte(scaled)
	}
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
