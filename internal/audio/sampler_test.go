package audio

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestVolumeMeanFloorGain(t *testing.T) {
	tests := []struct {
		name string
		bins []byte
		want float64
	}{
		{"Empty", nil, 0},
		{"Silence", make([]byte, SpectrumSize), 0},
		{"At floor", uniformBins(12), 0},
		{"Below floor", uniformBins(8), 0},
		{"Above floor", uniformBins(32), (32 - NoiseFloor) * VolumeGain},
		{"Max", uniformBins(255), (255 - NoiseFloor) * VolumeGain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Volume(tt.bins)
			if !almostEqual(got, tt.want) {
				t.Errorf("Volume = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVolumeNeverNegative(t *testing.T) {
	for level := 0; level <= 255; level++ {
		if v := Volume(uniformBins(byte(level))); v < 0 {
			t.Fatalf("Volume(%d) = %v, want >= 0", level, v)
		}
	}
}

func TestVolumeAveragesBins(t *testing.T) {
	// One loud bin among silence should barely move the mean.
	bins := make([]byte, SpectrumSize)
	bins[0] = 255
	spike := Volume(bins)

	if loud := Volume(uniformBins(255)); spike >= loud {
		t.Errorf("single-bin spike %v should be far below uniform loudness %v", spike, loud)
	}
	// mean = 255/128 < noise floor, so the spike is fully suppressed
	if spike != 0 {
		t.Errorf("expected single-bin spike to fall under the noise floor, got %v", spike)
	}
}

func TestSpectrumWithoutDevice(t *testing.T) {
	p := NewPipeline(log.New(io.Discard))
	dst := make([]byte, SpectrumSize)

	if p.Spectrum(dst) {
		t.Error("Spectrum should report no value before Ensure")
	}
	if _, ok := p.Sample(dst); ok {
		t.Error("Sample should report no value before Ensure")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close without Ensure should succeed, got %v", err)
	}
}

func TestSpectrumShortDst(t *testing.T) {
	p := NewPipeline(log.New(io.Discard))
	if p.Spectrum(make([]byte, 3)) {
		t.Error("Spectrum should reject an undersized destination")
	}
}

func uniformBins(v byte) []byte {
	bins := make([]byte, SpectrumSize)
	for i := range bins {
		bins[i] = v
	}
	return bins
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
