package audio

// Volume reduction constants. The noise floor keeps ambient room noise from
// registering as input; the gain tunes sensitivity without touching the
// flight physics downstream.
const (
	// NoiseFloor is subtracted from the mean bin magnitude (0..255 scale).
	NoiseFloor = 12.0
	// VolumeGain scales the floored mean into the volume units the flight
	// dynamics expect.
	VolumeGain = 1.5
)

// Volume reduces a frequency-magnitude snapshot to a single non-negative
// scalar: arithmetic mean of all bins, minus the noise floor (clamped at
// zero), times the gain. Averaging suppresses single-bin transients.
func Volume(bins []byte) float64 {
	if len(bins) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bins {
		sum += float64(b)
	}
	mean := sum / float64(len(bins))

	v := mean - NoiseFloor
	if v < 0 {
		return 0
	}
	return v * VolumeGain
}
