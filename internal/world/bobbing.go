package world

import "math"

// Default bobbing parameters used when a variant passes zeroes.
const (
	defaultBobAmplitude = 1.2
	defaultBobFrequency = 1.0
	defaultRotAmplitude = 0.08
	defaultRotFrequency = 0.7
)

// Bobber adds a sinusoidal vertical and rotational offset driven by the
// world's shared wave phase. Entities that float embed one. Offsets freeze at
// their last value once the owner is destroyed or the bobber is attached to a
// carrier.
type Bobber struct {
	amplitude float64
	frequency float64
	phase     float64

	rotAmplitude float64
	rotFrequency float64
	rotPhase     float64

	attached bool
	lastDY   float64
	lastRot  float64
}

// NewBobber creates a bobber; zero amplitude or frequency fall back to safe
// defaults.
func NewBobber(amplitude, frequency, phase float64) Bobber {
	if amplitude == 0 {
		amplitude = defaultBobAmplitude
	}
	if frequency == 0 {
		frequency = defaultBobFrequency
	}
	return Bobber{
		amplitude:    amplitude,
		frequency:    frequency,
		phase:        phase,
		rotAmplitude: defaultRotAmplitude,
		rotFrequency: defaultRotFrequency,
		rotPhase:     phase / 2,
	}
}

// Attach fixes the bobber to a carrier; further updates keep the last offsets.
func (b *Bobber) Attach() {
	b.attached = true
}

// Attached reports whether the bobber is fixed to a carrier.
func (b *Bobber) Attached() bool {
	return b.attached
}

// Update recomputes the offsets from the shared wave phase.
// frozen indicates the owner is destroyed; the previous offsets are kept.
func (b *Bobber) Update(wavePhase float64, frozen bool) (dy, rot float64) {
	if frozen || b.attached {
		return b.lastDY, b.lastRot
	}
	b.lastDY = math.Sin(wavePhase*b.frequency+b.phase) * b.amplitude
	b.lastRot = math.Sin(wavePhase*b.rotFrequency+b.rotPhase) * b.rotAmplitude
	return b.lastDY, b.lastRot
}

// Offset returns the most recently computed offsets.
func (b *Bobber) Offset() (dy, rot float64) {
	return b.lastDY, b.lastRot
}
