package game

import (
	"math"
	"math/rand"
)

// Sway tuning. Two detuned sine pairs per axis read as breathing plus
// muscle tremor without any per-frame randomness.
const (
	swayDefaultAmplitudeMil = 0.25 // peak reticle wobble
	swayBaseFreqHz          = 0.22 // slow breathing component
	swayTremorFreqHz        = 1.7  // fast tremor component
	swayTremorWeight        = 0.3  // tremor share of the amplitude
	swayTicksPerSecond      = 60.0
)

// SwayModel is a deterministic reticle wobble for the frontend. It is
// purely cosmetic: the solver never sees it, so the preview marker and
// the fired impact stay identical for the same dials.
type SwayModel struct {
	amplitudeMil float64
	disabled     bool

	phaseX, phaseY     float64
	tremorPX, tremorPY float64
	freqJitter         float64
}

// NewSwayModel seeds the oscillator phases. A new model is built per
// briefing so every attempt wobbles differently but replays exactly.
func NewSwayModel(seed int64, amplitudeMil float64, disabled bool) *SwayModel {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- cosmetic only
	if amplitudeMil <= 0 {
		amplitudeMil = swayDefaultAmplitudeMil
	}
	return &SwayModel{
		amplitudeMil: amplitudeMil,
		disabled:     disabled,
		phaseX:       rng.Float64() * 2 * math.Pi,
		phaseY:       rng.Float64() * 2 * math.Pi,
		tremorPX:     rng.Float64() * 2 * math.Pi,
		tremorPY:     rng.Float64() * 2 * math.Pi,
		freqJitter:   0.9 + rng.Float64()*0.2,
	}
}

// Offset returns the reticle displacement in MIL at the given frame
// tick. Zero when the level disables sway.
func (s *SwayModel) Offset(tick int) (dx, dy float64) {
	if s.disabled {
		return 0, 0
	}
	t := float64(tick) / swayTicksPerSecond
	base := s.amplitudeMil * (1 - swayTremorWeight)
	tremor := s.amplitudeMil * swayTremorWeight
	wBase := 2 * math.Pi * swayBaseFreqHz * s.freqJitter
	wTremor := 2 * math.Pi * swayTremorFreqHz * s.freqJitter
	dx = base*math.Sin(wBase*t+s.phaseX) + tremor*math.Sin(wTremor*t+s.tremorPX)
	dy = base*math.Sin(wBase*t*0.83+s.phaseY) + tremor*math.Sin(wTremor*t*1.11+s.tremorPY)
	return dx, dy
}
