package game

import (
	"math"
	"time"
)

// --- Scoring constants ---

const (
	// DefaultTargetDiameterCm is the scoring disc used unless config
	// overrides it (roughly an ISSF 300 m target).
	DefaultTargetDiameterCm = 45.0

	// ringBands divides the scoring disc radius into bands for rings
	// 10 down to 5. Any hit scores at least minRings.
	ringBands = 6
	maxRings  = 10
	minRings  = 5

	// expertMasteryThreshold gates hint suppression in the briefing.
	expertMasteryThreshold = 3
)

// ShotResult is the immutable outcome of one fire action.
type ShotResult struct {
	Hit       bool
	Rings     int     // 0 on a miss, else 5-10
	DropError float64 // cm, positive = impact high
	WindError float64 // cm, positive = impact right
	Timestamp time.Time
}

// ScoreShot converts an impact offset into hit/miss and a ring count.
// The disc edge is a strict miss: an error exactly at the radius scores
// zero.
func ScoreShot(impact Impact, targetDiameterCm float64) (hit bool, rings int) {
	errMag := math.Hypot(impact.X, impact.Y)
	radius := targetDiameterCm / 2
	if errMag >= radius {
		return false, 0
	}
	ringWidth := radius / ringBands
	rings = maxRings - int(math.Floor(errMag/ringWidth))
	if rings < minRings {
		rings = minRings
	}
	return true, rings
}

// UpdateMastery applies the post-shot mastery policy:
// a perfect 10 is worth two points, a solid 7-9 one, a sloppy hit costs
// one (never below zero), and any miss resets the streak outright.
func UpdateMastery(mastery int, hit bool, rings int) int {
	switch {
	case !hit:
		return 0
	case rings == maxRings:
		return mastery + 2
	case rings >= 7:
		return mastery + 1
	default:
		if mastery > 0 {
			return mastery - 1
		}
		return 0
	}
}

// IsExpert reports whether the mastery streak is high enough that the
// briefing should stop showing hint lines.
func IsExpert(mastery int) bool {
	return mastery >= expertMasteryThreshold
}
