package game

import "math"

// --- Ballistic model constants ---

const (
	gravity        = 9.81  // m/s²
	muzzleVelocity = 850.0 // m/s at the muzzle
	velocityFactor = 0.92  // empirical average-velocity factor standing in for drag integration
	standardTemp   = 15.0  // °C, air density baseline (no drop correction)
	tempDropRate   = 0.002 // fractional drop change per °C away from standard
	driftExponent  = 1.8   // range exponent of the crosswind drift curve
	driftScale     = 0.15  // cm of drift per m/s crosswind at the 100 m reference range
	turretStepMil  = 0.1   // one click of either turret dial
)

// Environment is the atmospheric and range scenario for one shot attempt.
// It is generated once per attempt and never mutated afterwards.
type Environment struct {
	WindSpeed   float64 // m/s, >= 0
	WindDir     float64 // degrees 0-360, bearing the wind blows FROM
	Temperature float64 // °C
	Humidity    float64 // percent, cosmetic only — the drop model ignores it
	Distance    float64 // meters to target, > 0
}

// TurretState holds the two scope dials in MIL. Both move in 0.1 clicks
// and persist across retries within a level until the turrets are reset.
type TurretState struct {
	Elevation float64 // MIL, positive raises the impact
	Windage   float64 // MIL, positive pushes the impact right
}

// Impact is a signed offset from the point of aim, in centimeters.
// Positive X is right of aim, positive Y is above aim.
type Impact struct {
	X float64
	Y float64
}

// CmPerMil returns how many centimeters one MIL subtends at the given
// distance: 10 cm per MIL per 100 m.
func CmPerMil(distance float64) float64 {
	return distance / 10
}

// timeOfFlight estimates seconds to target using the fixed velocity factor.
func timeOfFlight(distance float64) float64 {
	return distance / (muzzleVelocity * velocityFactor)
}

// gravityDropCm returns the temperature-corrected gravity drop in cm.
// Hotter air is thinner and drops the round less; colder air more.
func gravityDropCm(distance, temperature float64) float64 {
	t := timeOfFlight(distance)
	dropM := 0.5 * gravity * t * t
	dropM *= 1 - (temperature-standardTemp)*tempDropRate
	return dropM * 100
}

// CrosswindComponent extracts the lateral wind component in m/s.
// Positive means wind from the shooter's right, pushing the impact left.
// The head/tailwind component is discarded — it does not drive drift.
func CrosswindComponent(windSpeed, windDir float64) float64 {
	return windSpeed * math.Cos((windDir-90)*math.Pi/180)
}

// windDriftCm returns lateral drift in cm. The (d/100)^1.8 curve is a
// gameplay approximation: steeper than linear so long shots punish an
// unread wind, but not a physical drag solution.
func windDriftCm(env Environment) float64 {
	cross := CrosswindComponent(env.WindSpeed, env.WindDir)
	return cross * math.Pow(env.Distance/100, driftExponent) * driftScale
}

// requiredElevationMil is the dial that exactly cancels gravity drop at
// this distance and temperature. The range table rounds it for display;
// the headless shooter dials it directly.
func requiredElevationMil(distance, temperature float64) float64 {
	return gravityDropCm(distance, temperature) / CmPerMil(distance)
}

// ComputeImpact maps an environment and the current turret dials to the
// impact offset. Pure and deterministic: the frontend calls it every
// frame for the preview marker and once more at fire time, and both
// calls must agree.
func ComputeImpact(env Environment, turrets TurretState) Impact {
	milCm := CmPerMil(env.Distance)
	return Impact{
		X: -windDriftCm(env) + turrets.Windage*milCm,
		Y: -gravityDropCm(env.Distance, env.Temperature) + turrets.Elevation*milCm,
	}
}
