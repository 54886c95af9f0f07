package game

import "math/rand"

// Bounds for conditions a level leaves unconstrained.
const (
	envTempMin     = -10.0 // °C
	envTempMax     = 35.0  // °C
	envHumidityMin = 20.0  // percent
	envHumidityMax = 95.0  // percent
)

// LevelConfig is the static, read-only definition of one range exercise.
// The invariants MinDist <= MaxDist and MinWind <= MaxWind are an
// authoring contract; the generator does not re-validate them.
type LevelConfig struct {
	ID       int
	Name     string
	Briefing string // shown before the shot, ignored by the solver

	MinDist float64 // m
	MaxDist float64 // m
	MinWind float64 // m/s
	MaxWind float64 // m/s

	FixedWindDir *float64 // degrees; nil = random 0-360
	FixedTemp    *float64 // °C; nil = random within envTempMin..envTempMax
	DisableSway  bool     // suppress the frontend aim wobble
}

// GenerateEnvironment rolls a fresh scenario within the level's bounds.
// The rand source is injected so tests and the headless harness can run
// deterministic scenarios.
func GenerateEnvironment(rng *rand.Rand, lvl LevelConfig) Environment {
	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}

	env := Environment{
		WindSpeed: uniform(lvl.MinWind, lvl.MaxWind),
		WindDir:   uniform(0, 360),
		Distance:  uniform(lvl.MinDist, lvl.MaxDist),
		Humidity:  uniform(envHumidityMin, envHumidityMax),
	}
	if lvl.FixedWindDir != nil {
		env.WindDir = *lvl.FixedWindDir
	}
	if lvl.FixedTemp != nil {
		env.Temperature = *lvl.FixedTemp
	} else {
		env.Temperature = uniform(envTempMin, envTempMax)
	}
	return env
}
