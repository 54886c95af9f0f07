package game

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"
)

// TrainingSim is a headless harness used by tests and cmd/range-report.
// It mirrors the frontend loop without any Ebiten dependency: a
// simulated shooter works the campaign with the range card and a wind
// hold, perturbed by a configurable dial error, and applies the
// analyzer's correction after a miss.
type TrainingSim struct {
	Session *Session
	Shots   []ShotRecord

	seed             int64
	mode             Mode
	dialErrorMil     float64 // sigma of gaussian dial noise per axis
	maxAttempts      int     // shots allowed per level before the run fails
	targetDiameterCm float64

	rng *rand.Rand // shooter noise; separate stream from the session's env rolls
}

// ShotRecord is one fired shot with the scenario it was fired under.
type ShotRecord struct {
	LevelIndex int
	Attempt    int
	Env        Environment
	Turrets    TurretState
	Result     ShotResult
	Mastery    int
}

// RunSummary aggregates one full run.
type RunSummary struct {
	LevelsCleared int
	TotalShots    int
	Hits          int
	PerfectShots  int
	AvgRings      float64
	FinalMastery  int
	Completed     bool // cleared every level in the catalogue
}

// SimOption configures a TrainingSim before its first shot.
type SimOption func(*TrainingSim)

// WithSeed fixes both random streams (environment and shooter noise).
func WithSeed(seed int64) SimOption {
	return func(ts *TrainingSim) { ts.seed = seed }
}

// WithMode selects the level catalogue to run.
func WithMode(mode Mode) SimOption {
	return func(ts *TrainingSim) { ts.mode = mode }
}

// WithDialError sets the shooter's gaussian dial noise in MIL.
// Zero models a flawless card shooter.
func WithDialError(sigmaMil float64) SimOption {
	return func(ts *TrainingSim) { ts.dialErrorMil = sigmaMil }
}

// WithMaxAttempts bounds shots per level before the run is abandoned.
func WithMaxAttempts(n int) SimOption {
	return func(ts *TrainingSim) { ts.maxAttempts = n }
}

// WithTargetDiameter overrides the scoring disc size in cm.
func WithTargetDiameter(cm float64) SimOption {
	return func(ts *TrainingSim) { ts.targetDiameterCm = cm }
}

// NewTrainingSim builds a harness with a fresh idle session.
func NewTrainingSim(opts ...SimOption) *TrainingSim {
	ts := &TrainingSim{
		seed:             1,
		mode:             ModeCampaign,
		dialErrorMil:     0.05,
		maxAttempts:      4,
		targetDiameterCm: DefaultTargetDiameterCm,
	}
	for _, opt := range opts {
		opt(ts)
	}
	ts.Session = NewSession(rand.New(rand.NewSource(ts.seed)), zerolog.Nop())
	ts.Session.SetTargetDiameter(ts.targetDiameterCm)
	ts.rng = rand.New(rand.NewSource(ts.seed + 1))
	return ts
}

// Run plays the catalogue from the first level until it is cleared or
// a level survives maxAttempts shots.
func (ts *TrainingSim) Run() RunSummary {
	s := ts.Session
	s.StartBriefing(ts.mode, 0)

	for s.State() == StateBriefing {
		s.StartAiming()
		ts.dialFirstShot()

		attempt := 1
		var res *ShotResult
		for {
			var mastery int
			res, mastery = s.Fire()
			ts.Shots = append(ts.Shots, ShotRecord{
				LevelIndex: s.LevelIndex(),
				Attempt:    attempt,
				Env:        s.Env(),
				Turrets:    s.Turrets(),
				Result:     *res,
				Mastery:    mastery,
			})
			if res.Hit || attempt >= ts.maxAttempts {
				break
			}
			corr := *res
			s.Retry()
			ts.applyCorrection(corr)
			attempt++
		}
		if !res.Hit {
			break // level not cleared, run over
		}
		if s.LevelIndex()+1 >= s.LevelCount() {
			return ts.summarize(true)
		}
		s.NextLevel()
	}
	return ts.summarize(false)
}

// dialFirstShot dials the card elevation and the flag-read wind hold,
// each perturbed by the shooter's dial error.
func (ts *TrainingSim) dialFirstShot() {
	env := ts.Session.Env()
	elev := requiredElevationMil(env.Distance, env.Temperature)
	hold := windDriftCm(env) / CmPerMil(env.Distance)
	elev += ts.rng.NormFloat64() * ts.dialErrorMil
	hold += ts.rng.NormFloat64() * ts.dialErrorMil
	ts.dialTo(elev, hold)
}

// applyCorrection dials exactly what the feedback arithmetic says,
// plus fresh dial noise.
func (ts *TrainingSim) applyCorrection(res ShotResult) {
	env := ts.Session.Env()
	milCm := CmPerMil(env.Distance)
	cur := ts.Session.Turrets()
	elev := cur.Elevation - res.DropError/milCm + ts.rng.NormFloat64()*ts.dialErrorMil
	hold := cur.Windage - res.WindError/milCm + ts.rng.NormFloat64()*ts.dialErrorMil
	ts.dialTo(elev, hold)
}

// dialTo clicks both turrets toward the wanted MIL values.
func (ts *TrainingSim) dialTo(elevMil, windMil float64) {
	cur := ts.Session.Turrets()
	ts.Session.AdjustElevation(int(math.Round((elevMil - cur.Elevation) / turretStepMil)))
	ts.Session.AdjustWindage(int(math.Round((windMil - cur.Windage) / turretStepMil)))
}

func (ts *TrainingSim) summarize(completed bool) RunSummary {
	sum := RunSummary{
		TotalShots:   len(ts.Shots),
		FinalMastery: ts.Session.Mastery(),
		Completed:    completed,
	}
	cleared := map[int]bool{}
	ringTotal := 0
	for _, rec := range ts.Shots {
		if rec.Result.Hit {
			sum.Hits++
			cleared[rec.LevelIndex] = true
			ringTotal += rec.Result.Rings
		}
		if rec.Result.Rings == maxRings {
			sum.PerfectShots++
		}
	}
	sum.LevelsCleared = len(cleared)
	if sum.Hits > 0 {
		sum.AvgRings = float64(ringTotal) / float64(sum.Hits)
	}
	return sum
}
