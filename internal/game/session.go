package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// SessionState is the phase the player session is in.
type SessionState int

const (
	StateMenu SessionState = iota
	StateBriefing
	StateAiming
	StateResult
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateBriefing:
		return "briefing"
	case StateAiming:
		return "aiming"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// Session owns all mutable per-run state: the current environment,
// turret dials, last shot, feedback and the mastery streak. Every
// transition is a synchronous method; invalid invocations (firing from
// the menu, advancing past the last level) are silent no-ops rather
// than errors, so the input layer can stay permissive.
type Session struct {
	state      SessionState
	mode       Mode
	levels     []LevelConfig
	levelIndex int

	env      Environment
	turrets  TurretState
	lastShot *ShotResult
	feedback []string
	mastery  int

	targetDiameterCm float64
	rng              *rand.Rand
	log              zerolog.Logger
}

// NewSession creates an idle session in the menu. The rand source
// drives environment generation only; pass a seeded one for
// deterministic runs and zerolog.Nop() to silence event logging.
func NewSession(rng *rand.Rand, log zerolog.Logger) *Session {
	return &Session{
		state:            StateMenu,
		targetDiameterCm: DefaultTargetDiameterCm,
		rng:              rng,
		log:              log,
	}
}

// SetTargetDiameter overrides the scoring disc size (config hook).
func (s *Session) SetTargetDiameter(cm float64) {
	if cm > 0 {
		s.targetDiameterCm = cm
	}
}

// --- Read accessors ---

func (s *Session) State() SessionState { return s.state }
func (s *Session) Mode() Mode          { return s.mode }
func (s *Session) LevelIndex() int     { return s.levelIndex }
func (s *Session) LevelCount() int     { return len(s.levels) }
func (s *Session) Env() Environment    { return s.env }
func (s *Session) Turrets() TurretState {
	return s.turrets
}
func (s *Session) Mastery() int { return s.mastery }

// Level returns the active level config (zero value while in the menu).
func (s *Session) Level() LevelConfig {
	if s.levelIndex < 0 || s.levelIndex >= len(s.levels) {
		return LevelConfig{}
	}
	return s.levels[s.levelIndex]
}

// LastShot returns the stored result of the current attempt, or nil.
func (s *Session) LastShot() *ShotResult { return s.lastShot }

// Feedback returns the analyzer lines for the last shot, or nil.
func (s *Session) Feedback() []string { return s.feedback }

// ExpertMode reports whether briefing hints should be suppressed.
func (s *Session) ExpertMode() bool { return IsExpert(s.mastery) }

// --- Transitions ---

// StartBriefing leaves the menu for the given mode and level. Ignored
// outside the menu or for an index the catalogue does not have.
func (s *Session) StartBriefing(mode Mode, levelIndex int) {
	if s.state != StateMenu {
		return
	}
	levels := LevelsFor(mode)
	if levelIndex < 0 || levelIndex >= len(levels) {
		return
	}
	s.mode = mode
	s.levels = levels
	s.enterBriefing(levelIndex)
}

// enterBriefing (re)generates the scenario for the target level and
// atomically discards everything from the previous attempt so a stale
// result can never leak into the new state.
func (s *Session) enterBriefing(levelIndex int) {
	s.levelIndex = levelIndex
	s.env = GenerateEnvironment(s.rng, s.levels[levelIndex])
	s.turrets = TurretState{}
	s.lastShot = nil
	s.feedback = nil
	s.state = StateBriefing
	s.log.Info().
		Str("level", s.Level().Name).
		Float64("distance_m", s.env.Distance).
		Float64("wind_mps", s.env.WindSpeed).
		Float64("temp_c", s.env.Temperature).
		Msg("briefing")
}

// StartAiming moves from the briefing to the firing line.
func (s *Session) StartAiming() {
	if s.state != StateBriefing {
		return
	}
	s.state = StateAiming
}

// AdjustElevation turns the elevation dial by whole clicks. Accepted
// only on the firing line.
func (s *Session) AdjustElevation(steps int) {
	if s.state != StateAiming {
		return
	}
	s.turrets.Elevation += float64(steps) * turretStepMil
}

// AdjustWindage turns the windage dial by whole clicks.
func (s *Session) AdjustWindage(steps int) {
	if s.state != StateAiming {
		return
	}
	s.turrets.Windage += float64(steps) * turretStepMil
}

// PreviewImpact exposes the live solver for the reticle preview.
func (s *Session) PreviewImpact() Impact {
	return ComputeImpact(s.env, s.turrets)
}

// RangeTable returns the elevation card for the current temperature.
func (s *Session) RangeTable() []RangeEntry {
	return BuildRangeTable(s.env.Temperature)
}

// Fire resolves the shot: solve, score, update mastery, analyze.
// Outside AIMING it is ignored and returns (nil, mastery).
func (s *Session) Fire() (*ShotResult, int) {
	if s.state != StateAiming {
		return nil, s.mastery
	}
	impact := ComputeImpact(s.env, s.turrets)
	hit, rings := ScoreShot(impact, s.targetDiameterCm)
	res := &ShotResult{
		Hit:       hit,
		Rings:     rings,
		DropError: impact.Y,
		WindError: impact.X,
		Timestamp: time.Now(),
	}
	s.mastery = UpdateMastery(s.mastery, hit, rings)
	s.feedback = AnalyzeShot(*res, s.env)
	s.lastShot = res
	s.state = StateResult
	s.log.Info().
		Str("level", s.Level().Name).
		Bool("hit", hit).
		Int("rings", rings).
		Float64("drop_err_cm", res.DropError).
		Float64("wind_err_cm", res.WindError).
		Int("mastery", s.mastery).
		Msg("shot")
	return res, s.mastery
}

// Retry returns to the firing line with the same environment and the
// same turret dials, so the correction just learned can be applied.
func (s *Session) Retry() {
	if s.state != StateResult {
		return
	}
	s.lastShot = nil
	s.feedback = nil
	s.state = StateAiming
}

// NextLevel advances to the adjacent level. From RESULT it requires a
// hit; from BRIEFING it just browses (and re-rolls the scenario).
func (s *Session) NextLevel() {
	next := s.levelIndex + 1
	if next >= len(s.levels) {
		return
	}
	switch s.state {
	case StateResult:
		if s.lastShot == nil || !s.lastShot.Hit {
			return
		}
		s.enterBriefing(next)
	case StateBriefing:
		s.enterBriefing(next)
	}
}

// PrevLevel browses back one level; only meaningful in the briefing.
func (s *Session) PrevLevel() {
	if s.state != StateBriefing || s.levelIndex == 0 {
		return
	}
	s.enterBriefing(s.levelIndex - 1)
}

// ReturnToMenu aborts to the idle state from anywhere, dropping the
// mode, the last shot and the whole mastery streak.
func (s *Session) ReturnToMenu() {
	s.state = StateMenu
	s.mode = ModeNone
	s.levels = nil
	s.levelIndex = 0
	s.lastShot = nil
	s.feedback = nil
	s.mastery = 0
	s.log.Info().Msg("returned to menu")
}
