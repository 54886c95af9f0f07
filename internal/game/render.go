package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
)

// Presentation constants.
const (
	pixelsPerMil = 48.0 // reticle scale: screen pixels per MIL

	// Continuous-press turret behaviour: one click immediately, then
	// after repeatDelayTicks the dial repeats every repeatPeriodTicks.
	repeatDelayTicks  = 18
	repeatPeriodTicks = 4

	// hudScale is the integer upscale factor for the key legend text.
	hudScale = 2
)

// Game is the ebiten frontend. All gameplay state lives in the Session;
// the Game only holds input edges, the sway oscillator and draw buffers.
type Game struct {
	width, height int
	settings      Settings
	session       *Session
	sway          *SwayModel
	face          *text.GoXFace
	log           zerolog.Logger

	tick      int
	prevKeys  map[ebiten.Key]bool
	curKeys   map[ebiten.Key]bool
	holdTicks map[ebiten.Key]int

	// Menu cursor.
	menuMode  Mode
	menuLevel int

	showTable bool // range card overlay toggle

	swayRng *rand.Rand // seeds one SwayModel per briefing

	hudBuf *ebiten.Image // legend rendered at 1x, blitted at hudScale
}

// New builds the frontend around a fresh session.
func New(settings Settings, log zerolog.Logger) *Game {
	g := &Game{
		width:     settings.WindowWidth,
		height:    settings.WindowHeight,
		settings:  settings,
		session:   NewSession(rand.New(rand.NewSource(time.Now().UnixNano())), log),
		face:      text.NewGoXFace(basicfont.Face7x13),
		log:       log,
		prevKeys:  map[ebiten.Key]bool{},
		holdTicks: map[ebiten.Key]int{},
		menuMode:  ModeCampaign,
		swayRng:   rand.New(rand.NewSource(time.Now().UnixNano() + 7777)),
	}
	g.session.SetTargetDiameter(settings.TargetDiameterCm)
	g.sway = NewSwayModel(g.swayRng.Int63(), settings.SwayAmplitudeMil, true)
	g.hudBuf = ebiten.NewImage(g.width/hudScale, g.height/hudScale)
	return g
}

func (g *Game) Update() error {
	g.tick++
	g.curKeys = map[ebiten.Key]bool{}
	g.handleInput()
	g.prevKeys = g.curKeys
	return nil
}

// pressed reports an edge-triggered key press.
func (g *Game) pressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	g.curKeys[k] = down
	return down && !g.prevKeys[k]
}

// repeatSteps implements the continuous-press dial: one step on the
// press edge, then a repeating step after the hold delay.
func (g *Game) repeatSteps(k ebiten.Key) int {
	down := ebiten.IsKeyPressed(k)
	g.curKeys[k] = down
	if !down {
		g.holdTicks[k] = 0
		return 0
	}
	g.holdTicks[k]++
	held := g.holdTicks[k]
	if held == 1 {
		return 1
	}
	if held > repeatDelayTicks && (held-repeatDelayTicks)%repeatPeriodTicks == 0 {
		return 1
	}
	return 0
}

func (g *Game) handleInput() {
	switch g.session.State() {
	case StateMenu:
		g.handleMenuInput()
	case StateBriefing:
		g.handleBriefingInput()
	case StateAiming:
		g.handleAimingInput()
	case StateResult:
		g.handleResultInput()
	}
}

func (g *Game) handleMenuInput() {
	levels := LevelsFor(g.menuMode)
	if g.pressed(ebiten.KeyTab) {
		if g.menuMode == ModeCampaign {
			g.menuMode = ModeTraining
		} else {
			g.menuMode = ModeCampaign
		}
		g.menuLevel = 0
	}
	if g.pressed(ebiten.KeyArrowUp) && g.menuLevel > 0 {
		g.menuLevel--
	}
	if g.pressed(ebiten.KeyArrowDown) && g.menuLevel < len(levels)-1 {
		g.menuLevel++
	}
	if g.pressed(ebiten.KeyEnter) {
		g.session.StartBriefing(g.menuMode, g.menuLevel)
		g.rebuildSway()
	}
}

func (g *Game) handleBriefingInput() {
	if g.pressed(ebiten.KeyArrowLeft) {
		g.session.PrevLevel()
		g.rebuildSway()
	}
	if g.pressed(ebiten.KeyArrowRight) {
		g.session.NextLevel()
		g.rebuildSway()
	}
	if g.pressed(ebiten.KeyT) {
		g.showTable = !g.showTable
	}
	enter := g.pressed(ebiten.KeyEnter)
	space := g.pressed(ebiten.KeySpace)
	if enter || space {
		g.session.StartAiming()
	}
	if g.pressed(ebiten.KeyEscape) {
		g.session.ReturnToMenu()
	}
}

func (g *Game) handleAimingInput() {
	if n := g.repeatSteps(ebiten.KeyArrowUp); n > 0 {
		g.session.AdjustElevation(n)
	}
	if n := g.repeatSteps(ebiten.KeyArrowDown); n > 0 {
		g.session.AdjustElevation(-n)
	}
	if n := g.repeatSteps(ebiten.KeyArrowRight); n > 0 {
		g.session.AdjustWindage(n)
	}
	if n := g.repeatSteps(ebiten.KeyArrowLeft); n > 0 {
		g.session.AdjustWindage(-n)
	}
	if g.pressed(ebiten.KeyT) {
		g.showTable = !g.showTable
	}
	if g.pressed(ebiten.KeySpace) {
		g.session.Fire()
	}
	if g.pressed(ebiten.KeyC) {
		g.copyReport()
	}
	if g.pressed(ebiten.KeyEscape) {
		g.session.ReturnToMenu()
	}
}

func (g *Game) handleResultInput() {
	if g.pressed(ebiten.KeyR) {
		g.session.Retry()
	}
	if g.pressed(ebiten.KeyN) {
		g.session.NextLevel()
		if g.session.State() == StateBriefing {
			g.rebuildSway()
		}
	}
	if g.pressed(ebiten.KeyT) {
		g.showTable = !g.showTable
	}
	if g.pressed(ebiten.KeyC) {
		g.copyReport()
	}
	if g.pressed(ebiten.KeyEscape) {
		g.session.ReturnToMenu()
	}
}

// rebuildSway reseeds the wobble for the level just entered.
func (g *Game) rebuildSway() {
	disabled := g.session.Level().DisableSway || !g.settings.SwayEnabled
	g.sway = NewSwayModel(g.swayRng.Int63(), g.settings.SwayAmplitudeMil, disabled)
}

func (g *Game) copyReport() {
	if err := CopySessionReport(g.session); err != nil {
		g.log.Warn().Err(err).Msg("clipboard copy failed")
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
