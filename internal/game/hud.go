package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette.
var (
	colBackground = color.RGBA{R: 18, G: 22, B: 18, A: 255}
	colPanel      = color.RGBA{R: 6, G: 10, B: 6, A: 210}
	colPanelEdge  = color.RGBA{R: 60, G: 100, B: 60, A: 180}
	colText       = color.RGBA{R: 200, G: 220, B: 200, A: 255}
	colDim        = color.RGBA{R: 120, G: 140, B: 120, A: 255}
	colAccent     = color.RGBA{R: 240, G: 200, B: 80, A: 255}
	colTarget     = color.RGBA{R: 225, G: 220, B: 205, A: 255}
	colTargetRing = color.RGBA{R: 90, G: 85, B: 75, A: 255}
	colReticle    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colPreview    = color.RGBA{R: 255, G: 120, B: 60, A: 200}
	colImpactHit  = color.RGBA{R: 80, G: 220, B: 90, A: 255}
	colImpactMiss = color.RGBA{R: 230, G: 70, B: 60, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	switch g.session.State() {
	case StateMenu:
		g.drawMenu(screen)
	case StateBriefing:
		g.drawBriefing(screen)
	case StateAiming, StateResult:
		g.drawRange(screen)
	}
	g.drawLegend(screen)
}

// drawText renders one line of panel text at the bitmap face size.
func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, g.face, op)
}

// --- Menu ---

func (g *Game) drawMenu(screen *ebiten.Image) {
	cx := float64(g.width) / 2
	g.drawText(screen, "MARKSMAN RANGE", cx-60, 120, colAccent)
	g.drawText(screen, fmt.Sprintf("mode: %s  (Tab to switch)", g.menuMode), cx-110, 170, colText)

	levels := LevelsFor(g.menuMode)
	y := 220.0
	for i, lvl := range levels {
		col := colDim
		prefix := "  "
		if i == g.menuLevel {
			col = colText
			prefix = "> "
		}
		g.drawText(screen, fmt.Sprintf("%s%d. %s", prefix, lvl.ID, lvl.Name), cx-110, y, col)
		y += 18
	}
}

// --- Briefing ---

func (g *Game) drawBriefing(screen *ebiten.Image) {
	lvl := g.session.Level()
	env := g.session.Env()
	x := 80.0
	y := 90.0

	g.drawText(screen, fmt.Sprintf("LEVEL %d: %s  (%d/%d)", lvl.ID, lvl.Name,
		g.session.LevelIndex()+1, g.session.LevelCount()), x, y, colAccent)
	y += 26
	g.drawText(screen, lvl.Briefing, x, y, colText)
	y += 34

	g.drawText(screen, fmt.Sprintf("distance %.0f m   wind %.1f m/s from %.0f   temp %.0f C   humidity %.0f%%",
		env.Distance, env.WindSpeed, env.WindDir, env.Temperature, env.Humidity), x, y, colText)
	y += 30

	// Hints are for learners; a hot mastery streak hides them.
	if !g.session.ExpertMode() {
		for _, h := range briefingHints(env) {
			g.drawText(screen, "hint: "+h, x, y, colDim)
			y += 16
		}
	} else {
		g.drawText(screen, "expert mode: hints suppressed", x, y, colDim)
		y += 16
	}

	if g.showTable {
		g.drawRangeCard(screen, float64(g.width)-260, 90)
	}
}

// briefingHints points the learner at whichever variable will bite.
func briefingHints(env Environment) []string {
	var hints []string
	hints = append(hints, fmt.Sprintf("one MIL moves the impact %.1f cm at this distance", CmPerMil(env.Distance)))
	if env.WindSpeed > 0 {
		cross := CrosswindComponent(env.WindSpeed, env.WindDir)
		side := "left"
		if cross < 0 {
			side = "right"
		}
		hints = append(hints, fmt.Sprintf("crosswind %.1f m/s will push the round %s", math.Abs(cross), side))
	}
	if dev := env.Temperature - standardTemp; math.Abs(dev) > tempAnnotationMinDevC {
		if dev > 0 {
			hints = append(hints, "warm air drops the round less than the card value")
		} else {
			hints = append(hints, "cold air drops the round more than the card value")
		}
	}
	return hints
}

// --- Firing line ---

func (g *Game) drawRange(screen *ebiten.Image) {
	env := g.session.Env()
	cx := float32(g.width) * 0.42
	cy := float32(g.height) * 0.5
	milCm := CmPerMil(env.Distance)

	// Target disc scaled by its angular size at the current distance.
	targetRadiusMil := (g.settings.TargetDiameterCm / 2) / milCm
	rPx := float32(targetRadiusMil * pixelsPerMil)
	vector.FillCircle(screen, cx, cy, rPx, colTarget, true)
	for band := 1; band < ringBands; band++ {
		vector.StrokeCircle(screen, cx, cy, rPx*float32(band)/ringBands, 1, colTargetRing, true)
	}
	vector.StrokeCircle(screen, cx, cy, rPx, 1.5, colTargetRing, true)

	// Reticle crosshair with MIL hashes, displaced by cosmetic sway.
	swayX, swayY := g.sway.Offset(g.tick)
	rx := cx + float32(swayX*pixelsPerMil)
	ry := cy + float32(swayY*pixelsPerMil)
	arm := float32(5.5 * pixelsPerMil)
	vector.StrokeLine(screen, rx-arm, ry, rx+arm, ry, 1, colReticle, true)
	vector.StrokeLine(screen, rx, ry-arm, rx, ry+arm, 1, colReticle, true)
	for m := 1; m <= 5; m++ {
		o := float32(float64(m) * pixelsPerMil)
		vector.StrokeLine(screen, rx-o, ry-4, rx-o, ry+4, 1, colReticle, true)
		vector.StrokeLine(screen, rx+o, ry-4, rx+o, ry+4, 1, colReticle, true)
		vector.StrokeLine(screen, rx-4, ry-o, rx+4, ry-o, 1, colReticle, true)
		vector.StrokeLine(screen, rx-4, ry+o, rx+4, ry+o, 1, colReticle, true)
	}

	toScreen := func(xCm, yCm float64) (float32, float32) {
		return cx + float32(xCm/milCm*pixelsPerMil), cy - float32(yCm/milCm*pixelsPerMil)
	}

	if g.session.State() == StateAiming {
		// Live preview: where the shot would land with the current dials.
		p := g.session.PreviewImpact()
		px, py := toScreen(p.X, p.Y)
		vector.FillCircle(screen, px, py, 3, colPreview, true)
	}

	if res := g.session.LastShot(); res != nil {
		ix, iy := toScreen(res.WindError, res.DropError)
		col := colImpactMiss
		if res.Hit {
			col = colImpactHit
		}
		vector.StrokeLine(screen, ix-6, iy-6, ix+6, iy+6, 2, col, true)
		vector.StrokeLine(screen, ix-6, iy+6, ix+6, iy-6, 2, col, true)
	}

	g.drawWindFlag(screen, float32(g.width)-90, 80, env)
	g.drawReadouts(screen)

	if g.session.State() == StateResult {
		g.drawFeedbackPanel(screen)
	}
	if g.showTable {
		g.drawRangeCard(screen, float64(g.width)-260, 140)
	}
}

// drawWindFlag renders a pennant pointing where the wind blows TO.
func (g *Game) drawWindFlag(screen *ebiten.Image, x, y float32, env Environment) {
	blowTo := (env.WindDir + 180) * math.Pi / 180
	length := float32(12 + env.WindSpeed*4)
	dx := float32(math.Sin(blowTo)) * length
	dy := -float32(math.Cos(blowTo)) * length
	vector.FillCircle(screen, x, y, 3, colDim, true)
	vector.StrokeLine(screen, x, y, x+dx, y+dy, 2, colAccent, true)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f m/s", env.WindSpeed), int(x)-20, int(y)+12)
}

func (g *Game) drawReadouts(screen *ebiten.Image) {
	env := g.session.Env()
	tur := g.session.Turrets()
	lines := []string{
		fmt.Sprintf("LEVEL %d: %s", g.session.Level().ID, g.session.Level().Name),
		fmt.Sprintf("distance  %6.0f m", env.Distance),
		fmt.Sprintf("wind      %6.1f m/s @ %.0f", env.WindSpeed, env.WindDir),
		fmt.Sprintf("temp      %6.1f C", env.Temperature),
		"",
		fmt.Sprintf("elevation %+5.1f MIL", tur.Elevation),
		fmt.Sprintf("windage   %+5.1f MIL", tur.Windage),
		fmt.Sprintf("mastery   %d", g.session.Mastery()),
	}
	g.drawPanel(screen, 16, 16, 230, float32(len(lines)*16+16))
	for i, l := range lines {
		g.drawText(screen, l, 28, float64(30+i*16), colText)
	}
}

func (g *Game) drawFeedbackPanel(screen *ebiten.Image) {
	lines := g.session.Feedback()
	x := float32(g.width) * 0.68
	w := float32(g.width) - x - 16
	g.drawPanel(screen, x, 180, w, float32(len(lines)*16+24))
	y := 198.0
	for _, l := range lines {
		if l == SectionDivider {
			vector.StrokeLine(screen, x+10, float32(y)-4, x+w-10, float32(y)-4, 1, colPanelEdge, false)
		} else {
			g.drawText(screen, l, float64(x)+10, y, colText)
		}
		y += 16
	}
}

func (g *Game) drawRangeCard(screen *ebiten.Image, x, y float64) {
	table := g.session.RangeTable()
	g.drawPanel(screen, float32(x), float32(y), 200, float32(len(table)*16+40))
	g.drawText(screen, fmt.Sprintf("RANGE CARD  %.0f C", g.session.Env().Temperature), x+10, y+16, colAccent)
	for i, e := range table {
		g.drawText(screen, fmt.Sprintf("%5.0f m   %4.1f MIL", e.Distance, e.ElevationMil),
			x+10, y+36+float64(i)*16, colText)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.FillRect(screen, x, y, w, h, colPanel, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colPanelEdge, false)
}

// drawLegend renders per-state key bindings bottom-left: drawn at 1x
// into hudBuf, then blitted at hudScale so the text stays crisp.
func (g *Game) drawLegend(screen *ebiten.Image) {
	var lines []string
	switch g.session.State() {
	case StateMenu:
		lines = []string{"Up/Down select  Tab mode  Enter start"}
	case StateBriefing:
		lines = []string{"Left/Right browse  T card  Enter shoot  Esc menu"}
	case StateAiming:
		lines = []string{"arrows dial 0.1 MIL (hold to repeat)", "Space fire  T card  C copy  Esc menu"}
	case StateResult:
		lines = []string{"R retry  N next  T card  C copy  Esc menu"}
	}

	const lineH = 12
	const charW = 6
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + 10)
	boxH := float32(len(lines)*lineH + 8)
	bufH := float32(g.height / hudScale)
	bx := float32(4)
	by := bufH - boxH - 4

	g.hudBuf.Clear()
	vector.FillRect(g.hudBuf, bx, by, boxW, boxH, colPanel, false)
	vector.StrokeRect(g.hudBuf, bx, by, boxW, boxH, 1, colPanelEdge, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(g.hudBuf, line, int(bx)+5, int(by)+4+i*lineH)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, opts)
}
