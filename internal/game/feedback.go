package game

import (
	"fmt"
	"math"
)

// --- Feedback policy constants ---

const (
	// correctionThresholdMil: corrections at or below half a click are
	// noise and get no section.
	correctionThresholdMil = 0.05

	// Temperature annotation gates: the error must be large and the
	// temperature well away from standard, in the consistent direction.
	tempAnnotationMinErrCm = 15.0
	tempAnnotationMinDevC  = 10.0
)

// SectionDivider separates feedback sections. The presentation layer
// renders it as a horizontal rule; it never collides with content
// because content lines are full sentences.
const SectionDivider = "---"

// AnalyzeShot derives the exact turret correction that would have
// zeroed the shot and explains it line by line. Order is fixed:
// outcome, scale, vertical section, horizontal section.
func AnalyzeShot(res ShotResult, env Environment) []string {
	milCm := CmPerMil(env.Distance)
	vertCorr := -res.DropError / milCm
	horizCorr := -res.WindError / milCm

	var lines []string

	switch {
	case res.Rings == maxRings:
		lines = append(lines, fmt.Sprintf("Perfect shot: dead centre, %d rings.", maxRings))
	case res.Hit:
		lines = append(lines, fmt.Sprintf("Hit: %d rings. There is room to tighten the correction.", res.Rings))
	default:
		lines = append(lines, "Miss. The impact landed off the scoring disc.")
	}

	lines = append(lines, fmt.Sprintf("At %.0f m one MIL moves the impact %.1f cm.", env.Distance, milCm))

	if math.Abs(vertCorr) > correctionThresholdMil {
		lines = append(lines, SectionDivider)
		lines = append(lines, verticalSection(res, env, milCm, vertCorr)...)
	}
	if math.Abs(horizCorr) > correctionThresholdMil {
		lines = append(lines, SectionDivider)
		lines = append(lines, horizontalSection(res, env, milCm, horizCorr)...)
	}
	return lines
}

func verticalSection(res ShotResult, env Environment, milCm, corr float64) []string {
	absErr := math.Abs(res.DropError)
	dir := "HIGH"
	if res.DropError < 0 {
		dir = "LOW"
	}
	lines := []string{fmt.Sprintf("Impact was %s by %.1f cm.", dir, absErr)}

	// Only annotate temperature when the deviation actually explains
	// the error direction: hot air lifts the shot, cold air sinks it.
	tempDev := env.Temperature - standardTemp
	if absErr > tempAnnotationMinErrCm && math.Abs(tempDev) > tempAnnotationMinDevC {
		switch {
		case tempDev > 0 && res.DropError > 0:
			lines = append(lines, fmt.Sprintf("Warm air at %.0f °C thins the density and reduces drop; that lifted the shot.", env.Temperature))
		case tempDev < 0 && res.DropError < 0:
			lines = append(lines, fmt.Sprintf("Cold air at %.0f °C is denser and increases drop; that sank the shot.", env.Temperature))
		}
	}

	lines = append(lines, fmt.Sprintf("%.1f cm / %.1f cm per MIL = %.1f MIL.", absErr, milCm, math.Abs(corr)))
	lines = append(lines, fmt.Sprintf("Dial the elevation turret %s %.1f MIL.", upDown(corr), math.Abs(corr)))
	return lines
}

func horizontalSection(res ShotResult, env Environment, milCm, corr float64) []string {
	absErr := math.Abs(res.WindError)
	dir := "RIGHT"
	if res.WindError < 0 {
		dir = "LEFT"
	}
	lines := []string{fmt.Sprintf("Impact was %s by %.1f cm.", dir, absErr)}

	// Wind context is unconditional whenever there is any wind at all;
	// unlike temperature it needs no consistency check, the player
	// should always connect lateral error to the flag.
	if env.WindSpeed > 0 {
		push := "left"
		if CrosswindComponent(env.WindSpeed, env.WindDir) < 0 {
			push = "right"
		}
		lines = append(lines, fmt.Sprintf("Wind %.1f m/s from %.0f° pushes the round %s at this range.", env.WindSpeed, env.WindDir, push))
	}

	lines = append(lines, fmt.Sprintf("%.1f cm / %.1f cm per MIL = %.1f MIL.", absErr, milCm, math.Abs(corr)))
	lines = append(lines, fmt.Sprintf("Dial the windage turret %s %.1f MIL.", leftRight(corr), math.Abs(corr)))
	return lines
}

func upDown(corr float64) string {
	if corr < 0 {
		return "DOWN"
	}
	return "UP"
}

func leftRight(corr float64) string {
	if corr < 0 {
		return "LEFT"
	}
	return "RIGHT"
}
