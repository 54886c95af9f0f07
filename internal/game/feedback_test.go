package game

import (
	"strings"
	"testing"
)

func dividerCount(lines []string) int {
	n := 0
	for _, l := range lines {
		if l == SectionDivider {
			n++
		}
	}
	return n
}

func TestAnalyzeShot_PerfectShotHasNoSections(t *testing.T) {
	res := ShotResult{Hit: true, Rings: 10}
	env := Environment{Distance: 400, Temperature: standardTemp}
	lines := AnalyzeShot(res, env)
	if len(lines) != 2 {
		t.Fatalf("perfect shot should emit outcome+scale only, got %d lines: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Perfect") {
		t.Fatalf("first line must be the outcome statement, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "40.0 cm") {
		t.Fatalf("second line must state the cm-per-MIL scale, got %q", lines[1])
	}
}

func TestAnalyzeShot_OrderOutcomeThenScale(t *testing.T) {
	res := ShotResult{Hit: false, DropError: -40, WindError: 25}
	env := Environment{Distance: 500, Temperature: standardTemp, WindSpeed: 3, WindDir: 270}
	lines := AnalyzeShot(res, env)
	if !strings.Contains(lines[0], "Miss") {
		t.Fatalf("outcome must come first, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "one MIL") {
		t.Fatalf("scale must come second, got %q", lines[1])
	}
	if dividerCount(lines) != 2 {
		t.Fatalf("expected a vertical and a horizontal section, got %d dividers", dividerCount(lines))
	}
}

func TestAnalyzeShot_VerticalSectionArithmetic(t *testing.T) {
	// 30 cm high at 500 m: correction is 30/50 = 0.6 MIL DOWN.
	res := ShotResult{Hit: false, DropError: 30}
	env := Environment{Distance: 500, Temperature: standardTemp}
	lines := AnalyzeShot(res, env)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "HIGH by 30.0 cm") {
		t.Fatalf("missing direction line:\n%s", joined)
	}
	if !strings.Contains(joined, "30.0 cm / 50.0 cm per MIL = 0.6 MIL") {
		t.Fatalf("missing arithmetic line:\n%s", joined)
	}
	if !strings.Contains(joined, "elevation turret DOWN 0.6 MIL") {
		t.Fatalf("missing directive:\n%s", joined)
	}
}

func TestAnalyzeShot_TemperatureAnnotationConsistentOnly(t *testing.T) {
	env := Environment{Distance: 500, Temperature: 30}

	// Hot + high: consistent, annotated.
	lines := AnalyzeShot(ShotResult{Hit: false, DropError: 30}, env)
	if !strings.Contains(strings.Join(lines, "\n"), "Warm air") {
		t.Fatalf("hot+high should carry the temperature annotation: %v", lines)
	}

	// Hot + low: inconsistent, no annotation.
	lines = AnalyzeShot(ShotResult{Hit: false, DropError: -30}, env)
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "Warm air") || strings.Contains(joined, "Cold air") {
		t.Fatalf("hot+low must not be annotated:\n%s", joined)
	}
}

func TestAnalyzeShot_TemperatureAnnotationNeedsBigError(t *testing.T) {
	// 10 cm is under the 15 cm gate even though the temperature deviates.
	env := Environment{Distance: 500, Temperature: 30}
	lines := AnalyzeShot(ShotResult{Hit: true, Rings: 8, DropError: 10}, env)
	if strings.Contains(strings.Join(lines, "\n"), "Warm air") {
		t.Fatalf("small error must not be annotated: %v", lines)
	}
}

func TestAnalyzeShot_WindContextUnconditionalWhenWindy(t *testing.T) {
	// Even an impact RIGHT (against the push of a right-hand wind) keeps
	// the wind context line: the horizontal annotation has no
	// consistency check, unlike the vertical one.
	env := Environment{Distance: 500, Temperature: standardTemp, WindSpeed: 4, WindDir: 90}
	lines := AnalyzeShot(ShotResult{Hit: false, WindError: 20}, env)
	if !strings.Contains(strings.Join(lines, "\n"), "Wind 4.0 m/s") {
		t.Fatalf("wind context must appear whenever wind > 0: %v", lines)
	}
}

func TestAnalyzeShot_NoWindContextInStillAir(t *testing.T) {
	env := Environment{Distance: 500, Temperature: standardTemp, WindSpeed: 0}
	lines := AnalyzeShot(ShotResult{Hit: false, WindError: -20}, env)
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "Wind ") {
		t.Fatalf("no wind context in still air:\n%s", joined)
	}
	if !strings.Contains(joined, "windage turret RIGHT 0.4 MIL") {
		t.Fatalf("directive should still be emitted:\n%s", joined)
	}
}

func TestAnalyzeShot_SubThresholdCorrectionsGetNoSection(t *testing.T) {
	// 2 cm at 500 m is 0.04 MIL, below the 0.05 MIL floor.
	env := Environment{Distance: 500, Temperature: standardTemp}
	lines := AnalyzeShot(ShotResult{Hit: true, Rings: 10, DropError: 2, WindError: -2}, env)
	if dividerCount(lines) != 0 {
		t.Fatalf("corrections under half a click get no section: %v", lines)
	}
}
