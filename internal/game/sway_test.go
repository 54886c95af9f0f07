package game

import (
	"math"
	"testing"
)

func TestSwayModel_DisabledIsStill(t *testing.T) {
	s := NewSwayModel(42, 0.25, true)
	for tick := 0; tick < 600; tick += 60 {
		if dx, dy := s.Offset(tick); dx != 0 || dy != 0 {
			t.Fatalf("disabled sway must be zero, got (%.3f, %.3f) at tick %d", dx, dy, tick)
		}
	}
}

func TestSwayModel_Deterministic(t *testing.T) {
	a := NewSwayModel(42, 0.25, false)
	b := NewSwayModel(42, 0.25, false)
	for tick := 0; tick < 300; tick += 7 {
		ax, ay := a.Offset(tick)
		bx, by := b.Offset(tick)
		if ax != bx || ay != by {
			t.Fatalf("same seed must replay the same wobble at tick %d", tick)
		}
	}
}

func TestSwayModel_BoundedByAmplitude(t *testing.T) {
	s := NewSwayModel(7, 0.25, false)
	for tick := 0; tick < 3600; tick++ {
		dx, dy := s.Offset(tick)
		if math.Abs(dx) > 0.25+1e-9 || math.Abs(dy) > 0.25+1e-9 {
			t.Fatalf("sway exceeded its amplitude at tick %d: (%.4f, %.4f)", tick, dx, dy)
		}
	}
}

func TestSwayModel_SeedsDiffer(t *testing.T) {
	a := NewSwayModel(1, 0.25, false)
	b := NewSwayModel(2, 0.25, false)
	same := true
	for tick := 0; tick < 120; tick++ {
		ax, ay := a.Offset(tick)
		bx, by := b.Offset(tick)
		if ax != bx || ay != by {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds should produce different wobbles")
	}
}
