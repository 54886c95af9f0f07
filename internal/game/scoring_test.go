package game

import "testing"

// --- ScoreShot ---

func TestScoreShot_DeadCentre(t *testing.T) {
	hit, rings := ScoreShot(Impact{}, 45)
	if !hit || rings != 10 {
		t.Fatalf("centre shot should score 10, got hit=%v rings=%d", hit, rings)
	}
}

func TestScoreShot_EdgeIsMiss(t *testing.T) {
	// The disc edge uses a strict comparison: exactly on the radius misses.
	hit, rings := ScoreShot(Impact{X: 22.5, Y: 0}, 45)
	if hit || rings != 0 {
		t.Fatalf("error exactly at the radius must miss, got hit=%v rings=%d", hit, rings)
	}
}

func TestScoreShot_JustInsideEdgeClampsToFive(t *testing.T) {
	hit, rings := ScoreShot(Impact{X: 22.4999, Y: 0}, 45)
	if !hit {
		t.Fatal("error just inside the radius must hit")
	}
	if rings < 5 {
		t.Fatalf("any hit scores at least 5 rings, got %d", rings)
	}
}

func TestScoreShot_RingBands(t *testing.T) {
	// ringWidth = 22.5/6 = 3.75 cm.
	hit, rings := ScoreShot(Impact{Y: 4}, 45)
	if !hit || rings != 9 {
		t.Fatalf("4 cm error should score 9, got hit=%v rings=%d", hit, rings)
	}
	hit, rings = ScoreShot(Impact{Y: -8}, 45)
	if !hit || rings != 8 {
		t.Fatalf("8 cm error should score 8, got hit=%v rings=%d", hit, rings)
	}
}

func TestScoreShot_EuclideanError(t *testing.T) {
	// 3-4-5: combined error magnitude is 5 cm, second band.
	hit, rings := ScoreShot(Impact{X: 3, Y: 4}, 45)
	if !hit || rings != 9 {
		t.Fatalf("5 cm euclidean error should score 9, got hit=%v rings=%d", hit, rings)
	}
}

// --- Mastery policy ---

func TestUpdateMastery_PerfectStreakThenMiss(t *testing.T) {
	m := 0
	for i := 0; i < 3; i++ {
		m = UpdateMastery(m, true, 10)
	}
	if m != 6 {
		t.Fatalf("three 10-ring hits should raise mastery from 0 to 6, got %d", m)
	}
	m = UpdateMastery(m, false, 0)
	if m != 0 {
		t.Fatalf("a miss must reset mastery to 0, got %d", m)
	}
}

func TestUpdateMastery_SolidHit(t *testing.T) {
	if m := UpdateMastery(2, true, 8); m != 3 {
		t.Fatalf("rings in [7,10) should add 1, got %d", m)
	}
}

func TestUpdateMastery_SloppyHitFloorsAtZero(t *testing.T) {
	if m := UpdateMastery(0, true, 6); m != 0 {
		t.Fatalf("sloppy hit at zero mastery should stay 0, got %d", m)
	}
	if m := UpdateMastery(2, true, 5); m != 1 {
		t.Fatalf("sloppy hit should subtract 1, got %d", m)
	}
}

func TestIsExpert_Threshold(t *testing.T) {
	if IsExpert(2) {
		t.Fatal("mastery 2 must not be expert")
	}
	if !IsExpert(3) {
		t.Fatal("mastery 3 must be expert")
	}
}
