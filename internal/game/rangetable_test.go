package game

import (
	"math"
	"testing"
)

func TestBuildRangeTable_CoversReferenceDistances(t *testing.T) {
	table := BuildRangeTable(standardTemp)
	if len(table) != 11 {
		t.Fatalf("expected 11 rows (200..1200 step 100), got %d", len(table))
	}
	if table[0].Distance != 200 || table[len(table)-1].Distance != 1200 {
		t.Fatalf("table should span 200..1200, got %.0f..%.0f",
			table[0].Distance, table[len(table)-1].Distance)
	}
}

func TestBuildRangeTable_MonotonicAtStandardTemp(t *testing.T) {
	table := BuildRangeTable(standardTemp)
	for i := 1; i < len(table); i++ {
		if table[i].ElevationMil < table[i-1].ElevationMil {
			t.Fatalf("elevation must not decrease with range: %.1f at %.0f m after %.1f at %.0f m",
				table[i].ElevationMil, table[i].Distance,
				table[i-1].ElevationMil, table[i-1].Distance)
		}
	}
}

func TestBuildRangeTable_RoundedToOneDecimal(t *testing.T) {
	for _, e := range BuildRangeTable(23) {
		scaled := e.ElevationMil * 10
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Fatalf("elevation %.4f at %.0f m is not rounded to one decimal", e.ElevationMil, e.Distance)
		}
	}
}

func TestBuildRangeTable_HotterNeedsLessElevation(t *testing.T) {
	cold := BuildRangeTable(-5)
	hot := BuildRangeTable(35)
	for i := range cold {
		if hot[i].ElevationMil > cold[i].ElevationMil {
			t.Fatalf("at %.0f m hot air should need no more elevation than cold: hot=%.1f cold=%.1f",
				cold[i].Distance, hot[i].ElevationMil, cold[i].ElevationMil)
		}
	}
}

func TestTableElevation_PicksNearestRow(t *testing.T) {
	table := BuildRangeTable(standardTemp)
	if got, want := TableElevation(table, 640), TableElevation(table, 600); got != want {
		t.Fatalf("640 m should read the 600 m row: got %.1f want %.1f", got, want)
	}
	if got := TableElevation(nil, 500); got != 0 {
		t.Fatalf("empty table should return 0, got %.1f", got)
	}
}
