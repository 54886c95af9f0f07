package game

import "math"

// Reference distances covered by the range card.
const (
	rangeTableMinDist  = 200.0  // m
	rangeTableMaxDist  = 1200.0 // m
	rangeTableStepDist = 100.0  // m
)

// RangeEntry is one row of the range card: the elevation dial that
// centres a shot at Distance under the table's temperature, zero wind.
type RangeEntry struct {
	Distance     float64 // m
	ElevationMil float64 // MIL, rounded to one click decimal
}

// BuildRangeTable computes the reference elevation card for the given
// temperature using the same drop model as ComputeImpact. It is cheap
// and is simply recomputed whenever the temperature changes.
func BuildRangeTable(temperature float64) []RangeEntry {
	n := int((rangeTableMaxDist-rangeTableMinDist)/rangeTableStepDist) + 1
	table := make([]RangeEntry, 0, n)
	for d := rangeTableMinDist; d <= rangeTableMaxDist; d += rangeTableStepDist {
		mil := requiredElevationMil(d, temperature)
		table = append(table, RangeEntry{
			Distance:     d,
			ElevationMil: math.Round(mil*10) / 10,
		})
	}
	return table
}

// TableElevation returns the card elevation for the reference distance
// nearest to d. Shooters interpolate by eye in the field; the helper
// just picks the closest row.
func TableElevation(table []RangeEntry, d float64) float64 {
	if len(table) == 0 {
		return 0
	}
	best := table[0]
	for _, e := range table[1:] {
		if math.Abs(e.Distance-d) < math.Abs(best.Distance-d) {
			best = e
		}
	}
	return best.ElevationMil
}
