package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// BuildSessionReport renders the full session state as plain text:
// level, conditions, dials, range card and the last shot with its
// feedback. Handy for sharing a drill or for bug reports.
func BuildSessionReport(s *Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Marksman Range session report ---\n")
	fmt.Fprintf(&b, "state=%s mode=%s mastery=%d\n", s.State(), s.Mode(), s.Mastery())

	if s.State() != StateMenu {
		lvl := s.Level()
		env := s.Env()
		tur := s.Turrets()
		fmt.Fprintf(&b, "level=%d %q (index %d/%d)\n", lvl.ID, lvl.Name, s.LevelIndex()+1, s.LevelCount())
		fmt.Fprintf(&b, "\n== Conditions ==\n")
		fmt.Fprintf(&b, "distance : %7.1f m\n", env.Distance)
		fmt.Fprintf(&b, "wind     : %7.1f m/s from %.0f°\n", env.WindSpeed, env.WindDir)
		fmt.Fprintf(&b, "temp     : %7.1f °C\n", env.Temperature)
		fmt.Fprintf(&b, "humidity : %7.0f %%\n", env.Humidity)
		fmt.Fprintf(&b, "\n== Turrets ==\n")
		fmt.Fprintf(&b, "elevation: %+.1f MIL\n", tur.Elevation)
		fmt.Fprintf(&b, "windage  : %+.1f MIL\n", tur.Windage)

		fmt.Fprintf(&b, "\n== Range card (%.0f °C) ==\n", env.Temperature)
		for _, e := range s.RangeTable() {
			fmt.Fprintf(&b, "%5.0f m  %4.1f MIL\n", e.Distance, e.ElevationMil)
		}
	}

	if res := s.LastShot(); res != nil {
		fmt.Fprintf(&b, "\n== Last shot ==\n")
		fmt.Fprintf(&b, "hit=%v rings=%d drop_err=%+.1f cm wind_err=%+.1f cm\n",
			res.Hit, res.Rings, res.DropError, res.WindError)
		for _, line := range s.Feedback() {
			fmt.Fprintf(&b, "%s\n", line)
		}
	}
	return b.String()
}

// CopySessionReport puts the report on the system clipboard.
func CopySessionReport(s *Session) error {
	if err := clipboard.WriteAll(BuildSessionReport(s)); err != nil {
		return fmt.Errorf("copy session report: %w", err)
	}
	return nil
}
