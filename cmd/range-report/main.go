package main

import (
	"flag"
	"fmt"

	"github.com/Garsondee/Marksman-Range/internal/game"
)

func main() {
	var runs int
	var attempts int
	var seedBase int64
	var seedStep int64
	var dialError float64
	var mode string

	flag.IntVar(&runs, "runs", 10, "number of headless training runs")
	flag.IntVar(&attempts, "attempts", 4, "shots allowed per level before a run fails")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&dialError, "dial-error", 0.15, "shooter dial noise sigma in MIL")
	flag.StringVar(&mode, "mode", "campaign", "level catalogue: campaign or training")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if attempts <= 0 {
		fmt.Println("error: -attempts must be > 0")
		return
	}
	var m game.Mode
	switch mode {
	case "campaign":
		m = game.ModeCampaign
	case "training":
		m = game.ModeTraining
	default:
		fmt.Printf("error: unsupported mode %q (supported: campaign, training)\n", mode)
		return
	}

	fmt.Printf("=== Headless Marksmanship Report ===\n")
	fmt.Printf("mode=%s runs=%d attempts=%d dial_error=%.2f seed_base=%d seed_step=%d\n\n",
		mode, runs, attempts, dialError, seedBase, seedStep)

	summaries := make([]game.RunSummary, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		ts := game.NewTrainingSim(
			game.WithSeed(seed),
			game.WithMode(m),
			game.WithMaxAttempts(attempts),
			game.WithDialError(dialError),
		)
		sum := ts.Run()
		summaries = append(summaries, sum)
		printRun(i+1, seed, sum)
	}

	printAggregate(summaries)
}

func printRun(runIndex int, seed int64, s game.RunSummary) {
	status := "FAILED"
	if s.Completed {
		status = "COMPLETE"
	}
	fmt.Printf("run %2d (seed %4d): %-8s levels=%d shots=%d hits=%d perfect=%d avg_rings=%.2f mastery=%d\n",
		runIndex, seed, status, s.LevelsCleared, s.TotalShots, s.Hits, s.PerfectShots, s.AvgRings, s.FinalMastery)
}

func printAggregate(all []game.RunSummary) {
	completed := 0
	totalShots := 0
	totalLevels := 0
	ringSum := 0.0
	ringRuns := 0
	for _, s := range all {
		if s.Completed {
			completed++
		}
		totalShots += s.TotalShots
		totalLevels += s.LevelsCleared
		if s.Hits > 0 {
			ringSum += s.AvgRings
			ringRuns++
		}
	}
	fmt.Printf("\n=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("completion rate : %d/%d\n", completed, len(all))
	fmt.Printf("avg levels      : %.1f\n", float64(totalLevels)/float64(len(all)))
	fmt.Printf("avg shots/run   : %.1f\n", float64(totalShots)/float64(len(all)))
	if ringRuns > 0 {
		fmt.Printf("avg rings (hits): %.2f\n", ringSum/float64(ringRuns))
	}
}
