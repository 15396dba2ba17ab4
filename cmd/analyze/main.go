// Command analyze prints quick, human-readable statistics about simulated
// match logs. It summarizes win rates per strategy, game lengths, score
// spreads, and how matches ended, and highlights lopsided pairings.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/wricardo/chasse-patate/game/sim"
)

// strategyStats accumulates per-strategy numbers across a log directory.
type strategyStats struct {
	Games  int
	Wins   int
	Points int
}

func main() {
	dir := "logs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	results, err := sim.ReadGames(dir)
	if err != nil {
		fmt.Printf("Error reading game logs from %s: %v\n", dir, err)
		os.Exit(1)
	}

	fmt.Printf("\n=== Analyzing %d games from %s ===\n", len(results), dir)
	analyzeStrategies(results)
	analyzeLengths(results)
	analyzeEndings(results)
	analyzeMargins(results)
}

func analyzeStrategies(results []*sim.GameResult) {
	stats := map[string]*strategyStats{}
	for _, r := range results {
		for seat, name := range r.Agents {
			s := stats[name]
			if s == nil {
				s = &strategyStats{}
				stats[name] = s
			}
			s.Games++
			if seat < len(r.Scores) {
				s.Points += r.Scores[seat]
			}
		}
		if s := stats[r.WinnerName]; s != nil {
			s.Wins++
		}
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return winRate(stats[names[i]]) > winRate(stats[names[j]])
	})

	fmt.Println("\nStrategies:")
	fmt.Printf("%-14s %6s %6s %8s %10s\n", "strategy", "games", "wins", "win%", "avg pts")
	for _, name := range names {
		s := stats[name]
		fmt.Printf("%-14s %6d %6d %7.1f%% %10.2f\n",
			name, s.Games, s.Wins, winRate(s)*100, float64(s.Points)/float64(s.Games))
	}
}

func winRate(s *strategyStats) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func analyzeLengths(results []*sim.GameResult) {
	rounds := make([]int, 0, len(results))
	total := 0
	for _, r := range results {
		rounds = append(rounds, r.Rounds)
		total += r.Rounds
	}
	sort.Ints(rounds)

	fmt.Println("\nGame length (rounds):")
	fmt.Printf("  min %d, median %d, max %d, avg %.1f\n",
		rounds[0], rounds[len(rounds)/2], rounds[len(rounds)-1],
		float64(total)/float64(len(rounds)))
}

func analyzeEndings(results []*sim.GameResult) {
	reasons := map[string]int{}
	for _, r := range results {
		reasons[r.Reason]++
	}

	names := make([]string, 0, len(reasons))
	for name := range reasons {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return reasons[names[i]] > reasons[names[j]] })

	fmt.Println("\nEndings:")
	for _, name := range names {
		n := reasons[name]
		fmt.Printf("  %-22s %5d (%.1f%%)\n", name, n, 100*float64(n)/float64(len(results)))
	}
}

// analyzeMargins flags games decided by a wide point spread. A string of
// blowouts usually means one strategy never contests the sprints.
func analyzeMargins(results []*sim.GameResult) {
	totalMargin := 0
	blowouts := 0
	for _, r := range results {
		margin := scoreMargin(r.Scores)
		totalMargin += margin
		if margin >= 10 {
			blowouts++
		}
	}

	fmt.Println("\nScore margins (winner vs runner-up):")
	fmt.Printf("  avg margin %.1f pts, %d blowouts (margin >= 10)\n",
		float64(totalMargin)/float64(len(results)), blowouts)

	if blowouts > len(results)/2 {
		fmt.Printf("⚠️  WARNING: over half the games are blowouts, the pairing is unbalanced\n")
	} else {
		fmt.Printf("✅ Pairing looks competitive\n")
	}
}

// scoreMargin returns the gap between the two highest scores.
func scoreMargin(scores []int) int {
	if len(scores) < 2 {
		return 0
	}
	sorted := append([]int(nil), scores...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted[0] - sorted[1]
}
