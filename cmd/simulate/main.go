// Command simulate runs headless matches between scripted agents and writes
// per-game JSON logs plus a CSV summary for later analysis.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/chasse-patate/game/agents"
	"github.com/wricardo/chasse-patate/game/config"
	"github.com/wricardo/chasse-patate/game/engine"
	"github.com/wricardo/chasse-patate/game/sim"
)

func main() {
	cmd := &cli.Command{
		Name:  "simulate",
		Usage: "run headless matches between scripted agents",
		Commands: []*cli.Command{
			batchCommand(),
			tournamentCommand(),
			agentsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "play N games with a fixed agent lineup",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Value: 100, Usage: "number of games to play"},
			&cli.StringSliceFlag{Name: "agent", Value: []string{"balanced", "greedy"}, Usage: "agent strategy per seat (repeat per player)"},
			&cli.StringFlag{Name: "config", Value: "", Usage: "match config name from the config directory (default: built-in standard)"},
			&cli.StringFlag{Name: "config-dir", Value: "configs", Usage: "directory holding match config files"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "base RNG seed, game i uses seed+i"},
			&cli.IntFlag{Name: "round-cap", Value: sim.DefaultRoundCap, Usage: "abort games that exceed this many rounds"},
			&cli.IntFlag{Name: "parallelism", Value: 0, Usage: "concurrent games (0 = GOMAXPROCS)"},
			&cli.StringFlag{Name: "out", Value: "", Usage: "directory for per-game JSON logs and summary.csv (empty = no logs)"},
		},
		Action: runBatch,
	}
}

func runBatch(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	opts := sim.BatchOptions{
		Config:      cfg,
		Agents:      cmd.StringSlice("agent"),
		Games:       cmd.Int("games"),
		BaseSeed:    cmd.Int64("seed"),
		RoundCap:    cmd.Int("round-cap"),
		Parallelism: cmd.Int("parallelism"),
	}

	results, err := sim.RunBatch(opts)
	if err != nil {
		return err
	}

	if err := writeLogs(cmd.String("out"), results); err != nil {
		return err
	}

	printBatchSummary(results, opts.Agents)
	return nil
}

func tournamentCommand() *cli.Command {
	return &cli.Command{
		Name:  "tournament",
		Usage: "play every strategy pairing head to head",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "strategy", Value: agents.Names(), Usage: "strategies to enter (default: all)"},
			&cli.IntFlag{Name: "games", Value: 20, Usage: "games per ordered pairing"},
			&cli.StringFlag{Name: "config", Value: "", Usage: "match config name from the config directory (default: built-in standard)"},
			&cli.StringFlag{Name: "config-dir", Value: "configs", Usage: "directory holding match config files"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "base RNG seed"},
			&cli.IntFlag{Name: "round-cap", Value: sim.DefaultRoundCap, Usage: "abort games that exceed this many rounds"},
			&cli.StringFlag{Name: "out", Value: "", Usage: "directory for per-game JSON logs and summary.csv (empty = no logs)"},
		},
		Action: runTournament,
	}
}

func runTournament(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.NumPlayers != 2 {
		return fmt.Errorf("tournament requires a 2-player config, got %d players", cfg.NumPlayers)
	}

	result, err := sim.RunTournament(
		cfg,
		cmd.StringSlice("strategy"),
		cmd.Int("games"),
		cmd.Int64("seed"),
		cmd.Int("round-cap"),
	)
	if err != nil {
		return err
	}

	if err := writeLogs(cmd.String("out"), result.Results); err != nil {
		return err
	}

	fmt.Printf("Tournament: %d strategies, %d games\n\n", len(result.Strategies), result.Games)
	for rank, name := range result.Ranking() {
		fmt.Printf("%d. %-12s %4d wins\n", rank+1, name, result.Wins[name])
	}
	return nil
}

func agentsCommand() *cli.Command {
	return &cli.Command{
		Name:  "agents",
		Usage: "list available agent strategies",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range agents.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

// resolveConfig loads the named match config, falling back to the built-in
// standard setup when no name is given.
func resolveConfig(cmd *cli.Command) (*engine.MatchConfig, error) {
	name := cmd.String("config")
	if name == "" {
		return engine.DefaultMatchConfig(), nil
	}

	mgr, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return nil, fmt.Errorf("open config dir: %w", err)
	}
	cfg, err := mgr.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", name, err)
	}
	return cfg, nil
}

func writeLogs(dir string, results []*sim.GameResult) error {
	if dir == "" {
		return nil
	}
	logger, err := sim.NewLogger(dir)
	if err != nil {
		return err
	}
	for _, r := range results {
		if _, err := logger.WriteGame(r); err != nil {
			return err
		}
	}
	path, err := logger.WriteSummary(results)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d game logs and %s\n\n", len(results), path)
	return nil
}

func printBatchSummary(results []*sim.GameResult, agentNames []string) {
	wins := make(map[string]int)
	reasons := make(map[string]int)
	totalRounds := 0
	for _, r := range results {
		wins[r.WinnerName]++
		reasons[r.Reason]++
		totalRounds += r.Rounds
	}

	fmt.Printf("Played %d games (%s)\n\n", len(results), strings.Join(agentNames, " vs "))
	for seat, name := range agentNames {
		fmt.Printf("  seat %d %-12s %4d wins\n", seat, name, countSeatWins(results, seat))
	}
	fmt.Printf("\nAvg rounds: %.1f\n", float64(totalRounds)/float64(len(results)))
	fmt.Println("Endings:")
	for reason, n := range reasons {
		fmt.Printf("  %-22s %d\n", reason, n)
	}
}

func countSeatWins(results []*sim.GameResult, seat int) int {
	n := 0
	for _, r := range results {
		if r.Winner == seat {
			n++
		}
	}
	return n
}
