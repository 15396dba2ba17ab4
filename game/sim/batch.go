package sim

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/wricardo/chasse-patate/game/engine"
)

// BatchOptions describes an N-game batch under one configuration.
type BatchOptions struct {
	Config      *engine.MatchConfig
	Agents      []string
	Games       int
	BaseSeed    int64
	RoundCap    int
	Parallelism int // 0 means GOMAXPROCS
}

// RunBatch plays Games matches in parallel, each on its own seeded state.
// Results come back in game order regardless of completion order.
func RunBatch(opts BatchOptions) ([]*GameResult, error) {
	if opts.Games <= 0 {
		return nil, fmt.Errorf("batch needs at least 1 game, got %d", opts.Games)
	}
	workers := opts.Parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Games {
		workers = opts.Games
	}

	results := make([]*GameResult, opts.Games)
	errs := make([]error, opts.Games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = RunGame(Options{
					GameID:   fmt.Sprintf("game_%04d", i),
					Config:   opts.Config,
					Agents:   opts.Agents,
					Seed:     opts.BaseSeed + int64(i),
					RoundCap: opts.RoundCap,
				})
			}
		}()
	}
	for i := 0; i < opts.Games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
	}
	return results, nil
}

// TournamentResult aggregates a round-robin between strategies.
type TournamentResult struct {
	Strategies []string       `json:"strategies"`
	Games      int            `json:"games"`
	Wins       map[string]int `json:"wins"`
	Results    []*GameResult  `json:"results"`
}

// Ranking returns the strategies ordered by wins, highest first.
func (t *TournamentResult) Ranking() []string {
	ranked := append([]string(nil), t.Strategies...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.Wins[ranked[i]] > t.Wins[ranked[j]]
	})
	return ranked
}

// RunTournament plays every strategy pairing both ways on a two player
// configuration, gamesPerPair games per seating.
func RunTournament(cfg *engine.MatchConfig, strategies []string, gamesPerPair int, baseSeed int64, roundCap int) (*TournamentResult, error) {
	if len(strategies) < 2 {
		return nil, fmt.Errorf("tournament needs at least 2 strategies, got %d", len(strategies))
	}
	if cfg == nil {
		cfg = engine.DefaultMatchConfig()
	}
	if cfg.NumPlayers != 2 {
		return nil, fmt.Errorf("tournaments run on 2 player configs, got %d players", cfg.NumPlayers)
	}
	if gamesPerPair <= 0 {
		return nil, fmt.Errorf("tournament needs at least 1 game per pairing, got %d", gamesPerPair)
	}

	out := &TournamentResult{
		Strategies: strategies,
		Wins:       make(map[string]int),
	}
	seed := baseSeed
	for i := 0; i < len(strategies); i++ {
		for j := 0; j < len(strategies); j++ {
			if i == j {
				continue
			}
			pair := []string{strategies[i], strategies[j]}
			batch, err := RunBatch(BatchOptions{
				Config:   cfg,
				Agents:   pair,
				Games:    gamesPerPair,
				BaseSeed: seed,
				RoundCap: roundCap,
			})
			if err != nil {
				return nil, fmt.Errorf("%s vs %s: %w", pair[0], pair[1], err)
			}
			for k, res := range batch {
				res.GameID = fmt.Sprintf("%s_vs_%s_%04d", pair[0], pair[1], k)
				out.Wins[res.WinnerName]++
				out.Results = append(out.Results, res)
				out.Games++
			}
			seed += int64(gamesPerPair)
		}
	}
	return out, nil
}
