package sim

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/wricardo/chasse-patate/game/engine"
)

func TestRunGame(t *testing.T) {
	result, err := RunGame(Options{
		GameID: "test_game",
		Agents: []string{"random", "greedy"},
		Seed:   42,
	})
	if err != nil {
		t.Fatalf("RunGame failed: %v", err)
	}
	if result.Reason == "" {
		t.Error("Expected a game over reason")
	}
	if result.Rounds < 1 {
		t.Errorf("Expected at least 1 round, got %d", result.Rounds)
	}
	if len(result.Scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(result.Scores))
	}
	if result.Winner < 0 || result.Winner > 1 {
		t.Errorf("Winner %d out of range", result.Winner)
	}
	if result.WinnerName != result.Agents[result.Winner] {
		t.Errorf("Winner strategy %q does not match seat %d", result.WinnerName, result.Winner)
	}
	if len(result.Moves) == 0 {
		t.Error("Expected a move log")
	}
}

func TestRunGameIsSeedReproducible(t *testing.T) {
	opts := Options{
		GameID: "repro",
		Agents: []string{"greedy", "balanced"},
		Seed:   7,
	}
	a, err := RunGame(opts)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := RunGame(opts)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if a.Rounds != b.Rounds || a.Reason != b.Reason || len(a.Moves) != len(b.Moves) {
		t.Errorf("runs diverged: %d/%s/%d vs %d/%s/%d",
			a.Rounds, a.Reason, len(a.Moves), b.Rounds, b.Reason, len(b.Moves))
	}
	for i := range a.Scores {
		if a.Scores[i] != b.Scores[i] {
			t.Errorf("score %d diverged: %d vs %d", i, a.Scores[i], b.Scores[i])
		}
	}
}

func TestRunGameRejectsAgentCountMismatch(t *testing.T) {
	_, err := RunGame(Options{
		GameID: "bad",
		Agents: []string{"random"},
		Seed:   1,
	})
	if err == nil {
		t.Error("Expected error for strategy/seat mismatch")
	}
}

func TestRunGameRoundCap(t *testing.T) {
	result, err := RunGame(Options{
		GameID:   "capped",
		Agents:   []string{"random", "random"},
		Seed:     3,
		RoundCap: 1,
	})
	if err != nil {
		t.Fatalf("RunGame failed: %v", err)
	}
	if result.Reason != engine.ReasonRoundLimit {
		t.Errorf("Expected %q after one round, got %q", engine.ReasonRoundLimit, result.Reason)
	}
	if result.Rounds != 2 {
		t.Errorf("Expected the cap to trip opening round 2, got round %d", result.Rounds)
	}
}

func TestRunBatch(t *testing.T) {
	results, err := RunBatch(BatchOptions{
		Agents:      []string{"random", "greedy"},
		Games:       4,
		BaseSeed:    100,
		RoundCap:    20,
		Parallelism: 2,
	})
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Seed != 100+int64(i) {
			t.Errorf("game %d: seed = %d, want %d", i, r.Seed, 100+int64(i))
		}
		if r.GameID != fmt.Sprintf("game_%04d", i) {
			t.Errorf("game %d: id = %q", i, r.GameID)
		}
	}
}

func TestRunBatchRejectsZeroGames(t *testing.T) {
	if _, err := RunBatch(BatchOptions{Agents: []string{"random", "random"}}); err == nil {
		t.Error("Expected error for zero games")
	}
}

func TestRunTournament(t *testing.T) {
	result, err := RunTournament(nil, []string{"random", "greedy"}, 1, 50, 20)
	if err != nil {
		t.Fatalf("RunTournament failed: %v", err)
	}
	if result.Games != 2 {
		t.Errorf("Expected 2 games (both seatings), got %d", result.Games)
	}
	total := 0
	for _, wins := range result.Wins {
		total += wins
	}
	if total != 2 {
		t.Errorf("Win counts sum to %d, want 2", total)
	}
	ranking := result.Ranking()
	if len(ranking) != 2 {
		t.Fatalf("Expected 2 ranked strategies, got %d", len(ranking))
	}
	if result.Wins[ranking[0]] < result.Wins[ranking[1]] {
		t.Error("Ranking is not ordered by wins")
	}
}

func TestRunTournamentValidation(t *testing.T) {
	if _, err := RunTournament(nil, []string{"random"}, 1, 0, 10); err == nil {
		t.Error("Expected error for a single strategy")
	}
	cfg := engine.DefaultMatchConfig()
	cfg.NumPlayers = 3
	if _, err := RunTournament(cfg, []string{"random", "greedy"}, 1, 0, 10); err == nil {
		t.Error("Expected error for a non 2 player config")
	}
}

func TestLoggerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	result, err := RunGame(Options{
		GameID:   "logged",
		Agents:   []string{"random", "random"},
		Seed:     5,
		RoundCap: 10,
	})
	if err != nil {
		t.Fatalf("RunGame failed: %v", err)
	}

	path, err := logger.WriteGame(result)
	if err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	loaded, err := ReadGame(path)
	if err != nil {
		t.Fatalf("ReadGame failed: %v", err)
	}
	if loaded.GameID != result.GameID || loaded.Rounds != result.Rounds || len(loaded.Moves) != len(result.Moves) {
		t.Error("Round-tripped game log does not match")
	}

	games, err := ReadGames(logger.Dir())
	if err != nil {
		t.Fatalf("ReadGames failed: %v", err)
	}
	if len(games) != 1 {
		t.Errorf("Expected 1 game log, got %d", len(games))
	}
}

func TestWriteSummary(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	results, err := RunBatch(BatchOptions{
		Agents:   []string{"random", "greedy"},
		Games:    2,
		BaseSeed: 9,
		RoundCap: 10,
	})
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}

	path, err := logger.WriteSummary(results)
	if err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open summary: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "game_id" {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	if rows[1][0] != "game_0000" || rows[2][0] != "game_0001" {
		t.Errorf("Unexpected game ids: %q, %q", rows[1][0], rows[2][0])
	}
}
