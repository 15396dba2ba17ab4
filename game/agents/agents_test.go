package agents

import (
	"reflect"
	"testing"

	"github.com/wricardo/chasse-patate/game/engine"
)

func newTestMatch(t *testing.T, players int) *engine.MatchState {
	t.Helper()
	cfg := engine.DefaultMatchConfig()
	cfg.NumPlayers = players
	cfg.Seed = 42
	m, err := engine.NewMatch(cfg)
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	if !m.StartNewRound() {
		t.Fatal("round 1 should start")
	}
	return m
}

func legalMoves(t *testing.T, m *engine.MatchState, playerID int) []engine.Move {
	t.Helper()
	moves, err := m.LegalMoves(playerID)
	if err != nil {
		t.Fatalf("LegalMoves failed: %v", err)
	}
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move")
	}
	return moves
}

func TestFactory(t *testing.T) {
	tests := []struct {
		request string
		want    string
	}{
		{"random", "random"},
		{"Greedy", "greedy"},
		{"leadrider", "leadrider"},
		{"lead", "leadrider"},
		{"balanced", "balanced"},
		{"sprinthunter", "sprinthunter"},
		{"sprint", "sprinthunter"},
		{"adaptive", "adaptive"},
	}
	for _, tt := range tests {
		agent, err := New(tt.request, 1)
		if err != nil {
			t.Errorf("New(%q) failed: %v", tt.request, err)
			continue
		}
		if agent.Name() != tt.want {
			t.Errorf("New(%q).Name() = %q, want %q", tt.request, agent.Name(), tt.want)
		}
	}

	if _, err := New("chaotic", 1); err == nil {
		t.Error("Expected error for unknown strategy")
	}
}

func TestEmptyMoveSet(t *testing.T) {
	m := newTestMatch(t, 2)
	for _, name := range Names() {
		agent, err := New(name, 1)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if _, err := agent.ChooseMove(m, 0, nil); err != ErrNoMoves {
			t.Errorf("%s: expected ErrNoMoves, got %v", name, err)
		}
	}
}

func TestAllStrategiesChooseExecutableMoves(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			m := newTestMatch(t, 2)
			agent, err := New(name, 7)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			moves := legalMoves(t, m, 0)
			chosen, err := agent.ChooseMove(m, 0, moves)
			if err != nil {
				t.Fatalf("ChooseMove failed: %v", err)
			}
			if _, err := m.ExecuteMove(chosen); err != nil {
				t.Errorf("chosen move failed to execute: %v", err)
			}
		})
	}
}

func TestRandomIsSeedDeterministic(t *testing.T) {
	m1 := newTestMatch(t, 2)
	m2 := newTestMatch(t, 2)
	moves1 := legalMoves(t, m1, 0)
	moves2 := legalMoves(t, m2, 0)

	a1 := NewRandom(99)
	a2 := NewRandom(99)
	c1, _ := a1.ChooseMove(m1, 0, moves1)
	c2, _ := a2.ChooseMove(m2, 0, moves2)
	if !reflect.DeepEqual(c1, c2) {
		t.Errorf("same seed chose different moves: %+v vs %+v", c1, c2)
	}
}

func TestGreedyMaximizesMovement(t *testing.T) {
	m := newTestMatch(t, 2)
	moves := legalMoves(t, m, 0)

	chosen, err := NewGreedy().ChooseMove(m, 0, moves)
	if err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}
	chosenMovement, _ := previewMovement(m, chosen)
	for _, mv := range moves {
		if movement, _ := previewMovement(m, mv); movement > chosenMovement {
			t.Fatalf("greedy chose movement %d, but %d was available", chosenMovement, movement)
		}
	}
}

func TestLeadRiderActsWithFurthestRider(t *testing.T) {
	m := newTestMatch(t, 2)
	m.Players[0].Riders[2].Position = 5
	moves := legalMoves(t, m, 0)

	chosen, err := NewLeadRider().ChooseMove(m, 0, moves)
	if err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}
	r, err := m.RiderAt(chosen.Rider)
	if err != nil {
		t.Fatalf("RiderAt failed: %v", err)
	}
	if r.Position != 5 {
		t.Errorf("leadrider acted with rider at %d, want the rider at 5", r.Position)
	}
}

func TestSprintHunterMaximizesPathPoints(t *testing.T) {
	m := newTestMatch(t, 2)
	// Put a rider in range of the sprint field at position 19.
	m.Players[0].Riders[0].Position = 16
	moves := legalMoves(t, m, 0)

	chosen, err := NewSprintHunter().ChooseMove(m, 0, moves)
	if err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}
	chosenPts := pathPoints(m, chosen)
	for _, mv := range moves {
		if pts := pathPoints(m, mv); pts > chosenPts {
			t.Fatalf("sprinthunter chose %d path points, but %d was available", chosenPts, pts)
		}
	}
}

func TestAdaptiveSwitchesWithScoreboard(t *testing.T) {
	m := newTestMatch(t, 2)
	m.Players[0].Riders[0].Position = 16
	moves := legalMoves(t, m, 0)

	adaptive := NewAdaptive()

	// Behind on points: hunt.
	m.Players[0].Points = 0
	m.Players[1].Points = 8
	want, _ := NewSprintHunter().ChooseMove(m, 0, moves)
	got, err := adaptive.ChooseMove(m, 0, moves)
	if err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("behind: adaptive chose %+v, want sprinthunter's %+v", got, want)
	}

	// Ahead on points: consolidate.
	m.Players[0].Points = 10
	m.Players[1].Points = 2
	want, _ = NewBalanced().ChooseMove(m, 0, moves)
	got, err = adaptive.ChooseMove(m, 0, moves)
	if err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ahead: adaptive chose %+v, want balanced's %+v", got, want)
	}
}
