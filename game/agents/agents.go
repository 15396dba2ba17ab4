package agents

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wricardo/chasse-patate/game/engine"
)

// ErrNoMoves is returned when an agent is asked to choose from an empty set.
var ErrNoMoves = errors.New("no legal moves to choose from")

// Agent picks one move out of a seat's legal move set. Implementations only
// read match state; they never mutate it.
type Agent interface {
	Name() string
	ChooseMove(m *engine.MatchState, playerID int, moves []engine.Move) (engine.Move, error)
}

// Names lists the available strategy names in the order they are documented.
func Names() []string {
	return []string{"random", "greedy", "leadrider", "balanced", "sprinthunter", "adaptive"}
}

// New builds an agent by strategy name. The seed only matters for strategies
// that randomize; deterministic strategies ignore it.
func New(name string, seed int64) (Agent, error) {
	switch strings.ToLower(name) {
	case "random":
		return NewRandom(seed), nil
	case "greedy":
		return NewGreedy(), nil
	case "leadrider", "lead":
		return NewLeadRider(), nil
	case "balanced":
		return NewBalanced(), nil
	case "sprinthunter", "sprint":
		return NewSprintHunter(), nil
	case "adaptive":
		return NewAdaptive(), nil
	}
	return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(Names(), ", "))
}

// previewMovement returns the lead rider's terrain-limited movement and
// destination for a candidate move, or zeros when the move cannot be
// previewed.
func previewMovement(m *engine.MatchState, mv engine.Move) (movement, destination int) {
	movement, destination, err := m.PreviewMove(mv)
	if err != nil {
		return 0, 0
	}
	return movement, destination
}

// pathPoints sums the winner's share of every scoring field a move would
// cross. It overestimates contested fields, which is fine for ranking.
func pathPoints(m *engine.MatchState, mv engine.Move) int {
	r, err := m.RiderAt(mv.Rider)
	if err != nil {
		return 0
	}
	_, destination, err := m.PreviewMove(mv)
	if err != nil {
		return 0
	}
	total := 0
	for pos := r.Position + 1; pos <= destination; pos++ {
		if pts := m.FieldAt(pos).Points; len(pts) > 0 {
			total += pts[0]
		}
	}
	return total
}

// cardsSpent counts the hand cards a move consumes.
func cardsSpent(mv engine.Move) int {
	return len(mv.CardIndices)
}
