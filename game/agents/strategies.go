package agents

import (
	"math/rand"

	"github.com/wricardo/chasse-patate/game/engine"
)

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) Name() string { return "random" }

func (a *Random) ChooseMove(m *engine.MatchState, playerID int, moves []engine.Move) (engine.Move, error) {
	if len(moves) == 0 {
		return engine.Move{}, ErrNoMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// Greedy maximizes the lead rider's movement this turn. Ties go to the move
// that spends fewer cards, then to enumeration order.
type Greedy struct{}

func NewGreedy() *Greedy { return &Greedy{} }

func (a *Greedy) Name() string { return "greedy" }

func (a *Greedy) ChooseMove(m *engine.MatchState, playerID int, moves []engine.Move) (engine.Move, error) {
	if len(moves) == 0 {
		return engine.Move{}, ErrNoMoves
	}
	best := moves[0]
	bestMove, _ := previewMovement(m, best)
	for _, mv := range moves[1:] {
		movement, _ := previewMovement(m, mv)
		if movement > bestMove || (movement == bestMove && cardsSpent(mv) < cardsSpent(best)) {
			best = mv
			bestMove = movement
		}
	}
	return best, nil
}

// LeadRider pushes the player's furthest unfinished rider as hard as it can,
// accepting the team falling apart behind it.
type LeadRider struct{}

func NewLeadRider() *LeadRider { return &LeadRider{} }

func (a *LeadRider) Name() string { return "leadrider" }

func (a *LeadRider) ChooseMove(m *engine.MatchState, playerID int, moves []engine.Move) (engine.Move, error) {
	if len(moves) == 0 {
		return engine.Move{}, ErrNoMoves
	}
	front := -1
	for _, mv := range moves {
		if r, err := m.RiderAt(mv.Rider); err == nil && r.Position > front {
			front = r.Position
		}
	}
	var frontMoves []engine.Move
	for _, mv := range moves {
		if r, err := m.RiderAt(mv.Rider); err == nil && r.Position == front {
			frontMoves = append(frontMoves, mv)
		}
	}
	if len(frontMoves) == 0 {
		frontMoves = moves
	}
	return NewGreedy().ChooseMove(m, playerID, frontMoves)
}

// Balanced keeps the team together: it acts with the most trailing rider and
// favors team actions that move several riders at once.
type Balanced struct{}

func NewBalanced() *Balanced { return &Balanced{} }

func (a *Balanced) Name() string { return "balanced" }

func (a *Balanced) ChooseMove(m *engine.MatchState, playerID int, moves []engine.Move) (engine.Move, error) {
	if len(moves) == 0 {
		return engine.Move{}, ErrNoMoves
	}
	best := moves[0]
	bestScore := a.score(m, best)
	for _, mv := range moves[1:] {
		if s := a.score(m, mv); s > bestScore {
			best = mv
			bestScore = s
		}
	}
	return best, nil
}

func (a *Balanced) score(m *engine.MatchState, mv engine.Move) int {
	r, err := m.RiderAt(mv.Rider)
	if err != nil {
		return -1 << 30
	}
	movement, _ := previewMovement(m, mv)
	// Trailing riders score higher, and every drafter pulled along adds value.
	s := movement*4 + len(mv.Drafters)*6 - r.Position
	return s
}

// SprintHunter chases scoring fields: it ranks moves by the points available
// on the path they would cross, falling back to movement.
type SprintHunter struct{}

func NewSprintHunter() *SprintHunter { return &SprintHunter{} }

func (a *SprintHunter) Name() string { return "sprinthunter" }

func (a *SprintHunter) ChooseMove(m *engine.MatchState, playerID int, moves []engine.Move) (engine.Move, error) {
	if len(moves) == 0 {
		return engine.Move{}, ErrNoMoves
	}
	best := moves[0]
	bestPts := pathPoints(m, best)
	bestMove, _ := previewMovement(m, best)
	for _, mv := range moves[1:] {
		pts := pathPoints(m, mv)
		movement, _ := previewMovement(m, mv)
		if pts > bestPts || (pts == bestPts && movement > bestMove) {
			best = mv
			bestPts = pts
			bestMove = movement
		}
	}
	return best, nil
}

// Adaptive switches posture with the scoreboard: chase points while behind,
// consolidate the team while ahead.
type Adaptive struct {
	hunter   *SprintHunter
	balanced *Balanced
}

func NewAdaptive() *Adaptive {
	return &Adaptive{hunter: NewSprintHunter(), balanced: NewBalanced()}
}

func (a *Adaptive) Name() string { return "adaptive" }

func (a *Adaptive) ChooseMove(m *engine.MatchState, playerID int, moves []engine.Move) (engine.Move, error) {
	if len(moves) == 0 {
		return engine.Move{}, ErrNoMoves
	}
	p, err := m.PlayerByID(playerID)
	if err != nil {
		return engine.Move{}, err
	}
	bestOther := 0
	for _, other := range m.Players {
		if other.ID != playerID && other.Points > bestOther {
			bestOther = other.Points
		}
	}
	if p.Points < bestOther {
		return a.hunter.ChooseMove(m, playerID, moves)
	}
	return a.balanced.ChooseMove(m, playerID, moves)
}
