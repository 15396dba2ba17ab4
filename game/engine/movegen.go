package engine

import "fmt"

// LegalMoves enumerates every move the player can make right now across all
// of their eligible riders. TeamCar is always available while the player has
// an eligible rider, so the list is empty only when the round is over for
// this player.
func (m *MatchState) LegalMoves(playerID int) ([]Move, error) {
	p, err := m.PlayerByID(playerID)
	if err != nil {
		return nil, err
	}
	var moves []Move
	for _, r := range m.EligibleRiders(p) {
		moves = append(moves, m.riderMoves(p, r)...)
	}
	return moves, nil
}

// RiderMoves enumerates the moves available to one eligible rider.
func (m *MatchState) RiderMoves(ref RiderRef) ([]Move, error) {
	r, err := m.RiderAt(ref)
	if err != nil {
		return nil, err
	}
	p := m.Players[ref.Player]
	if m.RidersMoved[ref] || m.Finished(r) {
		return nil, nil
	}
	return m.riderMoves(p, r), nil
}

func (m *MatchState) riderMoves(p *Player, r *Rider) []Move {
	ref := r.Ref()
	var moves []Move

	playable := playableIndices(p.Hand, r.Kind)
	pullSets := indexCombinations(playable, 1, 3)
	for _, set := range pullSets {
		moves = append(moves, Move{Action: ActionPull, Rider: ref, CardIndices: set})
	}
	for _, set := range indexCombinations(playable, 3, 3) {
		if hasSpecialist(p.Hand, set, r.Kind) {
			moves = append(moves, Move{Action: ActionAttack, Rider: ref, CardIndices: set})
		}
	}

	teammates := m.teamPullCandidates(p, ref, r.Position)
	for _, drafters := range refCombinations(teammates) {
		for _, set := range pullSets {
			moves = append(moves, Move{
				Action:      ActionTeamPull,
				Rider:       ref,
				CardIndices: set,
				Drafters:    drafters,
			})
		}
	}

	if m.draftEligible(ref, r) {
		moves = append(moves, Move{Action: ActionDraft, Rider: ref})
		candidates := m.teamDraftCandidates(p, ref)
		for _, drafters := range refCombinations(candidates) {
			moves = append(moves, Move{Action: ActionTeamDraft, Rider: ref, Drafters: drafters})
		}
	}

	moves = append(moves, Move{Action: ActionTeamCar, Rider: ref})
	return moves
}

func (m *MatchState) draftEligible(ref RiderRef, r *Rider) bool {
	last := m.LastMove
	return last != nil && last.Draftable() && ref != last.Rider && r.Position == last.OldPosition
}

// teamPullCandidates lists unmoved, unfinished teammates standing with the
// lead rider.
func (m *MatchState) teamPullCandidates(p *Player, lead RiderRef, position int) []RiderRef {
	var out []RiderRef
	for i := range p.Riders {
		d := &p.Riders[i]
		ref := d.Ref()
		if ref == lead || m.RidersMoved[ref] || m.Finished(d) || d.Position != position {
			continue
		}
		out = append(out, ref)
	}
	return out
}

// teamDraftCandidates lists teammates that independently satisfy draft
// eligibility against the last move.
func (m *MatchState) teamDraftCandidates(p *Player, lead RiderRef) []RiderRef {
	var out []RiderRef
	for i := range p.Riders {
		d := &p.Riders[i]
		ref := d.Ref()
		if ref == lead || m.RidersMoved[ref] || m.Finished(d) || !m.draftEligible(ref, d) {
			continue
		}
		out = append(out, ref)
	}
	return out
}

// PreviewMove computes the base movement and resulting lead rider position of
// a move without touching state. Agents use it to rank candidates.
func (m *MatchState) PreviewMove(mv Move) (movement, destination int, err error) {
	rider, err := m.RiderAt(mv.Rider)
	if err != nil {
		return 0, 0, err
	}
	switch mv.Action {
	case ActionPull, ActionAttack, ActionTeamPull:
		mode := ModePull
		if mv.Action == ActionAttack {
			mode = ModeAttack
		}
		cards, err := m.cardsFromIndices(m.Players[mv.Rider.Player], mv.CardIndices)
		if err != nil {
			return 0, 0, err
		}
		movement = m.BaseMovement(rider, cards, mode)
	case ActionDraft, ActionTeamDraft:
		if m.LastMove == nil {
			return 0, 0, ErrNoDraftableMove
		}
		movement = m.LastMove.Movement
	case ActionTeamCar:
		movement = 0
	default:
		return 0, 0, fmt.Errorf("%w: unknown action %q", ErrMalformedMove, mv.Action)
	}
	destination = rider.Position + m.LimitedMovement(rider.Kind, rider.Position, movement)
	return movement, destination, nil
}

func playableIndices(hand []Card, kind CardKind) []int {
	var out []int
	for i, c := range hand {
		if c.PlayableOn(kind) {
			out = append(out, i)
		}
	}
	return out
}

func hasSpecialist(hand []Card, indices []int, kind CardKind) bool {
	for _, idx := range indices {
		if hand[idx].Kind == kind {
			return true
		}
	}
	return false
}

// indexCombinations returns every subset of the indices with a size between
// minSize and maxSize inclusive.
func indexCombinations(indices []int, minSize, maxSize int) [][]int {
	var out [][]int
	var build func(start int, current []int)
	build = func(start int, current []int) {
		if len(current) >= minSize {
			out = append(out, append([]int(nil), current...))
		}
		if len(current) == maxSize {
			return
		}
		for i := start; i < len(indices); i++ {
			next := append(append([]int(nil), current...), indices[i])
			build(i+1, next)
		}
	}
	build(0, nil)
	return out
}

// refCombinations returns every non-empty subset of the rider refs. At most
// two teammates exist, so the result is small.
func refCombinations(refs []RiderRef) [][]RiderRef {
	var out [][]RiderRef
	n := len(refs)
	for mask := 1; mask < 1<<n; mask++ {
		var subset []RiderRef
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, refs[i])
			}
		}
		out = append(out, subset)
	}
	return out
}
