package engine

import (
	"fmt"
	"sort"
)

// ExecuteMove validates and applies one move. On any validation error the
// match state is left untouched. Side effects apply in a fixed order: riders
// move, played cards go to the discard pile, scoring fields award points,
// checkpoints draw cards, then the move is recorded and participants are
// marked as moved.
func (m *MatchState) ExecuteMove(mv Move) (*MoveResult, error) {
	if m.GameOver {
		return nil, ErrGameOver
	}
	rider, err := m.RiderAt(mv.Rider)
	if err != nil {
		return nil, err
	}
	player := m.Players[mv.Rider.Player]
	if m.Finished(rider) {
		return nil, fmt.Errorf("%w: rider %s already finished", ErrMalformedMove, mv.Rider)
	}
	if m.RidersMoved[mv.Rider] {
		return nil, fmt.Errorf("%w: rider %s already moved this round", ErrMalformedMove, mv.Rider)
	}

	var (
		cards    []Card
		drafters []*Rider
		base     int
	)

	switch mv.Action {
	case ActionPull, ActionAttack, ActionTeamPull:
		mode := ModePull
		if mv.Action == ActionAttack {
			mode = ModeAttack
		}
		cards, err = m.cardsFromIndices(player, mv.CardIndices)
		if err != nil {
			return nil, err
		}
		if err := validateCardSet(mv.Action, rider.Kind, cards); err != nil {
			return nil, err
		}
		if mv.Action == ActionTeamPull {
			drafters, err = m.resolveDrafters(mv, rider.Position)
			if err != nil {
				return nil, err
			}
		} else if len(mv.Drafters) > 0 {
			return nil, fmt.Errorf("%w: %s takes no drafters", ErrMalformedMove, mv.Action)
		}
		base = m.BaseMovement(rider, cards, mode)

	case ActionDraft, ActionTeamDraft:
		if len(mv.CardIndices) > 0 {
			return nil, fmt.Errorf("%w: %s plays no cards", ErrMalformedMove, mv.Action)
		}
		last := m.LastMove
		if last == nil || !last.Draftable() {
			return nil, ErrNoDraftableMove
		}
		if mv.Rider == last.Rider {
			return nil, fmt.Errorf("%w: rider cannot draft its own move", ErrMalformedMove)
		}
		if rider.Position != last.OldPosition {
			return nil, fmt.Errorf("%w: rider %s is not at the drafted position %d",
				ErrMalformedMove, mv.Rider, last.OldPosition)
		}
		if mv.Action == ActionTeamDraft {
			drafters, err = m.resolveDrafters(mv, last.OldPosition)
			if err != nil {
				return nil, err
			}
			for _, d := range drafters {
				if d.Ref() == last.Rider {
					return nil, fmt.Errorf("%w: rider cannot draft its own move", ErrMalformedMove)
				}
			}
		} else if len(mv.Drafters) > 0 {
			return nil, fmt.Errorf("%w: Draft takes no drafters", ErrMalformedMove)
		}
		base = last.Movement

	case ActionTeamCar:
		if len(mv.CardIndices) > 0 || len(mv.Drafters) > 0 {
			return nil, fmt.Errorf("%w: TeamCar takes no cards or drafters", ErrMalformedMove)
		}
		return m.executeTeamCar(mv, player, rider)

	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrMalformedMove, mv.Action)
	}

	// Validation done, apply.
	result := &MoveResult{
		Action:      mv.Action,
		Rider:       mv.Rider,
		RiderKind:   rider.Kind,
		OldPosition: rider.Position,
		Movement:    base,
	}
	for _, c := range cards {
		result.CardsPlayed = append(result.CardsPlayed, c.Kind)
	}

	moved := m.LimitedMovement(rider.Kind, rider.Position, base)
	rider.Position += moved
	result.NewPosition = rider.Position

	for _, d := range drafters {
		dr := DraftResult{
			Rider:       d.Ref(),
			RiderKind:   d.Kind,
			OldPosition: d.Position,
		}
		d.Position += m.LimitedMovement(d.Kind, d.Position, base)
		dr.NewPosition = d.Position
		result.Drafters = append(result.Drafters, dr)
	}

	m.discardFromHand(player, mv.CardIndices)

	result.PointsEarned = m.scorePath(mv.Rider, result.OldPosition, result.NewPosition)
	for i := range result.Drafters {
		dr := &result.Drafters[i]
		dr.PointsEarned = m.scorePath(dr.Rider, dr.OldPosition, dr.NewPosition)
	}

	reached, drawn := m.crossCheckpoints(mv.Rider, result.OldPosition, result.NewPosition)
	result.CheckpointsReached = append(result.CheckpointsReached, reached...)
	result.CardsDrawn = append(result.CardsDrawn, drawn...)
	for i := range result.Drafters {
		dr := &result.Drafters[i]
		reached, drawn := m.crossCheckpoints(dr.Rider, dr.OldPosition, dr.NewPosition)
		result.CheckpointsReached = append(result.CheckpointsReached, reached...)
		result.CardsDrawn = append(result.CardsDrawn, drawn...)
	}

	m.LastMove = &MoveRecord{
		Action:      mv.Action,
		Rider:       mv.Rider,
		OldPosition: result.OldPosition,
		Movement:    base,
	}
	m.markMoved(mv.Rider)
	for _, d := range drafters {
		m.markMoved(d.Ref())
	}

	if err := m.auditCards(); err != nil {
		return nil, err
	}
	m.CheckGameOver()
	return result, nil
}

// executeTeamCar draws two cards and discards one back. The discard honors
// the nominated kind when held, then Energy, then the first card in hand.
func (m *MatchState) executeTeamCar(mv Move, player *Player, rider *Rider) (*MoveResult, error) {
	result := &MoveResult{
		Action:      ActionTeamCar,
		Rider:       mv.Rider,
		RiderKind:   rider.Kind,
		OldPosition: rider.Position,
		NewPosition: rider.Position,
	}
	for i := 0; i < 2; i++ {
		c, ok := m.drawCard()
		if !ok {
			break
		}
		player.Hand = append(player.Hand, c)
		result.CardsDrawn = append(result.CardsDrawn, c.Kind)
	}
	if len(player.Hand) > 0 {
		idx := teamCarDiscardIndex(player.Hand, mv.Discard)
		result.Discarded = player.Hand[idx].Kind
		m.DiscardPile = append(m.DiscardPile, player.Hand[idx])
		player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)
	}

	m.LastMove = &MoveRecord{
		Action:      ActionTeamCar,
		Rider:       mv.Rider,
		OldPosition: rider.Position,
		Movement:    0,
	}
	m.markMoved(mv.Rider)

	if err := m.auditCards(); err != nil {
		return nil, err
	}
	m.CheckGameOver()
	return result, nil
}

func teamCarDiscardIndex(hand []Card, preferred CardKind) int {
	if preferred != "" {
		for i, c := range hand {
			if c.Kind == preferred {
				return i
			}
		}
	}
	for i, c := range hand {
		if c.IsEnergy() {
			return i
		}
	}
	return 0
}

// cardsFromIndices resolves hand indices into cards, rejecting duplicates and
// out-of-range indices.
func (m *MatchState) cardsFromIndices(player *Player, indices []int) ([]Card, error) {
	seen := make(map[int]bool, len(indices))
	cards := make([]Card, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(player.Hand) {
			return nil, fmt.Errorf("%w: index %d", ErrCardNotInHand, idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: index %d used twice", ErrCardNotInHand, idx)
		}
		seen[idx] = true
		cards = append(cards, player.Hand[idx])
	}
	return cards, nil
}

func validateCardSet(action ActionType, riderKind CardKind, cards []Card) error {
	if len(cards) == 0 || len(cards) > 3 {
		return fmt.Errorf("%w: %s plays 1 to 3 cards, got %d", ErrMalformedMove, action, len(cards))
	}
	if action == ActionAttack && len(cards) != 3 {
		return fmt.Errorf("%w: Attack plays exactly 3 cards, got %d", ErrMalformedMove, len(cards))
	}
	specialist := false
	for _, c := range cards {
		if !c.PlayableOn(riderKind) {
			return fmt.Errorf("%w: %s card on %s rider", ErrCardNotPlayable, c.Kind, riderKind)
		}
		if c.Kind == riderKind {
			specialist = true
		}
	}
	if action == ActionAttack && !specialist {
		return fmt.Errorf("%w: Attack requires at least one %s card", ErrMalformedMove, riderKind)
	}
	return nil
}

// resolveDrafters validates the drafter list of a team action: teammates of
// the lead rider, unmoved, unfinished, all standing at the required position.
func (m *MatchState) resolveDrafters(mv Move, position int) ([]*Rider, error) {
	if len(mv.Drafters) == 0 {
		return nil, fmt.Errorf("%w: %s requires at least one drafter", ErrMalformedMove, mv.Action)
	}
	seen := make(map[RiderRef]bool, len(mv.Drafters))
	out := make([]*Rider, 0, len(mv.Drafters))
	for _, ref := range mv.Drafters {
		if ref == mv.Rider {
			return nil, fmt.Errorf("%w: lead rider listed as drafter", ErrMalformedMove)
		}
		if ref.Player != mv.Rider.Player {
			return nil, fmt.Errorf("%w: drafter %s is not a teammate", ErrMalformedMove, ref)
		}
		if seen[ref] {
			return nil, fmt.Errorf("%w: drafter %s listed twice", ErrMalformedMove, ref)
		}
		seen[ref] = true
		d, err := m.RiderAt(ref)
		if err != nil {
			return nil, err
		}
		if m.Finished(d) {
			return nil, fmt.Errorf("%w: drafter %s already finished", ErrMalformedMove, ref)
		}
		if m.RidersMoved[ref] {
			return nil, fmt.Errorf("%w: drafter %s already moved this round", ErrMalformedMove, ref)
		}
		if d.Position != position {
			return nil, fmt.Errorf("%w: drafter %s is not at position %d", ErrMalformedMove, ref, position)
		}
		out = append(out, d)
	}
	return out, nil
}

// discardFromHand removes the indexed cards from the hand and appends them to
// the discard pile.
func (m *MatchState) discardFromHand(player *Player, indices []int) {
	if len(indices) == 0 {
		return
	}
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, idx := range sorted {
		m.DiscardPile = append(m.DiscardPile, player.Hand[idx])
		player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)
	}
}
