package engine

// Progress window used by the stall detector: a player must advance at least
// stuckMinFields over the last stuckWindow completed rounds.
const (
	stuckWindow    = 5
	stuckMinFields = 5
)

// StartNewRound closes the current round and opens the next one. The first
// round is led by player 0; from the second round on the El Patron marker
// passes to the next seat. Riders become eligible to move again. Returns
// false when the game is over.
func (m *MatchState) StartNewRound() bool {
	if m.GameOver {
		return false
	}
	m.recordProgress()
	m.CurrentRound++
	if m.CurrentRound >= 2 {
		m.ElPatron = (m.ElPatron + 1) % m.NumPlayers
	}
	m.RidersMoved = make(map[RiderRef]bool)
	for _, p := range m.Players {
		for i := range p.Riders {
			if m.Finished(&p.Riders[i]) {
				m.RidersMoved[p.Riders[i].Ref()] = true
			}
		}
	}
	if m.CheckGameOver() {
		return false
	}
	return true
}

// recordProgress snapshots every player's summed rider positions at a round
// boundary. The stall detector compares entries stuckWindow rounds apart.
func (m *MatchState) recordProgress() {
	totals := make([]int, m.NumPlayers)
	for i, p := range m.Players {
		for _, r := range p.Riders {
			totals[i] += r.Position
		}
	}
	m.progress = append(m.progress, totals)
}

// EligibleRiders returns the player's riders that have not moved this round
// and have not finished.
func (m *MatchState) EligibleRiders(p *Player) []*Rider {
	var out []*Rider
	for i := range p.Riders {
		r := &p.Riders[i]
		if m.RidersMoved[r.Ref()] || m.Finished(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// NextTurn returns the next player to act and their eligible riders. The turn
// goes to the unmoved rider furthest down the track; position ties go to the
// seat closest to the El Patron in rotation order. All of the winning player's
// riders tied at that position are returned, so the player picks which one
// acts. Returns nil when the round is complete.
func (m *MatchState) NextTurn() (*Player, []*Rider) {
	if m.GameOver {
		return nil, nil
	}
	bestPos := -1
	bestKey := m.NumPlayers
	var bestPlayer *Player
	for _, p := range m.Players {
		key := (p.ID - m.ElPatron + m.NumPlayers) % m.NumPlayers
		for i := range p.Riders {
			r := &p.Riders[i]
			if m.RidersMoved[r.Ref()] || m.Finished(r) {
				continue
			}
			if r.Position > bestPos || (r.Position == bestPos && key < bestKey) {
				bestPos = r.Position
				bestKey = key
				bestPlayer = p
			}
		}
	}
	if bestPlayer == nil {
		return nil, nil
	}
	var riders []*Rider
	for i := range bestPlayer.Riders {
		r := &bestPlayer.Riders[i]
		if r.Position == bestPos && !m.RidersMoved[r.Ref()] && !m.Finished(r) {
			riders = append(riders, r)
		}
	}
	return bestPlayer, riders
}

// RoundComplete reports whether every rider has either moved this round or
// finished the race.
func (m *MatchState) RoundComplete() bool {
	for _, p := range m.Players {
		if len(m.EligibleRiders(p)) > 0 {
			return false
		}
	}
	return true
}

func (m *MatchState) markMoved(refs ...RiderRef) {
	for _, ref := range refs {
		m.RidersMoved[ref] = true
	}
}
