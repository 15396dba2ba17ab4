package engine

// scoreArrival awards sprint or finish points when a rider lands on or
// crosses a scoring field. Each rider scores a given field at most once;
// arrival order decides the award. Returns the points granted.
func (m *MatchState) scoreArrival(ref RiderRef, position int) int {
	field := m.FieldAt(position)
	if field.Position != position || len(field.Points) == 0 {
		return 0
	}
	for _, prev := range m.SprintArrivals[position] {
		if prev == ref {
			return 0
		}
	}
	rank := len(m.SprintArrivals[position])
	m.SprintArrivals[position] = append(m.SprintArrivals[position], ref)
	if rank >= len(field.Points) {
		return 0
	}
	pts := field.Points[rank]
	m.Players[ref.Player].Points += pts
	return pts
}

// scorePath awards every scoring field a rider crossed or landed on while
// moving from oldPos to newPos.
func (m *MatchState) scorePath(ref RiderRef, oldPos, newPos int) int {
	total := 0
	for pos := oldPos + 1; pos <= newPos; pos++ {
		total += m.scoreArrival(ref, pos)
	}
	return total
}

// crossCheckpoints draws cards into the rider's owner's hand for every
// checkpoint crossed between oldPos and newPos that this rider has not
// claimed before. Returns the checkpoint positions claimed and the cards
// drawn.
func (m *MatchState) crossCheckpoints(ref RiderRef, oldPos, newPos int) ([]int, []CardKind) {
	var reached []int
	var drawn []CardKind
	for pos := oldPos + 1; pos <= newPos; pos++ {
		if !IsCheckpoint(pos) {
			continue
		}
		claimed := m.Checkpoints[ref]
		if claimed == nil {
			claimed = make(map[int]bool)
			m.Checkpoints[ref] = claimed
		}
		if claimed[pos] {
			continue
		}
		claimed[pos] = true
		reached = append(reached, pos)
		owner := m.Players[ref.Player]
		for i := 0; i < m.config.Checkpoints.DrawCount(pos); i++ {
			c, ok := m.drawCard()
			if !ok {
				break
			}
			owner.Hand = append(owner.Hand, c)
			drawn = append(drawn, c.Kind)
		}
	}
	return reached, drawn
}

// Standings returns player ids ordered by points, highest first. Ties keep
// seat order.
func (m *MatchState) Standings() []int {
	order := make([]int, len(m.Players))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && m.Players[order[j]].Points > m.Players[order[j-1]].Points; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}
