package engine

// TerrainLimitKey pairs a rider specialty with a terrain it struggles on.
type TerrainLimitKey struct {
	Rider   CardKind
	Terrain Terrain
}

// TerrainLimits caps how many consecutive fields of a terrain a rider may
// enter in a single move. Unlisted pairings are unrestricted.
var TerrainLimits = map[TerrainLimitKey]int{
	{CardSprinter, TerrainClimb}:  3,
	{CardRouleur, TerrainClimb}:   4,
	{CardClimber, TerrainCobbles}: 3,
}

// LimitedMovement walks a rider of the given kind field by field from start
// and returns how far it actually travels out of base fields. Entering a
// limited terrain counts against the cap for that consecutive stretch;
// leaving it resets the count. The walk never passes the finish line.
func (m *MatchState) LimitedMovement(kind CardKind, start, base int) int {
	pos := start
	streak := 0
	for step := 0; step < base; step++ {
		next := pos + 1
		if next > m.FinishLine() {
			break
		}
		terrain := m.TerrainAt(next)
		if limit, ok := TerrainLimits[TerrainLimitKey{kind, terrain}]; ok {
			if streak >= limit {
				break
			}
			streak++
		} else {
			streak = 0
		}
		pos = next
	}
	return pos - start
}

// BaseMovement sums the played cards' values for the rider's current terrain
// in the given mode.
func (m *MatchState) BaseMovement(rider *Rider, cards []Card, mode PlayMode) int {
	terrain := m.TerrainAt(rider.Position)
	total := 0
	for _, c := range cards {
		total += c.Movement(terrain, mode)
	}
	return total
}
