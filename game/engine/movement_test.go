package engine

import "testing"

func newTestMatch(t *testing.T, players int) *MatchState {
	t.Helper()
	cfg := DefaultMatchConfig()
	cfg.NumPlayers = players
	cfg.Seed = 42
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	return m
}

// setHand replaces a player's hand while keeping the total card count
// balanced, so the conservation audit stays green.
func setHand(m *MatchState, p *Player, cards ...Card) {
	m.Deck = append(m.Deck, p.Hand...)
	m.Deck = m.Deck[:len(m.Deck)-len(cards)]
	p.Hand = append([]Card(nil), cards...)
}

func TestLimitedMovement(t *testing.T) {
	// Default track: flat 0-18, sprint 19, tile 5 mixed 20-39,
	// flat 40-41, climb 42-53, descent 54-58, finish 59.
	m := newTestMatch(t, 2)

	tests := []struct {
		name  string
		kind  CardKind
		start int
		base  int
		want  int
	}{
		{"unrestricted flat", CardRouleur, 0, 8, 8},
		{"sprinter blocked after 3 climb fields", CardSprinter, 41, 6, 3},
		{"sprinter from climb start", CardSprinter, 42, 6, 3},
		{"rouleur blocked after 4 climb fields", CardRouleur, 41, 8, 4},
		{"climber unrestricted on climb", CardClimber, 42, 6, 6},
		{"climber blocked on cobbles", CardClimber, 21, 6, 3},
		{"rouleur rides cobbles freely", CardRouleur, 21, 6, 6},
		{"climb into descent resets the limit", CardRouleur, 49, 10, 10},
		{"clamped at the finish line", CardRouleur, 58, 5, 1},
		{"zero base movement", CardRouleur, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.LimitedMovement(tt.kind, tt.start, tt.base); got != tt.want {
				t.Errorf("LimitedMovement(%s, %d, %d) = %d, want %d",
					tt.kind, tt.start, tt.base, got, tt.want)
			}
		})
	}
}

func TestBaseMovement(t *testing.T) {
	m := newTestMatch(t, 2)
	p := m.Players[0]
	rouleur := &p.Riders[0]

	tests := []struct {
		name  string
		cards []Card
		mode  PlayMode
		want  int
	}{
		{"single rouleur pull on flat", []Card{NewCard(CardRouleur)}, ModePull, 2},
		{"rouleur plus energy", []Card{NewCard(CardRouleur), NewCard(CardEnergy)}, ModePull, 3},
		{"three card attack", []Card{NewCard(CardRouleur), NewCard(CardRouleur), NewCard(CardEnergy)}, ModeAttack, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.BaseMovement(rouleur, tt.cards, tt.mode); got != tt.want {
				t.Errorf("BaseMovement = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBaseMovementUsesCurrentTerrain(t *testing.T) {
	m := newTestMatch(t, 2)
	p := m.Players[0]
	sprinter := &p.Riders[1]
	sprinter.Position = 42 // climb

	cards := []Card{NewCard(CardSprinter)}
	if got := m.BaseMovement(sprinter, cards, ModePull); got != 0 {
		t.Errorf("sprinter pull on climb = %d, want 0", got)
	}
	if got := m.BaseMovement(sprinter, cards, ModeAttack); got != 1 {
		t.Errorf("sprinter attack on climb = %d, want 1", got)
	}
}

func TestTerrainLimitsTable(t *testing.T) {
	tests := []struct {
		kind    CardKind
		terrain Terrain
		want    int
	}{
		{CardSprinter, TerrainClimb, 3},
		{CardRouleur, TerrainClimb, 4},
		{CardClimber, TerrainCobbles, 3},
	}
	for _, tt := range tests {
		if got := TerrainLimits[TerrainLimitKey{tt.kind, tt.terrain}]; got != tt.want {
			t.Errorf("limit for %s on %s = %d, want %d", tt.kind, tt.terrain, got, tt.want)
		}
	}
	if _, ok := TerrainLimits[TerrainLimitKey{CardClimber, TerrainClimb}]; ok {
		t.Error("climber should be unrestricted on climb")
	}
}
