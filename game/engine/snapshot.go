package engine

// HandBreakdown counts a hand by card kind.
type HandBreakdown struct {
	Energy   int `json:"energy"`
	Rouleur  int `json:"rouleur"`
	Sprinter int `json:"sprinter"`
	Climber  int `json:"climber"`
	Total    int `json:"total"`
}

// RiderState is the public view of one rider.
type RiderState struct {
	Kind     CardKind `json:"kind"`
	Position int      `json:"position"`
	Terrain  Terrain  `json:"terrain"`
	Finished bool     `json:"finished"`
}

// PlayerSummary is the public view of one seat.
type PlayerSummary struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Points int           `json:"points"`
	Hand   HandBreakdown `json:"hand"`
	Riders []RiderState  `json:"riders"`
}

// Snapshot is a serializable, self-contained view of the match for
// transports and logs. It never exposes deck order or other hidden state.
type Snapshot struct {
	Round          int             `json:"round"`
	ElPatron       int             `json:"el_patron"`
	TrackLength    int             `json:"track_length"`
	Players        []PlayerSummary `json:"players"`
	DeckSize       int             `json:"deck_size"`
	DiscardSize    int             `json:"discard_size"`
	LastMove       *MoveRecord     `json:"last_move,omitempty"`
	Standings      []int           `json:"standings"`
	GameOver       bool            `json:"game_over"`
	GameOverReason string          `json:"game_over_reason,omitempty"`
}

// Snapshot builds the public view of the current match state.
func (m *MatchState) Snapshot() *Snapshot {
	s := &Snapshot{
		Round:          m.CurrentRound,
		ElPatron:       m.ElPatron,
		TrackLength:    m.TrackLength,
		DeckSize:       len(m.Deck),
		DiscardSize:    len(m.DiscardPile),
		Standings:      m.Standings(),
		GameOver:       m.GameOver,
		GameOverReason: m.GameOverReason,
	}
	if m.LastMove != nil {
		rec := *m.LastMove
		s.LastMove = &rec
	}
	for _, p := range m.Players {
		ps := PlayerSummary{
			ID:     p.ID,
			Name:   p.Name,
			Points: p.Points,
			Hand: HandBreakdown{
				Energy:   p.HandCount(CardEnergy),
				Rouleur:  p.HandCount(CardRouleur),
				Sprinter: p.HandCount(CardSprinter),
				Climber:  p.HandCount(CardClimber),
				Total:    len(p.Hand),
			},
		}
		for i := range p.Riders {
			r := &p.Riders[i]
			ps.Riders = append(ps.Riders, RiderState{
				Kind:     r.Kind,
				Position: r.Position,
				Terrain:  m.TerrainAt(r.Position),
				Finished: m.Finished(r),
			})
		}
		s.Players = append(s.Players, ps)
	}
	return s
}
