package engine

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// DeckSize is the fixed number of cards in circulation per match.
	DeckSize = 90

	energyCardCount = 36
	riderCardCount  = 18
)

// MatchState is the authoritative state of one match. It is not safe for
// concurrent use; callers serialize access (the session layer does).
type MatchState struct {
	NumPlayers  int       `json:"num_players"`
	TileConfig  []int     `json:"tile_config"`
	Track       []Field   `json:"track"`
	TrackLength int       `json:"track_length"`
	Players     []*Player `json:"players"`
	Deck        []Card    `json:"-"`
	DiscardPile []Card    `json:"-"`

	CurrentRound   int         `json:"current_round"`
	ElPatron       int         `json:"el_patron"`
	LastMove       *MoveRecord `json:"last_move,omitempty"`
	GameOver       bool        `json:"game_over"`
	GameOverReason string      `json:"game_over_reason,omitempty"`

	RidersMoved    map[RiderRef]bool         `json:"-"`
	SprintArrivals map[int][]RiderRef        `json:"-"`
	Checkpoints    map[RiderRef]map[int]bool `json:"-"`

	config   *MatchConfig
	progress [][]int
	rng      *rand.Rand
}

// NewMatch validates the configuration, builds the track and deck, deals the
// opening hands and returns a match ready for StartNewRound.
func NewMatch(cfg *MatchConfig) (*MatchState, error) {
	if cfg == nil {
		cfg = DefaultMatchConfig()
	}
	if err := ValidateMatchConfig(cfg); err != nil {
		return nil, err
	}
	track, err := BuildTrack(cfg.TileConfig)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := &MatchState{
		NumPlayers:     cfg.NumPlayers,
		TileConfig:     append([]int(nil), cfg.TileConfig...),
		Track:          track,
		TrackLength:    len(track),
		ElPatron:       0,
		RidersMoved:    make(map[RiderRef]bool),
		SprintArrivals: make(map[int][]RiderRef),
		Checkpoints:    make(map[RiderRef]map[int]bool),
		config:         cfg,
		rng:            rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < cfg.NumPlayers; i++ {
		p := &Player{
			ID:   i,
			Name: fmt.Sprintf("Player %d", i+1),
		}
		for r, kind := range RiderKinds {
			p.Riders = append(p.Riders, Rider{
				PlayerID: i,
				RiderID:  r,
				Kind:     kind,
				Position: 0,
			})
		}
		m.Players = append(m.Players, p)
	}
	m.Deck = newDeck()
	m.dealInitialHands(cfg.StartingHand)
	return m, nil
}

// Config returns the configuration the match was created with.
func (m *MatchState) Config() *MatchConfig {
	return m.config
}

// newDeck builds the full 90 card deck, unshuffled.
func newDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for i := 0; i < energyCardCount; i++ {
		deck = append(deck, NewCard(CardEnergy))
	}
	for _, kind := range RiderKinds {
		for i := 0; i < riderCardCount; i++ {
			deck = append(deck, NewCard(kind))
		}
	}
	return deck
}

// dealInitialHands gives every player the configured kind counts from the
// sorted deck, then shuffles the remainder and deals the random portion.
func (m *MatchState) dealInitialHands(hand StartingHandConfig) {
	buckets := map[CardKind][]Card{}
	for _, c := range m.Deck {
		buckets[c.Kind] = append(buckets[c.Kind], c)
	}
	take := func(kind CardKind, n int) []Card {
		cards := buckets[kind][:n]
		buckets[kind] = buckets[kind][n:]
		return cards
	}
	for _, p := range m.Players {
		p.Hand = append(p.Hand, take(CardEnergy, hand.Energy)...)
		p.Hand = append(p.Hand, take(CardRouleur, hand.Rouleur)...)
		p.Hand = append(p.Hand, take(CardSprinter, hand.Sprinter)...)
		p.Hand = append(p.Hand, take(CardClimber, hand.Climber)...)
	}
	m.Deck = m.Deck[:0]
	for _, kind := range []CardKind{CardEnergy, CardRouleur, CardSprinter, CardClimber} {
		m.Deck = append(m.Deck, buckets[kind]...)
	}
	m.shuffleDeck()
	for _, p := range m.Players {
		for i := 0; i < hand.Random; i++ {
			if c, ok := m.drawCard(); ok {
				p.Hand = append(p.Hand, c)
			}
		}
	}
}

func (m *MatchState) shuffleDeck() {
	m.rng.Shuffle(len(m.Deck), func(i, j int) {
		m.Deck[i], m.Deck[j] = m.Deck[j], m.Deck[i]
	})
}

// drawCard takes the top card of the deck, reshuffling the discard pile into
// the deck first if the deck is empty. Returns false only when both piles are
// empty.
func (m *MatchState) drawCard() (Card, bool) {
	if len(m.Deck) == 0 {
		if len(m.DiscardPile) == 0 {
			return Card{}, false
		}
		m.Deck = append(m.Deck, m.DiscardPile...)
		m.DiscardPile = m.DiscardPile[:0]
		m.shuffleDeck()
	}
	c := m.Deck[len(m.Deck)-1]
	m.Deck = m.Deck[:len(m.Deck)-1]
	return c, true
}

// PlayerByID returns the player with the given seat, or an error.
func (m *MatchState) PlayerByID(id int) (*Player, error) {
	if id < 0 || id >= len(m.Players) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return m.Players[id], nil
}

// RiderAt resolves a rider reference, or returns an error.
func (m *MatchState) RiderAt(ref RiderRef) (*Rider, error) {
	p, err := m.PlayerByID(ref.Player)
	if err != nil {
		return nil, err
	}
	if ref.Rider < 0 || ref.Rider >= len(p.Riders) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRider, ref)
	}
	return &p.Riders[ref.Rider], nil
}

// FieldAt returns the track field at the position, clamped to the track.
func (m *MatchState) FieldAt(position int) *Field {
	if position < 0 {
		position = 0
	}
	if position >= m.TrackLength {
		position = m.TrackLength - 1
	}
	return &m.Track[position]
}

// TerrainAt returns the terrain under the given position.
func (m *MatchState) TerrainAt(position int) Terrain {
	return m.FieldAt(position).Terrain
}

// FinishLine returns the position of the last track field.
func (m *MatchState) FinishLine() int {
	return m.TrackLength - 1
}

// Finished reports whether the rider has reached the finish line.
func (m *MatchState) Finished(r *Rider) bool {
	return r.Position >= m.FinishLine()
}

// CardCount returns the total number of cards across deck, discard pile and
// all hands.
func (m *MatchState) CardCount() int {
	n := len(m.Deck) + len(m.DiscardPile)
	for _, p := range m.Players {
		n += len(p.Hand)
	}
	return n
}

// auditCards verifies that no card was created or destroyed.
func (m *MatchState) auditCards() error {
	if n := m.CardCount(); n != DeckSize {
		return fmt.Errorf("%w: counted %d, want %d", ErrCardConservation, n, DeckSize)
	}
	return nil
}
