package engine

import "fmt"

const (
	// MinPlayers and MaxPlayers bound the seat count of a match.
	MinPlayers = 2
	MaxPlayers = 5
)

// StartingHandConfig controls how each player's opening hand is dealt.
// The kind counts are dealt from the sorted deck first; Random cards are then
// drawn from the shuffled remainder.
type StartingHandConfig struct {
	Energy   int `json:"energy_cards"`
	Rouleur  int `json:"rouleur_cards"`
	Sprinter int `json:"sprinter_cards"`
	Climber  int `json:"climber_cards"`
	Random   int `json:"random_cards"`
}

// Total returns the opening hand size.
func (c StartingHandConfig) Total() int {
	return c.Energy + c.Rouleur + c.Sprinter + c.Climber + c.Random
}

// CheckpointConfig controls how many cards a rider draws when crossing a
// checkpoint. Mid-tile checkpoints sit halfway through a tile; new-tile
// checkpoints sit on a tile boundary.
type CheckpointConfig struct {
	MidTile int `json:"mid_tile_checkpoint"`
	NewTile int `json:"new_tile_checkpoint"`
}

// DrawCount returns the number of cards drawn for crossing the checkpoint at
// the given position.
func (c CheckpointConfig) DrawCount(position int) int {
	if position%TileFields == CheckpointInterval {
		return c.MidTile
	}
	return c.NewTile
}

// MatchConfig is the full parameterization of a match.
type MatchConfig struct {
	Name         string             `json:"name,omitempty"`
	Description  string             `json:"description,omitempty"`
	NumPlayers   int                `json:"num_players"`
	TileConfig   []int              `json:"tile_config"`
	StartingHand StartingHandConfig `json:"starting_hand"`
	Checkpoints  CheckpointConfig   `json:"checkpoints"`
	Seed         int64              `json:"seed,omitempty"`
}

// DefaultMatchConfig returns the standard two-player setup on the default
// three-tile track.
func DefaultMatchConfig() *MatchConfig {
	return &MatchConfig{
		Name:        "standard",
		Description: "Standard race on the default three tile track",
		NumPlayers:  2,
		TileConfig:  []int{1, 5, 4},
		StartingHand: StartingHandConfig{
			Energy:   3,
			Rouleur:  1,
			Sprinter: 1,
			Climber:  1,
			Random:   3,
		},
		Checkpoints: CheckpointConfig{
			MidTile: 3,
			NewTile: 3,
		},
	}
}

// ValidateMatchConfig checks a configuration for correctness and
// playability.
func ValidateMatchConfig(cfg *MatchConfig) error {
	if cfg == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if cfg.NumPlayers < MinPlayers || cfg.NumPlayers > MaxPlayers {
		return fmt.Errorf("config validation: num_players must be between %d and %d, got %d",
			MinPlayers, MaxPlayers, cfg.NumPlayers)
	}
	if len(cfg.TileConfig) == 0 {
		return fmt.Errorf("config validation: tile_config must list at least one tile")
	}
	for i, id := range cfg.TileConfig {
		if _, ok := tileTemplates[id]; !ok {
			return fmt.Errorf("config validation: tile_config[%d] references unknown tile %d", i, id)
		}
	}
	hand := cfg.StartingHand
	if hand.Energy < 0 || hand.Rouleur < 0 || hand.Sprinter < 0 || hand.Climber < 0 || hand.Random < 0 {
		return fmt.Errorf("config validation: starting_hand counts must not be negative")
	}
	if hand.Total() == 0 {
		return fmt.Errorf("config validation: starting_hand must deal at least one card")
	}
	if perKind := hand.Energy; perKind*cfg.NumPlayers > energyCardCount {
		return fmt.Errorf("config validation: not enough Energy cards for %d players with %d each",
			cfg.NumPlayers, perKind)
	}
	for kind, perKind := range map[CardKind]int{
		CardRouleur:  hand.Rouleur,
		CardSprinter: hand.Sprinter,
		CardClimber:  hand.Climber,
	} {
		if perKind*cfg.NumPlayers > riderCardCount {
			return fmt.Errorf("config validation: not enough %s cards for %d players with %d each",
				kind, cfg.NumPlayers, perKind)
		}
	}
	if hand.Total()*cfg.NumPlayers > DeckSize {
		return fmt.Errorf("config validation: starting hands require %d cards, deck has %d",
			hand.Total()*cfg.NumPlayers, DeckSize)
	}
	if cfg.Checkpoints.MidTile < 0 || cfg.Checkpoints.NewTile < 0 {
		return fmt.Errorf("config validation: checkpoint draw counts must not be negative")
	}
	return nil
}
