package engine

import "fmt"

// CardKind identifies a card family. Energy cards are wildcards playable on
// any rider; the three specialist kinds are only playable on the matching
// rider.
type CardKind string

const (
	CardEnergy   CardKind = "Energy"
	CardRouleur  CardKind = "Rouleur"
	CardSprinter CardKind = "Sprinter"
	CardClimber  CardKind = "Climber"
)

// RiderKinds lists the three rider specialties in the order each team
// fields them (rider 0, 1, 2).
var RiderKinds = [3]CardKind{CardRouleur, CardSprinter, CardClimber}

// Terrain identifies the surface of a single track field.
type Terrain string

const (
	TerrainFlat    Terrain = "flat"
	TerrainCobbles Terrain = "cobblestone"
	TerrainClimb   Terrain = "climb"
	TerrainDescent Terrain = "descent"
	TerrainSprint  Terrain = "sprint"
	TerrainFinish  Terrain = "finish"
)

// PlayMode selects which of a card's two value rows applies.
type PlayMode string

const (
	ModePull   PlayMode = "pull"
	ModeAttack PlayMode = "attack"
)

// ActionType enumerates the six move actions a player can take on a turn.
type ActionType string

const (
	ActionPull      ActionType = "Pull"
	ActionAttack    ActionType = "Attack"
	ActionDraft     ActionType = "Draft"
	ActionTeamPull  ActionType = "TeamPull"
	ActionTeamDraft ActionType = "TeamDraft"
	ActionTeamCar   ActionType = "TeamCar"
)

// MoveValues holds a card's movement contribution per terrain for one play
// mode.
type MoveValues struct {
	Flat    int `json:"flat"`
	Cobbles int `json:"cobblestone"`
	Climb   int `json:"climb"`
	Descent int `json:"descent"`
}

// On returns the movement value for the given terrain. Sprint and finish
// fields ride like flat.
func (v MoveValues) On(t Terrain) int {
	switch t {
	case TerrainCobbles:
		return v.Cobbles
	case TerrainClimb:
		return v.Climb
	case TerrainDescent:
		return v.Descent
	default:
		return v.Flat
	}
}

// Card is a single movement card. Pull and Attack are its two value rows.
type Card struct {
	Kind   CardKind   `json:"kind"`
	Pull   MoveValues `json:"pull"`
	Attack MoveValues `json:"attack"`
}

// IsEnergy reports whether the card is a wildcard Energy card.
func (c Card) IsEnergy() bool {
	return c.Kind == CardEnergy
}

// PlayableOn reports whether the card may be played on a rider of the given
// kind. Energy cards play on anyone; specialist cards only on their own kind.
func (c Card) PlayableOn(rider CardKind) bool {
	return c.Kind == CardEnergy || c.Kind == rider
}

// Movement returns the card's contribution for a terrain in the given mode.
func (c Card) Movement(t Terrain, mode PlayMode) int {
	if mode == ModeAttack {
		return c.Attack.On(t)
	}
	return c.Pull.On(t)
}

// NewCard builds the canonical card of the given kind with the standard
// printed values.
func NewCard(kind CardKind) Card {
	switch kind {
	case CardEnergy:
		return Card{
			Kind:   CardEnergy,
			Pull:   MoveValues{Flat: 1, Cobbles: 1, Climb: 1, Descent: 1},
			Attack: MoveValues{Flat: 1, Cobbles: 1, Climb: 1, Descent: 1},
		}
	case CardRouleur:
		return Card{
			Kind:   CardRouleur,
			Pull:   MoveValues{Flat: 2, Cobbles: 1, Climb: 1, Descent: 3},
			Attack: MoveValues{Flat: 2, Cobbles: 1, Climb: 1, Descent: 3},
		}
	case CardSprinter:
		return Card{
			Kind:   CardSprinter,
			Pull:   MoveValues{Flat: 1, Cobbles: 1, Climb: 0, Descent: 3},
			Attack: MoveValues{Flat: 3, Cobbles: 2, Climb: 1, Descent: 3},
		}
	case CardClimber:
		return Card{
			Kind:   CardClimber,
			Pull:   MoveValues{Flat: 0, Cobbles: 0, Climb: 2, Descent: 3},
			Attack: MoveValues{Flat: 1, Cobbles: 0, Climb: 3, Descent: 3},
		}
	}
	return Card{Kind: kind}
}

// RiderRef addresses one rider on the board by player and rider index.
type RiderRef struct {
	Player int `json:"player"`
	Rider  int `json:"rider"`
}

func (r RiderRef) String() string {
	return fmt.Sprintf("P%dR%d", r.Player, r.Rider)
}

// Rider is one of a player's three pieces on the track.
type Rider struct {
	PlayerID int      `json:"player_id"`
	RiderID  int      `json:"rider_id"`
	Kind     CardKind `json:"kind"`
	Position int      `json:"position"`
}

// Ref returns the rider's board address.
func (r *Rider) Ref() RiderRef {
	return RiderRef{Player: r.PlayerID, Rider: r.RiderID}
}

// Player is one seat in a match: a hand, three riders and a score.
type Player struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Hand   []Card  `json:"hand"`
	Riders []Rider `json:"riders"`
	Points int     `json:"points"`
}

// HandCount returns how many cards of the given kind the player holds.
func (p *Player) HandCount(kind CardKind) int {
	n := 0
	for _, c := range p.Hand {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Field is one position on the track. Points is non-nil on sprint and finish
// fields and lists the award for each arrival rank.
type Field struct {
	Position int     `json:"position"`
	Terrain  Terrain `json:"terrain"`
	Points   []int   `json:"points,omitempty"`
}

// Move is a player's declared action for one turn. CardIndices index into the
// acting player's hand. Drafters names the extra riders carried along by the
// team actions. Discard is the optional kind preference for TeamCar.
type Move struct {
	Action      ActionType `json:"action"`
	Rider       RiderRef   `json:"rider"`
	CardIndices []int      `json:"card_indices,omitempty"`
	Drafters    []RiderRef `json:"drafters,omitempty"`
	Discard     CardKind   `json:"discard,omitempty"`
}

// MoveRecord is the per-match memory of the most recent executed move, the
// basis for draft eligibility.
type MoveRecord struct {
	Action      ActionType `json:"action"`
	Rider       RiderRef   `json:"rider"`
	OldPosition int        `json:"old_position"`
	Movement    int        `json:"movement"`
}

// Draftable reports whether a follow-up Draft may latch onto this move.
func (r *MoveRecord) Draftable() bool {
	switch r.Action {
	case ActionPull, ActionTeamPull, ActionDraft, ActionTeamDraft:
		return true
	}
	return false
}

// DraftResult describes one drafter carried along by a team action or draft.
type DraftResult struct {
	Rider        RiderRef `json:"rider"`
	RiderKind    CardKind `json:"rider_kind"`
	OldPosition  int      `json:"old_position"`
	NewPosition  int      `json:"new_position"`
	PointsEarned int      `json:"points_earned"`
}

// MoveResult is the full report of one executed move.
type MoveResult struct {
	Action             ActionType    `json:"action"`
	Rider              RiderRef      `json:"rider"`
	RiderKind          CardKind      `json:"rider_kind"`
	OldPosition        int           `json:"old_position"`
	NewPosition        int           `json:"new_position"`
	Movement           int           `json:"movement"`
	CardsPlayed        []CardKind    `json:"cards_played,omitempty"`
	PointsEarned       int           `json:"points_earned"`
	CheckpointsReached []int         `json:"checkpoints_reached,omitempty"`
	CardsDrawn         []CardKind    `json:"cards_drawn,omitempty"`
	Discarded          CardKind      `json:"discarded,omitempty"`
	Drafters           []DraftResult `json:"drafters,omitempty"`
}
