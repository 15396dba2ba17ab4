package service

import (
	"time"

	"github.com/wricardo/chasse-patate/game/engine"
)

// SessionInfo provides information about a match session
type SessionInfo struct {
	ID             string              `json:"id"`
	ConfigName     string              `json:"config_name"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	Snapshot       *engine.Snapshot    `json:"snapshot"`
	MatchConfig    *engine.MatchConfig `json:"match_config"`
}

// RoundInfo reports the outcome of opening a new round
type RoundInfo struct {
	Started        bool   `json:"started"`
	Round          int    `json:"round"`
	ElPatron       int    `json:"el_patron"`
	GameOver       bool   `json:"game_over"`
	GameOverReason string `json:"game_over_reason,omitempty"`
}

// TurnRider identifies one rider a player may move this turn
type TurnRider struct {
	Rider    engine.RiderRef `json:"rider"`
	Kind     engine.CardKind `json:"kind"`
	Position int             `json:"position"`
}

// TurnInfo names the next player to act and their eligible riders.
// RoundComplete is true when no rider is left to move.
type TurnInfo struct {
	RoundComplete bool        `json:"round_complete"`
	Player        int         `json:"player"`
	PlayerName    string      `json:"player_name,omitempty"`
	Riders        []TurnRider `json:"riders,omitempty"`
}

// MoveOutcome pairs an executed move's result with the updated match view
type MoveOutcome struct {
	Result   *engine.MoveResult `json:"result"`
	Snapshot *engine.Snapshot   `json:"snapshot"`
}

// ConfigInfo provides information about a match configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	NumPlayers  int    `json:"num_players"`
	TrackTiles  int    `json:"track_tiles"`
}
