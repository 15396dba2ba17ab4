package service

import (
	"context"
	"time"

	"github.com/wricardo/chasse-patate/game/engine"
)

// GameService defines all match-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Match Operations
	StartRound(ctx context.Context, sessionID string) (*RoundInfo, error)
	NextTurn(ctx context.Context, sessionID string) (*TurnInfo, error)
	LegalMoves(ctx context.Context, sessionID string, playerID int) ([]engine.Move, error)
	ExecuteMove(ctx context.Context, sessionID string, move engine.Move) (*MoveOutcome, error)

	// Match State
	GetSnapshot(ctx context.Context, sessionID string) (*engine.Snapshot, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.MatchConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.MatchConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.MatchConfig) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles match configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.MatchConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.MatchConfig
	SaveConfig(name string, config *engine.MatchConfig) error
}

// Session represents an active match session
type Session struct {
	ID             string
	Match          *engine.MatchState
	Config         *engine.MatchConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
