package sim

import (
	"fmt"
	"time"

	"github.com/wricardo/chasse-patate/game/agents"
	"github.com/wricardo/chasse-patate/game/engine"
)

// DefaultRoundCap bounds runaway games. Exceeding it is a forced-abort
// outcome, not an engine error.
const DefaultRoundCap = 100

// Options describes a single game run.
type Options struct {
	GameID   string
	Config   *engine.MatchConfig
	Agents   []string // strategy name per seat, must match the player count
	Seed     int64
	RoundCap int // 0 means DefaultRoundCap
}

// MoveLog is one executed move in a game log.
type MoveLog struct {
	Round       int               `json:"round"`
	Player      int               `json:"player"`
	Action      engine.ActionType `json:"action"`
	Rider       engine.RiderRef   `json:"rider"`
	OldPosition int               `json:"old_position"`
	NewPosition int               `json:"new_position"`
	Movement    int               `json:"movement"`
	Points      int               `json:"points"`
}

// GameResult is the complete record of one finished game, written as a JSON
// log and summarized into the batch CSV.
type GameResult struct {
	GameID     string    `json:"game_id"`
	Seed       int64     `json:"seed"`
	Agents     []string  `json:"agents"`
	Rounds     int       `json:"rounds"`
	Winner     int       `json:"winner"`
	WinnerName string    `json:"winner_strategy"`
	Scores     []int     `json:"scores"`
	Reason     string    `json:"reason"`
	DurationMS float64   `json:"duration_ms"`
	Moves      []MoveLog `json:"moves,omitempty"`
}

// RunGame plays one match to completion with the configured strategies.
func RunGame(opts Options) (*GameResult, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = engine.DefaultMatchConfig()
	}
	c := *cfg
	c.Seed = opts.Seed
	if len(opts.Agents) != c.NumPlayers {
		return nil, fmt.Errorf("need %d strategies, got %d", c.NumPlayers, len(opts.Agents))
	}

	players := make([]agents.Agent, c.NumPlayers)
	for i, name := range opts.Agents {
		agent, err := agents.New(name, opts.Seed+int64(i))
		if err != nil {
			return nil, err
		}
		players[i] = agent
	}

	roundCap := opts.RoundCap
	if roundCap <= 0 {
		roundCap = DefaultRoundCap
	}

	m, err := engine.NewMatch(&c)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var moves []MoveLog

	for m.StartNewRound() {
		if m.CurrentRound > roundCap {
			m.AbortAtRoundLimit()
			break
		}
		for !m.GameOver {
			p, riders := m.NextTurn()
			if p == nil {
				break
			}
			// The scheduler names which riders may act this turn; the agent
			// chooses among their moves only.
			var legal []engine.Move
			for _, r := range riders {
				mvs, err := m.RiderMoves(r.Ref())
				if err != nil {
					return nil, fmt.Errorf("game %s: %w", opts.GameID, err)
				}
				legal = append(legal, mvs...)
			}
			chosen, err := players[p.ID].ChooseMove(m, p.ID, legal)
			if err != nil {
				return nil, fmt.Errorf("game %s, player %d (%s): %w", opts.GameID, p.ID, players[p.ID].Name(), err)
			}
			result, err := m.ExecuteMove(chosen)
			if err != nil {
				return nil, fmt.Errorf("game %s, player %d (%s): move rejected: %w", opts.GameID, p.ID, players[p.ID].Name(), err)
			}
			moves = append(moves, MoveLog{
				Round:       m.CurrentRound,
				Player:      p.ID,
				Action:      result.Action,
				Rider:       result.Rider,
				OldPosition: result.OldPosition,
				NewPosition: result.NewPosition,
				Movement:    result.Movement,
				Points:      result.PointsEarned,
			})
		}
	}

	scores := make([]int, m.NumPlayers)
	for i, p := range m.Players {
		scores[i] = p.Points
	}
	winner := m.Standings()[0]

	return &GameResult{
		GameID:     opts.GameID,
		Seed:       opts.Seed,
		Agents:     opts.Agents,
		Rounds:     m.CurrentRound,
		Winner:     winner,
		WinnerName: opts.Agents[winner],
		Scores:     scores,
		Reason:     m.GameOverReason,
		DurationMS: float64(time.Since(start).Microseconds()) / 1000.0,
		Moves:      moves,
	}, nil
}
