package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/chasse-patate/game/engine"
	"github.com/wricardo/chasse-patate/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Chasse Patate",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Chasse Patate - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Race a team of three riders (Rouleur, Sprinter, Climber) along the track by
playing cards from your hand. Score points at sprints and at the finish line.

AVAILABLE TOOLS:
- match_state: Get the current match snapshot
- start_round: Open the next round of the match
- next_turn: Ask whose turn it is and which riders may act
- legal_moves: Enumerate every legal move for a player
- play_move: Execute one move - requires intent explanation
- create_session: Create new match session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available match configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on play_move serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new match session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active match sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Match operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "match_state",
		Description: "Get the current match snapshot: round, El Patron, rider positions, hands and standings",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMatchState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "start_round",
		Description: "Open the next round: rotate El Patron and reset every rider's turn",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleStartRound)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "next_turn",
		Description: "Ask whose turn it is. Returns the seat that must act and the riders it may move, or round_complete when every rider has acted.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleNextTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "Enumerate every legal move for a player this turn",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player": map[string]interface{}{
					"type":        "integer",
					"description": "Seat number of the player (0-based)",
				},
			},
			Required: []string{"session_id", "player"},
		},
	}, c.handleLegalMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_move",
		Description: "Execute one move for a rider - requires intent explanation",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"Pull", "Attack", "Draft", "TeamPull", "TeamDraft", "TeamCar"},
					"description": "Action to perform",
				},
				"player": map[string]interface{}{
					"type":        "integer",
					"description": "Seat number of the acting player (0-based)",
				},
				"rider": map[string]interface{}{
					"type":        "integer",
					"description": "Rider index on the team: 0=Rouleur, 1=Sprinter, 2=Climber",
				},
				"card_indices": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Hand indices of the cards to play (empty for Draft and TeamCar)",
				},
				"drafters": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Rider indices of teammates pulled along by TeamPull or TeamDraft",
				},
				"discard": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"Energy", "Rouleur", "Sprinter", "Climber"},
					"description": "Card kind to discard when using the team car",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "action", "player", "rider"},
		},
	}, c.handlePlayMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available match configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMatchState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var snapshot engine.Snapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &snapshot)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSnapshot(&snapshot)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleStartRound(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var round service.RoundInfo
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/round", sessionID), nil, &round)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !round.Started {
		result := "Round not started: the match is over"
		if round.GameOverReason != "" {
			result += fmt.Sprintf(" (%s)", round.GameOverReason)
		}
		return mcp.NewToolResultText(result), nil
	}

	result := fmt.Sprintf("Round %d started\nEl Patron: seat %d\n", round.Round, round.ElPatron)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleNextTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var turn service.TurnInfo
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/turn", sessionID), nil, &turn)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if turn.RoundComplete {
		return mcp.NewToolResultText("Round complete: every rider has acted. Use start_round to open the next round."), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Turn: seat %d (%s)\nEligible riders:\n", turn.Player, turn.PlayerName))
	for _, r := range turn.Riders {
		b.WriteString(fmt.Sprintf("- %s %s at field %d\n", r.Rider, r.Kind, r.Position))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player := 0
	if v, ok := args["player"].(float64); ok {
		player = int(v)
	}

	var response struct {
		Player int           `json:"player"`
		Count  int           `json:"count"`
		Moves  []engine.Move `json:"moves"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/moves?player=%d", sessionID, player), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Legal moves for seat %d (%d):\n\n", response.Player, response.Count))
	for i, mv := range response.Moves {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, formatMove(mv)))
	}
	if response.Count == 0 {
		b.WriteString("(no legal moves: this seat's riders have all acted or are out of cards)\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handlePlayMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	action, _ := args["action"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	player := 0
	if v, ok := args["player"].(float64); ok {
		player = int(v)
	}
	rider := 0
	if v, ok := args["rider"].(float64); ok {
		rider = int(v)
	}

	move := engine.Move{
		Action: engine.ActionType(action),
		Rider:  engine.RiderRef{Player: player, Rider: rider},
	}

	if raw, ok := args["card_indices"].([]interface{}); ok {
		for _, v := range raw {
			if idx, ok := v.(float64); ok {
				move.CardIndices = append(move.CardIndices, int(idx))
			}
		}
	}
	if raw, ok := args["drafters"].([]interface{}); ok {
		for _, v := range raw {
			if idx, ok := v.(float64); ok {
				move.Drafters = append(move.Drafters, engine.RiderRef{Player: player, Rider: int(idx)})
			}
		}
	}
	if discard, ok := args["discard"].(string); ok && discard != "" {
		move.Discard = engine.CardKind(discard)
	}

	var outcome service.MoveOutcome
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), move, &outcome)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveOutcome(&outcome)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Players: %d, Track tiles: %d\n\n",
			config.ConfigID, config.Description, config.NumPlayers, config.TrackTiles)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🚴 Chasse Patate - Complete Instructions

GAME OBJECTIVE:
Race your team of three riders along the track and score more points than
every other team. Points are awarded at sprint lines and at the finish.

YOUR TEAM:
• Rider 0 - Rouleur: all-round engine, struggles on long climbs (max 4 climb fields per move)
• Rider 1 - Sprinter: fast on the flat, weak in the mountains (max 3 climb fields per move)
• Rider 2 - Climber: at home in the mountains, clumsy on cobblestones (max 3 cobble fields per move)

THE CARDS:
• Energy: wildcard, playable on any rider
• Rouleur / Sprinter / Climber: specialist cards, only playable on the matching rider
Each card carries two value rows: a pull row and an attack row. The row that
applies depends on the action, and the value within the row depends on the
terrain under the rider.

ACTIONS (one per rider per round):
• Pull: play 1-2 cards, move the sum of their pull values
• Attack: play exactly 3 cards, move the sum of their attack values
• Draft: play no cards and latch onto the move just executed, matching its
  movement. Only legal right after a Pull, TeamPull, Draft or TeamDraft by a
  rider on the same field.
• TeamPull: a Pull that tows teammates starting on the same field
• TeamDraft: a Draft that tows teammates starting on the same field
• TeamCar: discard one card, draw one card, rider does not move. The escape
  hatch when a rider has no playable cards.

TURN ORDER:
• Rounds are opened with start_round. Each round every unfinished rider acts
  exactly once.
• Within a round the rider furthest along the track acts first. Position ties
  go to the seat closest to El Patron in rotation order.
• El Patron (the round leader) advances one seat each round from round 2 on.
• Use next_turn to learn which seat must act and with which riders.

TERRAIN:
• flat: baseline speed for everyone
• cobblestone: punishes the Climber
• climb: punishes the Sprinter and Rouleur, rewards the Climber
• descent: fast for everyone
• sprint / finish: scoring lines at tile boundaries

SCORING:
• Crossing a sprint or finish line awards points by order of arrival: the
  first rider over scores most, later riders score less.
• Checkpoints every 10 fields let the crossing rider draw fresh cards.

MATCH END:
• The match ends when 5 riders have finished, when one team has fully
  finished, or when the deck and every hand run dry.
• Final standings come from total points, not finishing order.

TOOL WORKFLOW:
1. create_session (pick a config with list_configs)
2. start_round
3. next_turn to learn who acts
4. legal_moves for that seat
5. play_move with your chosen action and an intent explanation
6. Repeat 3-5 until the round completes, then back to start_round
7. match_state at any time for the full picture

STRATEGY HINTS:
• Attacks are expensive (3 cards) but cannot be drafted off. Use them to break away.
• Drafting is free movement: keep riders grouped so they can latch onto pulls.
• Do not burn the Climber's cards on the flat; the climbs are where they pay.
• Watch the deck size. When cards run out, stuck riders end the match.

Good luck in the chasse patate! 🚴💨`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatSnapshot(session.Snapshot))
}

func formatSnapshot(s *engine.Snapshot) string {
	if s == nil {
		return "No match state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Round: %d | El Patron: seat %d | Track: %d fields | Deck: %d | Discard: %d\n\n",
		s.Round, s.ElPatron, s.TrackLength, s.DeckSize, s.DiscardSize))

	for _, p := range s.Players {
		result.WriteString(fmt.Sprintf("Seat %d (%s) - %d pts, hand %d (E:%d R:%d S:%d C:%d)\n",
			p.ID, p.Name, p.Points, p.Hand.Total,
			p.Hand.Energy, p.Hand.Rouleur, p.Hand.Sprinter, p.Hand.Climber))
		for i, r := range p.Riders {
			status := string(r.Terrain)
			if r.Finished {
				status = "FINISHED"
			}
			result.WriteString(fmt.Sprintf("  R%d %-8s field %3d (%s)\n", i, r.Kind, r.Position, status))
		}
	}

	if s.LastMove != nil {
		result.WriteString(fmt.Sprintf("\nLast move: %s by %s from field %d, movement %d\n",
			s.LastMove.Action, s.LastMove.Rider, s.LastMove.OldPosition, s.LastMove.Movement))
	}

	if len(s.Standings) > 0 {
		result.WriteString("\nStandings: ")
		for i, seat := range s.Standings {
			if i > 0 {
				result.WriteString(", ")
			}
			result.WriteString(fmt.Sprintf("%d. seat %d", i+1, seat))
		}
		result.WriteString("\n")
	}

	if s.GameOver {
		result.WriteString(fmt.Sprintf("\n🏁 MATCH OVER (%s)", s.GameOverReason))
	}

	return result.String()
}

func formatMove(mv engine.Move) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", mv.Action, mv.Rider))
	if len(mv.CardIndices) > 0 {
		b.WriteString(fmt.Sprintf(" cards=%v", mv.CardIndices))
	}
	if len(mv.Drafters) > 0 {
		refs := make([]string, len(mv.Drafters))
		for i, d := range mv.Drafters {
			refs[i] = d.String()
		}
		b.WriteString(fmt.Sprintf(" towing=%s", strings.Join(refs, ",")))
	}
	if mv.Discard != "" {
		b.WriteString(fmt.Sprintf(" discard=%s", mv.Discard))
	}
	return b.String()
}

func formatMoveOutcome(outcome *service.MoveOutcome) string {
	var b strings.Builder

	res := outcome.Result
	if res != nil {
		b.WriteString(fmt.Sprintf("✓ %s by %s (%s)\n", res.Action, res.Rider, res.RiderKind))
		b.WriteString(fmt.Sprintf("Moved: field %d to %d (%d fields)\n", res.OldPosition, res.NewPosition, res.Movement))
		if len(res.CardsPlayed) > 0 {
			kinds := make([]string, len(res.CardsPlayed))
			for i, k := range res.CardsPlayed {
				kinds[i] = string(k)
			}
			b.WriteString(fmt.Sprintf("Cards played: %s\n", strings.Join(kinds, ", ")))
		}
		if res.PointsEarned > 0 {
			b.WriteString(fmt.Sprintf("Points earned: %d\n", res.PointsEarned))
		}
		if len(res.CheckpointsReached) > 0 {
			b.WriteString(fmt.Sprintf("Checkpoints crossed: %v\n", res.CheckpointsReached))
		}
		if len(res.CardsDrawn) > 0 {
			kinds := make([]string, len(res.CardsDrawn))
			for i, k := range res.CardsDrawn {
				kinds[i] = string(k)
			}
			b.WriteString(fmt.Sprintf("Cards drawn: %s\n", strings.Join(kinds, ", ")))
		}
		if res.Discarded != "" {
			b.WriteString(fmt.Sprintf("Discarded: %s\n", res.Discarded))
		}
		for _, d := range res.Drafters {
			line := fmt.Sprintf("Towed: %s (%s) field %d to %d", d.Rider, d.RiderKind, d.OldPosition, d.NewPosition)
			if d.PointsEarned > 0 {
				line += fmt.Sprintf(", %d pts", d.PointsEarned)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(formatSnapshot(outcome.Snapshot))
	return b.String()
}
