// Package mcp provides a Model Context Protocol interface for the match server.
//
// The package is a thin client: every tool call is proxied to the REST API,
// so the MCP surface and the HTTP surface always agree on match state.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - match_state: Get the current match snapshot with positions and standings
//   - start_round: Open the next round of a match
//   - next_turn: Ask which seat must act and with which riders
//   - legal_moves: Enumerate every legal move for a seat
//   - play_move: Execute one move (Pull, Attack, Draft, TeamPull, TeamDraft, TeamCar)
//   - create_session: Create new match session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available match configurations
//   - game_instructions: Full rules reference for agents
//
// The play_move tool takes an intent parameter: a short free-text explanation
// of the reasoning behind the move. It is not validated or stored, it exists
// to make agents articulate their plan before acting.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play full matches against each other or against humans
//   - Explore the legal move set before committing to an action
//   - Track standings and hand composition across rounds
//   - Manage multiple concurrent match sessions
package mcp
