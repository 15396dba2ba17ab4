// Package websocket provides WebSocket transport for Chasse Patate matches.
//
// The websocket package implements:
//   - Real-time match update streaming
//   - Session-aware WebSocket connections
//   - Automatic broadcasting after rounds and moves
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded with the following structure:
//   - Outgoing: {session_id: "abc1", event: "state_update", update: {...}}
//
// The update payload is either a match snapshot (after a round opens) or a
// move outcome containing the move result plus the refreshed snapshot.
// Incoming client messages are not processed; connections are one-way
// spectator streams kept alive by ping/pong.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection.
// Updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
//
// Connection Lifecycle:
//
// 1. Client connects with session ID
// 2. Connection registered with hub
// 3. Client receives an update after every round start and executed move
// 4. Disconnection triggers cleanup
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive updates
// simultaneously without blocking each other.
package websocket
