// Package api provides HTTP REST API handlers for Chasse Patate.
//
// The api package implements:
//   - RESTful endpoints for match operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (sort, order, limit params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Match Operations:
//   - GET /api/sessions/{id}/state - Current match snapshot
//   - POST /api/sessions/{id}/round - Open the next round
//   - POST /api/sessions/{id}/turn - Next player to act
//   - GET /api/sessions/{id}/moves?player=N - Legal moves for a seat
//   - POST /api/sessions/{id}/move - Execute a move
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a specific configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Moves are sent as POST with
// JSON body:
//
//	{
//	  "action": "Pull|Attack|Draft|TeamPull|TeamDraft|TeamCar",
//	  "rider": {"player": 0, "rider": 1},
//	  "card_indices": [0, 2],            // hand indices of cards to play
//	  "drafters": [{"player": 0, "rider": 2}], // for team actions
//	  "discard": "Energy"                // TeamCar discard preference
//	}
//
// A successful move returns the move result (movement, points, drafters,
// checkpoint draws) together with the refreshed match snapshot. The same
// payload is broadcast to WebSocket clients watching the session.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
