// Package service provides the business logic layer for Chasse Patate.
//
// The service package implements:
//   - Multi-session match management
//   - Round and turn orchestration
//   - Legal move enumeration and move execution
//   - Configuration management and loading
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level match
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages match configuration loading and
// validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the rules engine, providing session isolation, configuration management,
// and orchestration. Each session holds its own MatchState with independent
// deck, riders and scores; the service serializes access to it.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "standard")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drive a round
//	gameService.StartRound(ctx, sessionInfo.ID)
//	turn, _ := gameService.NextTurn(ctx, sessionInfo.ID)
//	moves, _ := gameService.LegalMoves(ctx, sessionInfo.ID, turn.Player)
//	outcome, _ := gameService.ExecuteMove(ctx, sessionInfo.ID, moves[0])
package service
