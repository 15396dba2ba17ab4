// Package engine implements the rules of Chasse Patate, a card driven team
// cycling race.
//
// The engine covers:
//   - Track assembly from 20 field tiles with sprint and finish scoring
//   - The 90 card deck, dealing, draws and the discard pile
//   - Round scheduling with the rotating El Patron lead seat
//   - Legal move enumeration and move execution for the six actions
//     (Pull, Attack, Draft, TeamPull, TeamDraft, TeamCar)
//   - Terrain speed limits applied field by field per rider specialty
//   - Arrival order scoring and checkpoint card draws
//   - The four game end conditions
//
// Core Types:
//
// MatchState is the authoritative state of one match, created from a
// MatchConfig. Move describes a player's declared action; ExecuteMove
// validates it against the full rules and applies it atomically, returning a
// MoveResult. Snapshot produces the serializable public view used by the
// transports and the simulator.
//
// Usage:
//
//	cfg := engine.DefaultMatchConfig()
//	match, err := engine.NewMatch(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	match.StartNewRound()
//	player, _ := match.NextTurn()
//	moves, _ := match.LegalMoves(player.ID)
//	result, err := match.ExecuteMove(moves[0])
//
// MatchState is not safe for concurrent use; the session layer serializes
// access per match.
package engine
