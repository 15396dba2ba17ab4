// Package agents implements the AI strategies used by the simulator.
//
// Every strategy consumes the same contract: the current match state and the
// acting seat's legal moves go in, one chosen move comes out. Strategies rank
// candidates with the engine's move preview and never mutate match state.
//
// Available strategies:
//   - random: uniform choice, seedable for reproducible batches
//   - greedy: maximum movement this turn
//   - leadrider: push the furthest rider, ignore the rest of the team
//   - balanced: keep the team compact, favor team actions
//   - sprinthunter: chase sprint and finish points on the path
//   - adaptive: sprinthunter while behind on points, balanced while ahead
//
// Use New to build a strategy by name:
//
//	agent, err := agents.New("greedy", seed)
//	move, err := agent.ChooseMove(match, playerID, moves)
package agents
