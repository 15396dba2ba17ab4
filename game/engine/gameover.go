package engine

// Game over reasons, stored on MatchState.GameOverReason.
const (
	ReasonRidersFinished = "5_riders_finished"
	ReasonTeamFinished   = "team_fully_finished"
	ReasonOutOfCards     = "players_out_of_cards"
	ReasonPlayerStuck    = "player_stuck"
	ReasonRoundLimit     = "round_limit_reached"
)

// RidersToFinish is how many riders across all teams must finish to end the
// race.
const RidersToFinish = 5

// CheckGameOver evaluates the end conditions and latches the match into the
// game over state when one holds. Once over, the result never changes.
func (m *MatchState) CheckGameOver() bool {
	if m.GameOver {
		return true
	}
	if reason := m.gameOverReason(); reason != "" {
		m.GameOver = true
		m.GameOverReason = reason
	}
	return m.GameOver
}

func (m *MatchState) gameOverReason() string {
	finished := 0
	teamDone := false
	for _, p := range m.Players {
		done := true
		for i := range p.Riders {
			if m.Finished(&p.Riders[i]) {
				finished++
			} else {
				done = false
			}
		}
		if done {
			teamDone = true
		}
	}
	if finished >= RidersToFinish {
		return ReasonRidersFinished
	}
	if teamDone {
		return ReasonTeamFinished
	}
	if len(m.Deck) == 0 && len(m.DiscardPile) == 0 {
		empty := true
		for _, p := range m.Players {
			if len(p.Hand) > 0 {
				empty = false
				break
			}
		}
		if empty {
			return ReasonOutOfCards
		}
	}
	if m.playerStuck() {
		return ReasonPlayerStuck
	}
	return ""
}

// playerStuck reports whether any player advanced fewer than stuckMinFields
// over the last stuckWindow completed rounds.
func (m *MatchState) playerStuck() bool {
	if len(m.progress) <= stuckWindow {
		return false
	}
	latest := m.progress[len(m.progress)-1]
	baseline := m.progress[len(m.progress)-1-stuckWindow]
	for i := range latest {
		if latest[i]-baseline[i] < stuckMinFields {
			return true
		}
	}
	return false
}

// AbortAtRoundLimit force-ends a match that exceeded an external round cap.
func (m *MatchState) AbortAtRoundLimit() {
	if m.GameOver {
		return
	}
	m.GameOver = true
	m.GameOverReason = ReasonRoundLimit
}
