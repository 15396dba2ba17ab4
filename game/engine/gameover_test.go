package engine

import "testing"

func TestGameOverFiveRidersFinished(t *testing.T) {
	m := newTestMatch(t, 3)
	finish := m.FinishLine()
	m.Players[0].Riders[0].Position = finish
	m.Players[0].Riders[1].Position = finish
	m.Players[1].Riders[0].Position = finish
	m.Players[1].Riders[1].Position = finish
	m.Players[2].Riders[0].Position = finish

	if !m.CheckGameOver() {
		t.Fatal("expected game over with five finished riders")
	}
	if m.GameOverReason != ReasonRidersFinished {
		t.Errorf("reason = %q, want %q", m.GameOverReason, ReasonRidersFinished)
	}
}

func TestGameOverTeamFullyFinished(t *testing.T) {
	m := newTestMatch(t, 2)
	finish := m.FinishLine()
	for i := range m.Players[0].Riders {
		m.Players[0].Riders[i].Position = finish
	}

	if !m.CheckGameOver() {
		t.Fatal("expected game over with a fully finished team")
	}
	if m.GameOverReason != ReasonTeamFinished {
		t.Errorf("reason = %q, want %q", m.GameOverReason, ReasonTeamFinished)
	}
}

func TestGameOverOutOfCards(t *testing.T) {
	m := newTestMatch(t, 2)
	m.Deck = nil
	m.DiscardPile = nil
	for _, p := range m.Players {
		p.Hand = nil
	}

	if !m.CheckGameOver() {
		t.Fatal("expected game over with no cards anywhere")
	}
	if m.GameOverReason != ReasonOutOfCards {
		t.Errorf("reason = %q, want %q", m.GameOverReason, ReasonOutOfCards)
	}
}

func TestNotOverWhileDiscardHoldsCards(t *testing.T) {
	m := newTestMatch(t, 2)
	m.DiscardPile = append(m.DiscardPile, m.Deck...)
	m.Deck = nil
	for _, p := range m.Players {
		p.Hand = nil
	}

	if m.CheckGameOver() {
		t.Errorf("game ended with a reshuffleable discard pile: %s", m.GameOverReason)
	}
}

func TestGameOverLatches(t *testing.T) {
	m := newTestMatch(t, 2)
	finish := m.FinishLine()
	for i := range m.Players[0].Riders {
		m.Players[0].Riders[i].Position = finish
	}
	m.CheckGameOver()
	reason := m.GameOverReason

	// A later, different condition must not rewrite the result.
	m.Deck = nil
	m.DiscardPile = nil
	for _, p := range m.Players {
		p.Hand = nil
	}
	m.CheckGameOver()
	if m.GameOverReason != reason {
		t.Errorf("reason changed from %q to %q", reason, m.GameOverReason)
	}
}

func TestAbortAtRoundLimit(t *testing.T) {
	m := newTestMatch(t, 2)
	m.AbortAtRoundLimit()
	if !m.GameOver || m.GameOverReason != ReasonRoundLimit {
		t.Errorf("game over = %v reason = %q", m.GameOver, m.GameOverReason)
	}
}
