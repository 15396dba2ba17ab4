package engine

import "errors"

// Sentinel errors returned by match operations. Callers match them with
// errors.Is.
var (
	ErrInvalidTileID    = errors.New("invalid tile id")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrUnknownRider     = errors.New("unknown rider")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrCardNotPlayable  = errors.New("card not playable on rider")
	ErrNoDraftableMove  = errors.New("no draftable move to follow")
	ErrMalformedMove    = errors.New("malformed move")
	ErrGameOver         = errors.New("game is over")
	ErrCardConservation = errors.New("card conservation violated")
)
