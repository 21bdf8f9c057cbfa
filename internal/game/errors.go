package game

import "errors"

// All rejections are recoverable: they are reported to the acting player only
// and happen before any mutation, so a failed action leaves the room as it was.
var (
	ErrNotYourTurn          = errors.New("not your turn")
	ErrCardsNotHeld         = errors.New("cards not in hand")
	ErrDeclaredRankMismatch = errors.New("declared rank must match the open rank")
	ErrNoPendingPlay        = errors.New("nothing to challenge")
	ErrSelfChallenge        = errors.New("cannot challenge your own play")
	ErrNotInRoom            = errors.New("player not in room")
)
