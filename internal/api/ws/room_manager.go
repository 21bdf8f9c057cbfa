package ws

import "github.com/Dadwal-Aryan/Bluff-Backend/internal/deck"

// RoomManager is what the hub needs from the room registry: every inbound
// action dispatches through it.
type RoomManager interface {
	Join(roomCode, playerID, name string)
	Leave(roomCode, playerID string)
	SetName(roomCode, playerID, name string) error
	PlayCards(roomCode, playerID string, cards []deck.Card, declared deck.Rank) error
	SkipTurn(roomCode, playerID string) error
	CallBluff(roomCode, playerID string) error
	NewGame(roomCode string) error
}
