package http

import (
	"time"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/game"
)

// RoomResponse is the public REST view of a room: membership and round
// state, never anyone's hand contents.
type RoomResponse struct {
	Code      string        `json:"code"`
	CreatedAt time.Time     `json:"createdAt"`
	State     game.Snapshot `json:"state"`
}

// ConfigResponse exposes the variant settings a client needs before joining.
type ConfigResponse struct {
	MinPlayers int `json:"minPlayers"`
	HandSize   int `json:"handSize"`
}
