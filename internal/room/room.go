package room

import (
	"errors"
	"sync"
	"time"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/game"
)

var ErrRoomNotFound = errors.New("room not found")

// Room is one match instance. Its mutex serializes all actions on the room,
// so a transition plus its broadcasts happens as one uninterrupted step.
type Room struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`

	mu   sync.Mutex
	Game *game.Game `json:"-"`
}

// Snapshot reads the public room state under the room lock.
func (r *Room) Snapshot() game.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Game.Snapshot()
}

// Store resolves room codes to live rooms.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
}
