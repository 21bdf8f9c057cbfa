package room

// Broadcaster fans events out to a room's connected participants.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
	SendTo(roomCode string, playerID string, action string, data interface{})
}
