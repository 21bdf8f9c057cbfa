package game

import "github.com/Dadwal-Aryan/Bluff-Backend/internal/deck"

type EventType string

const (
	EventState       EventType = "state"
	EventHand        EventType = "hand"
	EventCardsPlayed EventType = "cards_played"
	EventReveal      EventType = "reveal"
	EventInfo        EventType = "info"
	EventGameOver    EventType = "game_over"
)

// Event is one outbound notification produced by a transition. To is empty
// for room-wide broadcasts and holds a player ID for private messages
// (hand contents, rejections are handled at the gateway).
type Event struct {
	Type EventType   `json:"type"`
	To   string      `json:"-"`
	Data interface{} `json:"data"`
}

// PlayerView is the public slice of a player: hand size, never hand contents.
type PlayerView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CardCount int    `json:"cardCount"`
}

// Snapshot is the room-wide state broadcast after every transition.
type Snapshot struct {
	Phase        string       `json:"phase"`
	Players      []PlayerView `json:"players"`
	TurnPlayerID string       `json:"turnPlayerId,omitempty"`
	DeclaredRank deck.Rank    `json:"declaredRank,omitempty"`
	PileSize     int          `json:"pileSize"`
	Winner       string       `json:"winner,omitempty"`
}

// HandPayload carries one player's private hand contents.
type HandPayload struct {
	Cards []deck.Card `json:"cards"`
}

// PlayedPayload announces a face-down play: how many cards and the claim,
// never the card identities.
type PlayedPayload struct {
	PlayerID     string    `json:"playerId"`
	PlayerName   string    `json:"playerName"`
	CardCount    int       `json:"cardCount"`
	DeclaredRank deck.Rank `json:"declaredRank"`
}

// RevealPayload shows the challenged cards face-up after a call. PileSize is
// the size of the whole pile at stake, which the losing side absorbs.
type RevealPayload struct {
	PlayerID     string      `json:"playerId"`
	Cards        []deck.Card `json:"cards"`
	DeclaredRank deck.Rank   `json:"declaredRank"`
	Bluff        bool        `json:"bluff"`
	PileSize     int         `json:"pileSize"`
}

// InfoPayload is free-text round narration.
type InfoPayload struct {
	Message string `json:"message"`
}

// GameOverPayload names the winner.
type GameOverPayload struct {
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
}

func broadcast(t EventType, data interface{}) Event {
	return Event{Type: t, Data: data}
}

func private(to string, t EventType, data interface{}) Event {
	return Event{Type: t, To: to, Data: data}
}
