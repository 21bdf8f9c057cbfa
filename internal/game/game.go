package game

import (
	"fmt"
	"math/rand"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/deck"
)

// Phase is the explicit match state. Illegal actions are rejected by phase
// and turn checks before anything is mutated.
type Phase int

const (
	WaitingForPlayers Phase = iota
	AwaitingPlay
	AwaitingResponse
	GameOver
)

func (p Phase) String() string {
	switch p {
	case WaitingForPlayers:
		return "waiting_for_players"
	case AwaitingPlay:
		return "awaiting_play"
	case AwaitingResponse:
		return "awaiting_response"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Rules is the per-room variant configuration.
type Rules struct {
	// MinPlayers is the player count that triggers the first deal (2 or 3).
	MinPlayers int
	// HandSize is the number of cards dealt to each player. Zero means split
	// the deck evenly and drop the remainder; the 3-player variant uses 17
	// so all 51 usable cards divide evenly.
	HandSize int
}

// Player is a participant: an identity bound to a connection plus a
// mutable display name.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PendingPlay is the declaration currently open to a challenge: who played,
// the exact face-down cards, and the rank they claimed.
type PendingPlay struct {
	PlayerID string
	Cards    []deck.Card
	Rank     deck.Rank
}

// Game is the authoritative match state for one room. It is pure with
// respect to transport: every transition validates, mutates, and returns
// the notifications to emit. Callers serialize access (the room registry
// holds a per-room lock).
type Game struct {
	rules Rules
	rng   *rand.Rand

	Phase   Phase
	Players []Player
	Hands   map[string][]deck.Card
	Pile    []deck.Card
	TurnIdx int
	Pending *PendingPlay
	Winner  *Player

	skipped      map[string]bool
	firstSkipper string
}

func New(rules Rules, rng *rand.Rand) *Game {
	return &Game{
		rules:   rules,
		rng:     rng,
		Phase:   WaitingForPlayers,
		Hands:   map[string][]deck.Card{},
		skipped: map[string]bool{},
	}
}

func (g *Game) Rules() Rules { return g.rules }

// Dealt reports whether a match has been dealt (hands exist).
func (g *Game) Dealt() bool { return len(g.Hands) > 0 }

func (g *Game) playerIndex(id string) int {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return i
		}
	}
	return -1
}

func (g *Game) playerName(id string) string {
	if i := g.playerIndex(id); i >= 0 {
		return g.Players[i].Name
	}
	return id
}

// AddPlayer appends a player in join order. Duplicate identities are a no-op
// so reconnect joins never duplicate a seat or re-deal a running match.
func (g *Game) AddPlayer(id, name string) bool {
	if g.playerIndex(id) >= 0 {
		return false
	}
	if name == "" {
		name = fmt.Sprintf("Player #%d", len(g.Players)+1)
	}
	g.Players = append(g.Players, Player{ID: id, Name: name})
	return true
}

// SetName updates a display name. Metadata only, no game-state change.
func (g *Game) SetName(id, name string) bool {
	i := g.playerIndex(id)
	if i < 0 || name == "" {
		return false
	}
	g.Players[i].Name = name
	return true
}

// Ready reports whether the room has reached the configured player count
// and no match has been dealt yet.
func (g *Game) Ready() bool {
	return len(g.Players) >= g.rules.MinPlayers && !g.Dealt()
}

// Deal shuffles a fresh deck, splits it into contiguous chunks, clears all
// round state and hands the opening turn to a uniformly random player.
// Also used for rematches, where it re-deals over the finished state.
func (g *Game) Deal() []Event {
	cards := deck.Shuffled(g.rng)

	size := g.rules.HandSize
	if size <= 0 || size*len(g.Players) > len(cards) {
		size = len(cards) / len(g.Players)
	}

	g.Hands = map[string][]deck.Card{}
	for i, p := range g.Players {
		g.Hands[p.ID] = append([]deck.Card(nil), cards[i*size:(i+1)*size]...)
	}
	g.Pile = nil
	g.Pending = nil
	g.Winner = nil
	g.clearSkips()
	g.TurnIdx = g.rng.Intn(len(g.Players))
	g.Phase = AwaitingPlay

	events := []Event{
		broadcast(EventInfo, InfoPayload{Message: fmt.Sprintf("Cards dealt, %s leads", g.Players[g.TurnIdx].Name)}),
		g.stateEvent(),
	}
	return append(events, g.handEvents()...)
}

// PlayCards discards cards face-down under a rank declaration. The turn
// always advances, even off an emptied hand: the win is deferred until the
// opponent passes on (or loses) a challenge.
func (g *Game) PlayCards(playerID string, cards []deck.Card, declared deck.Rank) ([]Event, error) {
	if g.Phase != AwaitingPlay && g.Phase != AwaitingResponse {
		return nil, ErrNotYourTurn
	}
	if g.Players[g.TurnIdx].ID != playerID {
		return nil, ErrNotYourTurn
	}
	if len(cards) == 0 || !g.holdsAll(playerID, cards) {
		return nil, ErrCardsNotHeld
	}
	if g.Pending != nil && g.Pending.Rank != "" && declared != g.Pending.Rank {
		return nil, ErrDeclaredRankMismatch
	}
	if !deck.ValidRank(declared) {
		return nil, ErrDeclaredRankMismatch
	}

	g.removeFromHand(playerID, cards)
	g.Pile = append(g.Pile, cards...)
	g.Pending = &PendingPlay{PlayerID: playerID, Cards: append([]deck.Card(nil), cards...), Rank: declared}
	g.clearSkips()
	g.TurnIdx = (g.TurnIdx + 1) % len(g.Players)
	g.Phase = AwaitingResponse

	events := []Event{
		broadcast(EventCardsPlayed, PlayedPayload{
			PlayerID:     playerID,
			PlayerName:   g.playerName(playerID),
			CardCount:    len(cards),
			DeclaredRank: declared,
		}),
		g.stateEvent(),
		private(playerID, EventHand, HandPayload{Cards: g.Hands[playerID]}),
	}
	return events, nil
}

// SkipTurn passes without playing or challenging. Skipping past an
// empty-handed declarer concedes their win; a full cycle of skips abandons
// the round and hands the lead back to the first skipper.
func (g *Game) SkipTurn(playerID string) ([]Event, error) {
	if g.Phase != AwaitingPlay && g.Phase != AwaitingResponse {
		return nil, ErrNotYourTurn
	}
	if g.Players[g.TurnIdx].ID != playerID {
		return nil, ErrNotYourTurn
	}

	if g.Pending != nil && len(g.Hands[g.Pending.PlayerID]) == 0 {
		return g.finish(g.Pending.PlayerID), nil
	}

	if !g.skipped[playerID] {
		g.skipped[playerID] = true
		if g.firstSkipper == "" {
			g.firstSkipper = playerID
		}
	}

	if len(g.skipped) == len(g.Players) {
		lead := g.playerIndex(g.firstSkipper)
		g.Pile = nil
		g.Pending = nil
		g.clearSkips()
		g.TurnIdx = lead
		g.Phase = AwaitingPlay
		return []Event{
			broadcast(EventInfo, InfoPayload{Message: fmt.Sprintf("Everyone skipped, pile cleared, %s leads", g.Players[lead].Name)}),
			g.stateEvent(),
		}, nil
	}

	g.TurnIdx = (g.TurnIdx + 1) % len(g.Players)
	return []Event{
		broadcast(EventInfo, InfoPayload{Message: fmt.Sprintf("%s skipped", g.playerName(playerID))}),
		g.stateEvent(),
	}, nil
}

// CallBluff challenges the open declaration. A lie sends the whole pile to
// the declarer and the turn to the challenger; a truthful play sends the
// pile to the challenger, the turn back to the declarer, and confirms the
// declarer's win if their hand is empty.
func (g *Game) CallBluff(playerID string) ([]Event, error) {
	if g.playerIndex(playerID) < 0 {
		return nil, ErrNotInRoom
	}
	if g.Pending == nil {
		return nil, ErrNoPendingPlay
	}
	if g.Pending.PlayerID == playerID {
		return nil, ErrSelfChallenge
	}

	pending := g.Pending
	bluff := false
	for _, c := range pending.Cards {
		if c.Rank != pending.Rank {
			bluff = true
			break
		}
	}

	events := []Event{broadcast(EventReveal, RevealPayload{
		PlayerID:     pending.PlayerID,
		Cards:        pending.Cards,
		DeclaredRank: pending.Rank,
		Bluff:        bluff,
		PileSize:     len(g.Pile),
	})}

	var loser, leader string
	if bluff {
		loser, leader = pending.PlayerID, playerID
		events = append(events, broadcast(EventInfo, InfoPayload{
			Message: fmt.Sprintf("%s was bluffing and picks up the pile", g.playerName(loser)),
		}))
	} else {
		loser, leader = playerID, pending.PlayerID
		events = append(events, broadcast(EventInfo, InfoPayload{
			Message: fmt.Sprintf("%s told the truth, %s picks up the pile", g.playerName(pending.PlayerID), g.playerName(loser)),
		}))
	}

	g.Hands[loser] = append(g.Hands[loser], g.Pile...)
	g.Pile = nil
	g.Pending = nil
	g.clearSkips()

	if !bluff && len(g.Hands[pending.PlayerID]) == 0 {
		events = append(events, private(loser, EventHand, HandPayload{Cards: g.Hands[loser]}))
		return append(events, g.finish(pending.PlayerID)...), nil
	}

	g.TurnIdx = g.playerIndex(leader)
	g.Phase = AwaitingPlay
	events = append(events,
		g.stateEvent(),
		private(loser, EventHand, HandPayload{Cards: g.Hands[loser]}),
	)
	return events, nil
}

// RemovePlayer drops a player and their hand. An open round cannot survive
// the loss of its cards, so pile and pending play are voided and the round
// restarts clean with the remaining players.
func (g *Game) RemovePlayer(id string) ([]Event, bool) {
	i := g.playerIndex(id)
	if i < 0 {
		return nil, false
	}
	name := g.Players[i].Name
	g.Players = append(g.Players[:i], g.Players[i+1:]...)
	delete(g.Hands, id)
	if len(g.Players) == 0 {
		return nil, true
	}

	events := []Event{broadcast(EventInfo, InfoPayload{Message: fmt.Sprintf("%s left the room", name)})}
	// The skip cycle is against the old membership either way.
	g.clearSkips()
	if g.Pending != nil || len(g.Pile) > 0 {
		g.Pile = nil
		g.Pending = nil
		if g.Phase == AwaitingResponse {
			g.Phase = AwaitingPlay
		}
		events = append(events, broadcast(EventInfo, InfoPayload{Message: "Round voided, pile cleared"}))
	}
	if i < g.TurnIdx {
		g.TurnIdx--
	}
	g.TurnIdx %= len(g.Players)

	return append(events, g.stateEvent()), true
}

func (g *Game) finish(winnerID string) []Event {
	// Copy, not a pointer into Players: removals shift that slice.
	winner := g.Players[g.playerIndex(winnerID)]
	g.Winner = &winner
	g.Phase = GameOver
	g.Pile = nil
	g.Pending = nil
	g.clearSkips()
	return []Event{
		broadcast(EventGameOver, GameOverPayload{WinnerID: g.Winner.ID, WinnerName: g.Winner.Name}),
		g.stateEvent(),
	}
}

func (g *Game) clearSkips() {
	g.skipped = map[string]bool{}
	g.firstSkipper = ""
}

func (g *Game) holdsAll(playerID string, cards []deck.Card) bool {
	held := map[deck.Card]int{}
	for _, c := range g.Hands[playerID] {
		held[c]++
	}
	for _, c := range cards {
		if held[c] == 0 {
			return false
		}
		held[c]--
	}
	return true
}

func (g *Game) removeFromHand(playerID string, cards []deck.Card) {
	hand := g.Hands[playerID]
	for _, c := range cards {
		for i, h := range hand {
			if h == c {
				hand = append(hand[:i], hand[i+1:]...)
				break
			}
		}
	}
	g.Hands[playerID] = hand
}

// Snapshot is the public room state: hand sizes only, no card identities.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:    g.Phase.String(),
		Players:  make([]PlayerView, 0, len(g.Players)),
		PileSize: len(g.Pile),
	}
	for _, p := range g.Players {
		s.Players = append(s.Players, PlayerView{ID: p.ID, Name: p.Name, CardCount: len(g.Hands[p.ID])})
	}
	if g.Phase == AwaitingPlay || g.Phase == AwaitingResponse {
		s.TurnPlayerID = g.Players[g.TurnIdx].ID
	}
	if g.Pending != nil {
		s.DeclaredRank = g.Pending.Rank
	}
	if g.Winner != nil {
		s.Winner = g.Winner.Name
	}
	return s
}

func (g *Game) stateEvent() Event {
	return broadcast(EventState, g.Snapshot())
}

func (g *Game) handEvents() []Event {
	events := make([]Event, 0, len(g.Players))
	for _, p := range g.Players {
		events = append(events, private(p.ID, EventHand, HandPayload{Cards: g.Hands[p.ID]}))
	}
	return events
}
