package room

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/config"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/deck"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/game"
)

// Manager is the room registry: it creates rooms lazily on first join,
// dispatches player actions into the right room's state machine and fans the
// resulting events out through the Broadcaster. Rooms are destroyed when the
// last occupant leaves.
type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
	log   *zap.SugaredLogger
}

func NewManager(s Store, cfg config.Config, log *zap.SugaredLogger) *Manager {
	return &Manager{store: s, cfg: cfg, log: log}
}

// SetBroadcaster wires the hub in after construction; the hub needs the
// manager first, so the dependency is closed here.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.hub = b
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) getOrCreate(code string) *Room {
	if r, ok := m.store.GetRoom(code); ok {
		return r
	}
	r := &Room{
		Code:      code,
		CreatedAt: time.Now(),
		Game: game.New(game.Rules{
			MinPlayers: m.cfg.MinPlayers,
			HandSize:   m.cfg.HandSize,
		}, rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	m.store.SaveRoom(r)
	m.log.Infow("room created", "room", code)
	return r
}

// Join adds a player to a room, creating the room if needed. Once the room
// reaches the configured player count and no match has been dealt yet, the
// match starts. Duplicate joins from the same identity are no-ops.
func (m *Manager) Join(roomCode, playerID, name string) {
	r := m.getOrCreate(roomCode)
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Game.AddPlayer(playerID, name) {
		m.log.Infow("player joined", "room", roomCode, "player", playerID)
	}
	m.hub.Broadcast(roomCode, string(game.EventState), r.Game.Snapshot())
	m.hub.SendTo(roomCode, playerID, string(game.EventHand), game.HandPayload{Cards: r.Game.Hands[playerID]})

	if r.Game.Ready() {
		m.fanOut(roomCode, r.Game.Deal())
		m.log.Infow("match dealt", "room", roomCode, "players", len(r.Game.Players))
	}
}

// Leave removes a player; the transport calls this on connection loss. The
// room is torn down once nobody is left in it.
func (m *Manager) Leave(roomCode, playerID string) {
	r, ok := m.store.GetRoom(roomCode)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	events, removed := r.Game.RemovePlayer(playerID)
	if !removed {
		return
	}
	if len(r.Game.Players) == 0 {
		m.store.DeleteRoom(roomCode)
		m.log.Infow("room destroyed", "room", roomCode)
		return
	}
	m.fanOut(roomCode, events)
}

// SetName updates a display name and re-broadcasts the membership snapshot.
func (m *Manager) SetName(roomCode, playerID, name string) error {
	r, ok := m.store.GetRoom(roomCode)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Game.SetName(playerID, name) {
		m.hub.Broadcast(roomCode, string(game.EventState), r.Game.Snapshot())
	}
	return nil
}

func (m *Manager) PlayCards(roomCode, playerID string, cards []deck.Card, declared deck.Rank) error {
	return m.dispatch(roomCode, func(g *game.Game) ([]game.Event, error) {
		return g.PlayCards(playerID, cards, declared)
	})
}

func (m *Manager) SkipTurn(roomCode, playerID string) error {
	return m.dispatch(roomCode, func(g *game.Game) ([]game.Event, error) {
		return g.SkipTurn(playerID)
	})
}

func (m *Manager) CallBluff(roomCode, playerID string) error {
	return m.dispatch(roomCode, func(g *game.Game) ([]game.Event, error) {
		return g.CallBluff(playerID)
	})
}

// NewGame re-deals for a rematch. No player-count recheck: a room that is
// asked for a rematch already satisfied the threshold once.
func (m *Manager) NewGame(roomCode string) error {
	return m.dispatch(roomCode, func(g *game.Game) ([]game.Event, error) {
		return g.Deal(), nil
	})
}

// dispatch runs one transition under the room lock and fans out its events.
// A rejected action produces no events and the error travels back to the
// acting connection only.
func (m *Manager) dispatch(roomCode string, fn func(*game.Game) ([]game.Event, error)) error {
	r, ok := m.store.GetRoom(roomCode)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := fn(r.Game)
	if err != nil {
		return err
	}
	m.fanOut(roomCode, events)
	return nil
}

func (m *Manager) fanOut(roomCode string, events []game.Event) {
	for _, ev := range events {
		if ev.To == "" {
			m.hub.Broadcast(roomCode, string(ev.Type), ev.Data)
		} else {
			m.hub.SendTo(roomCode, ev.To, string(ev.Type), ev.Data)
		}
	}
}
