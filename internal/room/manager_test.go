package room_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/config"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/deck"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/game"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/room"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/store"
)

// mockBroadcaster captures fan-out for assertions instead of a live hub.
type mockBroadcaster struct {
	broadcasts []capturedEvent
	privates   []capturedEvent
}

type capturedEvent struct {
	Room   string
	To     string
	Action string
	Data   interface{}
}

func (mb *mockBroadcaster) Broadcast(roomCode, action string, data interface{}) {
	mb.broadcasts = append(mb.broadcasts, capturedEvent{Room: roomCode, Action: action, Data: data})
}

func (mb *mockBroadcaster) SendTo(roomCode, playerID, action string, data interface{}) {
	mb.privates = append(mb.privates, capturedEvent{Room: roomCode, To: playerID, Action: action, Data: data})
}

func (mb *mockBroadcaster) lastBroadcast(action string) *capturedEvent {
	for i := len(mb.broadcasts) - 1; i >= 0; i-- {
		if mb.broadcasts[i].Action == action {
			return &mb.broadcasts[i]
		}
	}
	return nil
}

func setupManager(t *testing.T) (*room.Manager, *mockBroadcaster, room.Store) {
	t.Helper()
	mem := store.NewMemoryStore()
	mb := &mockBroadcaster{}
	m := room.NewManager(mem, config.Config{MinPlayers: 2}, zap.NewNop().Sugar())
	m.SetBroadcaster(mb)
	return m, mb, mem
}

func TestJoin_CreatesRoomAndDeals(t *testing.T) {
	m, mb, _ := setupManager(t)

	m.Join("ROOM1", "p1", "Alice")
	r, ok := m.Get("ROOM1")
	require.True(t, ok)
	assert.False(t, r.Game.Dealt())

	m.Join("ROOM1", "p2", "Bob")
	assert.True(t, r.Game.Dealt())
	assert.Len(t, r.Game.Hands["p1"], 26)
	assert.Len(t, r.Game.Hands["p2"], 26)

	// The deal broadcast a snapshot and sent each player their hand.
	require.NotNil(t, mb.lastBroadcast(string(game.EventState)))
	var handed int
	for _, ev := range mb.privates {
		if ev.Action == string(game.EventHand) {
			handed++
		}
	}
	assert.GreaterOrEqual(t, handed, 2)
}

func TestJoin_Idempotent(t *testing.T) {
	m, _, _ := setupManager(t)

	m.Join("ROOM1", "p1", "Alice")
	m.Join("ROOM1", "p1", "Alice")

	r, _ := m.Get("ROOM1")
	assert.Len(t, r.Game.Players, 1)
	assert.False(t, r.Game.Dealt())
}

func TestJoin_NoRedealOnLateJoin(t *testing.T) {
	m, _, _ := setupManager(t)
	m.Join("ROOM1", "p1", "Alice")
	m.Join("ROOM1", "p2", "Bob")

	r, _ := m.Get("ROOM1")
	before := r.Game.Hands["p1"]

	m.Join("ROOM1", "p3", "Carol")
	assert.Equal(t, before, r.Game.Hands["p1"], "a dealt match must not re-deal")
	assert.Empty(t, r.Game.Hands["p3"])
}

func TestLeave_DestroysEmptyRoom(t *testing.T) {
	m, _, mem := setupManager(t)
	m.Join("ROOM1", "p1", "Alice")

	m.Leave("ROOM1", "p1")
	_, ok := mem.GetRoom("ROOM1")
	assert.False(t, ok)
}

func TestLeave_KeepsRemainingPlayers(t *testing.T) {
	m, mb, _ := setupManager(t)
	m.Join("ROOM1", "p1", "Alice")
	m.Join("ROOM1", "p2", "Bob")

	m.Leave("ROOM1", "p1")

	r, ok := m.Get("ROOM1")
	require.True(t, ok)
	assert.Len(t, r.Game.Players, 1)
	assert.NotNil(t, mb.lastBroadcast(string(game.EventState)))

	// Unknown players and unknown rooms are no-ops.
	m.Leave("ROOM1", "ghost")
	m.Leave("NOWHERE", "p2")
}

func TestSetName(t *testing.T) {
	m, mb, _ := setupManager(t)
	m.Join("ROOM1", "p1", "")

	require.NoError(t, m.SetName("ROOM1", "p1", "Zee"))
	r, _ := m.Get("ROOM1")
	assert.Equal(t, "Zee", r.Game.Players[0].Name)

	state := mb.lastBroadcast(string(game.EventState))
	require.NotNil(t, state)
	snap := state.Data.(game.Snapshot)
	assert.Equal(t, "Zee", snap.Players[0].Name)

	assert.ErrorIs(t, m.SetName("NOWHERE", "p1", "Zee"), room.ErrRoomNotFound)
}

func TestDispatch_RejectionIsNotBroadcast(t *testing.T) {
	m, mb, _ := setupManager(t)
	m.Join("ROOM1", "p1", "Alice")
	m.Join("ROOM1", "p2", "Bob")
	r, _ := m.Get("ROOM1")

	waiting := r.Game.Players[(r.Game.TurnIdx+1)%2].ID
	seen := len(mb.broadcasts)

	err := m.PlayCards("ROOM1", waiting, []deck.Card{r.Game.Hands[waiting][0]}, "7")
	assert.ErrorIs(t, err, game.ErrNotYourTurn)
	assert.Len(t, mb.broadcasts, seen, "a rejected action must not broadcast anything")
}

func TestPlaySkipBluffRoundTrip(t *testing.T) {
	m, mb, _ := setupManager(t)
	m.Join("ROOM1", "p1", "Alice")
	m.Join("ROOM1", "p2", "Bob")
	r, _ := m.Get("ROOM1")

	acting := r.Game.Players[r.Game.TurnIdx].ID
	other := r.Game.Players[(r.Game.TurnIdx+1)%2].ID

	c := r.Game.Hands[acting][0]
	require.NoError(t, m.PlayCards("ROOM1", acting, []deck.Card{c}, c.Rank))
	require.NotNil(t, mb.lastBroadcast(string(game.EventCardsPlayed)))

	require.NoError(t, m.CallBluff("ROOM1", other))
	require.NotNil(t, mb.lastBroadcast(string(game.EventReveal)))
	assert.Empty(t, r.Game.Pile)

	require.NoError(t, m.SkipTurn("ROOM1", r.Game.Players[r.Game.TurnIdx].ID))

	assert.ErrorIs(t, m.SkipTurn("NOWHERE", "p1"), room.ErrRoomNotFound)
}

func TestNewGame_Rematch(t *testing.T) {
	m, mb, _ := setupManager(t)
	m.Join("ROOM1", "p1", "Alice")
	m.Join("ROOM1", "p2", "Bob")
	r, _ := m.Get("ROOM1")

	// Force a finished game, then ask for a rematch.
	acting := r.Game.Players[r.Game.TurnIdx].ID
	other := r.Game.Players[(r.Game.TurnIdx+1)%2].ID
	c := r.Game.Hands[acting][0]
	r.Game.Hands[acting] = []deck.Card{c}
	require.NoError(t, m.PlayCards("ROOM1", acting, []deck.Card{c}, c.Rank))
	require.NoError(t, m.SkipTurn("ROOM1", other))
	require.Equal(t, game.GameOver, r.Game.Phase)
	require.NotNil(t, mb.lastBroadcast(string(game.EventGameOver)))

	require.NoError(t, m.NewGame("ROOM1"))
	assert.Equal(t, game.AwaitingPlay, r.Game.Phase)
	assert.Nil(t, r.Game.Winner)
	assert.Len(t, r.Game.Hands["p1"], 26)
	assert.Len(t, r.Game.Hands["p2"], 26)
}
