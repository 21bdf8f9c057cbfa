package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/deck"
)

type fakeRoomManager struct {
	err   error
	calls []string
	cards []deck.Card
	rank  deck.Rank
}

func (f *fakeRoomManager) Join(roomCode, playerID, name string) {
	f.calls = append(f.calls, "join")
}

func (f *fakeRoomManager) Leave(roomCode, playerID string) {
	f.calls = append(f.calls, "leave")
}

func (f *fakeRoomManager) SetName(roomCode, playerID, name string) error {
	f.calls = append(f.calls, "set_name:"+name)
	return f.err
}

func (f *fakeRoomManager) PlayCards(roomCode, playerID string, cards []deck.Card, declared deck.Rank) error {
	f.calls = append(f.calls, "play_cards")
	f.cards = cards
	f.rank = declared
	return f.err
}

func (f *fakeRoomManager) SkipTurn(roomCode, playerID string) error {
	f.calls = append(f.calls, "skip_turn")
	return f.err
}

func (f *fakeRoomManager) CallBluff(roomCode, playerID string) error {
	f.calls = append(f.calls, "call_bluff")
	return f.err
}

func (f *fakeRoomManager) NewGame(roomCode string) error {
	f.calls = append(f.calls, "new_game")
	return f.err
}

func newTestClient(room, player string) *Client {
	return &Client{
		playerID: player,
		roomCode: room,
		send:     make(chan []byte, 8),
	}
}

func drain(t *testing.T, c *Client) []outbound {
	t.Helper()
	var out []outbound
	for {
		select {
		case raw := <-c.send:
			var msg outbound
			require.NoError(t, json.Unmarshal(raw, &msg))
			out = append(out, msg)
		default:
			return out
		}
	}
}

func TestHandleAction_Dispatch(t *testing.T) {
	rm := &fakeRoomManager{}
	h := NewHub(rm, zap.NewNop().Sugar())
	client := newTestClient("R", "p1")

	h.handleAction(client, inbound{Action: "play_cards", Data: json.RawMessage(
		`{"cards":[{"rank":"7","suit":"♠"}],"declaredRank":"7"}`)})
	h.handleAction(client, inbound{Action: "skip_turn"})
	h.handleAction(client, inbound{Action: "call_bluff"})
	h.handleAction(client, inbound{Action: "new_game"})
	h.handleAction(client, inbound{Action: "set_name", Data: json.RawMessage(`{"name":"Zee"}`)})
	h.handleAction(client, inbound{Action: "teleport"})

	assert.Equal(t, []string{"play_cards", "skip_turn", "call_bluff", "new_game", "set_name:Zee"}, rm.calls)
	assert.Equal(t, []deck.Card{{Rank: "7", Suit: deck.Spades}}, rm.cards)
	assert.Equal(t, deck.Rank("7"), rm.rank)
	assert.Empty(t, drain(t, client), "successful actions answer via the hub, not directly")
}

func TestHandleAction_RejectionGoesToActor(t *testing.T) {
	rm := &fakeRoomManager{err: assert.AnError}
	h := NewHub(rm, zap.NewNop().Sugar())
	client := newTestClient("R", "p1")

	h.handleAction(client, inbound{Action: "skip_turn"})

	msgs := drain(t, client)
	require.Len(t, msgs, 1)
	assert.Equal(t, "error", msgs[0].Action)
}

func TestBroadcastAndSendTo(t *testing.T) {
	h := NewHub(&fakeRoomManager{}, zap.NewNop().Sugar())
	a := newTestClient("R", "a")
	b := newTestClient("R", "b")
	other := newTestClient("OTHER", "c")
	h.register(a)
	h.register(b)
	h.register(other)

	h.Broadcast("R", "state", map[string]int{"pileSize": 3})
	assert.Len(t, drain(t, a), 1)
	assert.Len(t, drain(t, b), 1)
	assert.Empty(t, drain(t, other))

	h.SendTo("R", "b", "hand", nil)
	assert.Empty(t, drain(t, a))
	msgs := drain(t, b)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hand", msgs[0].Action)

	// Unknown targets are dropped silently.
	h.SendTo("R", "ghost", "hand", nil)
	h.SendTo("NOWHERE", "a", "hand", nil)
}
