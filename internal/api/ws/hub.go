package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/deck"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Hub is the event gateway: it binds websocket connections to player
// identities, feeds inbound actions into the room manager and fans outbound
// notifications back to a room's participants.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[string]*Client
	roomManager RoomManager
	log         *zap.SugaredLogger
}

func NewHub(roomManager RoomManager, log *zap.SugaredLogger) *Hub {
	return &Hub{
		rooms:       make(map[string]map[string]*Client),
		roomManager: roomManager,
		log:         log,
	}
}

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type outbound struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type playCardsData struct {
	Cards        []deck.Card `json:"cards"`
	DeclaredRank deck.Rank   `json:"declaredRank"`
}

type nameData struct {
	Name string `json:"name"`
}

// HandleWS upgrades the connection and runs its read loop. The room code
// comes from the query string; connecting is joining, and the read loop
// ending (for any reason) is the connection-loss notification.
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		playerID: uuid.NewString(),
		roomCode: roomCode,
		conn:     conn,
		send:     make(chan []byte, 32),
	}
	h.register(client)
	go client.writePump()

	// Tell the client who it is before any state lands.
	h.sendToClient(client, "identity", gin.H{"playerId": client.playerID})

	h.roomManager.Join(roomCode, client.playerID, c.Query("name"))

	defer func() {
		h.unregister(client)
		h.roomManager.Leave(roomCode, client.playerID)
	}()

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debugw("websocket read ended", "player", client.playerID, "error", err)
			}
			return
		}
		h.handleAction(client, msg)
	}
}

func (h *Hub) handleAction(client *Client, msg inbound) {
	var err error
	switch msg.Action {
	case "join_room":
		// Connecting already joined; this only re-applies the name.
		var d nameData
		if err = json.Unmarshal(msg.Data, &d); err == nil {
			err = h.roomManager.SetName(client.roomCode, client.playerID, d.Name)
		}
	case "set_name":
		var d nameData
		if err = json.Unmarshal(msg.Data, &d); err == nil {
			err = h.roomManager.SetName(client.roomCode, client.playerID, d.Name)
		}
	case "play_cards":
		var d playCardsData
		if err = json.Unmarshal(msg.Data, &d); err == nil {
			err = h.roomManager.PlayCards(client.roomCode, client.playerID, d.Cards, d.DeclaredRank)
		}
	case "skip_turn":
		err = h.roomManager.SkipTurn(client.roomCode, client.playerID)
	case "call_bluff":
		err = h.roomManager.CallBluff(client.roomCode, client.playerID)
	case "new_game":
		err = h.roomManager.NewGame(client.roomCode)
	default:
		h.log.Debugw("unknown action", "action", msg.Action, "player", client.playerID)
		return
	}

	// Rejections go back to the acting connection only; room state is
	// untouched so nothing is broadcast.
	if err != nil {
		h.sendToClient(client, "error", gin.H{"error": err.Error()})
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[c.roomCode]; !ok {
		h.rooms[c.roomCode] = make(map[string]*Client)
	}
	h.rooms[c.roomCode][c.playerID] = c
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[c.roomCode]; ok {
		delete(clients, c.playerID)
		if len(clients) == 0 {
			delete(h.rooms, c.roomCode)
		}
	}
	c.Close()
}

// Broadcast sends an action to every participant of a room.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	msg, err := json.Marshal(outbound{Action: action, Data: data})
	if err != nil {
		h.log.Errorw("marshal broadcast", "action", action, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.rooms[roomCode] {
		client.enqueue(msg)
	}
}

// SendTo sends an action to a single participant (private hands, rejections).
func (h *Hub) SendTo(roomCode string, playerID string, action string, data interface{}) {
	h.mu.RLock()
	client, ok := h.rooms[roomCode][playerID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	h.sendToClient(client, action, data)
}

func (h *Hub) sendToClient(client *Client, action string, data interface{}) {
	msg, err := json.Marshal(outbound{Action: action, Data: data})
	if err != nil {
		h.log.Errorw("marshal message", "action", action, "error", err)
		return
	}
	client.enqueue(msg)
}
