package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/api/ws"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/config"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/room"
)

func SetupRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// WebSocket gateway: all game actions travel over this.
	r.GET("/ws", hub.HandleWS)

	r.GET("/health", HealthHandler)
	r.GET("/rooms/:code", RoomHandler(rm))
	r.GET("/config", ConfigHandler(cfg))

	return r
}
