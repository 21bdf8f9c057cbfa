package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dadwal-Aryan/Bluff-Backend/internal/config"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/room"
)

// @Summary Liveness probe
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Get room snapshot
// @Description Public room state: players, hand sizes, whose turn, open rank
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} RoomResponse
// @Router /rooms/{code} [get]
func RoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, RoomResponse{
			Code:      rx.Code,
			CreatedAt: rx.CreatedAt,
			State:     rx.Snapshot(),
		})
	}
}

// @Summary Get game variant config
// @Tags Meta
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /config [get]
func ConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ConfigResponse{
			MinPlayers: cfg.MinPlayers,
			HandSize:   cfg.HandSize,
		})
	}
}
