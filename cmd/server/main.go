package main

import (
	httpapi "github.com/Dadwal-Aryan/Bluff-Backend/internal/api/http"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/api/ws"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/config"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/logger"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/room"
	"github.com/Dadwal-Aryan/Bluff-Backend/internal/store"
)

// @title Bluff Backend API
// @version 1.0
// @description Authoritative server for a multiplayer bluffing card game (Go + Gin)
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New()
	defer log.Sync()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, log)
	hub := ws.NewHub(rm, log)
	rm.SetBroadcaster(hub)

	r := httpapi.SetupRouter(rm, hub, cfg)

	log.Infow("listening", "addr", cfg.HTTPAddr, "minPlayers", cfg.MinPlayers)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
