package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	// MinPlayers is the player count that starts a match (2 or 3).
	MinPlayers int
	// HandSize is the cards dealt per player. 0 splits the deck evenly and
	// drops the remainder (2-player variant); the 3-player variant uses 17.
	HandSize int
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:   getenvStr("HTTP_ADDR", ":8080"),
		MinPlayers: getenvInt("MIN_PLAYERS", 2),
		HandSize:   getenvInt("HAND_SIZE", 0),
	}
}
