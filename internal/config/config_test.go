package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 2, cfg.MinPlayers)
	assert.Zero(t, cfg.HandSize)
}

func TestLoad_ThreePlayerVariant(t *testing.T) {
	t.Setenv("MIN_PLAYERS", "3")
	t.Setenv("HAND_SIZE", "17")
	t.Setenv("HTTP_ADDR", ":9000")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 3, cfg.MinPlayers)
	assert.Equal(t, 17, cfg.HandSize)
}

func TestLoad_IgnoresGarbage(t *testing.T) {
	t.Setenv("MIN_PLAYERS", "many")
	cfg := Load()
	assert.Equal(t, 2, cfg.MinPlayers)
}
