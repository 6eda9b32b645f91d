// FILE: internal/core/player.go
package core

import (
	"strings"

	"github.com/google/uuid"
)

// Player is a participant bound to one color of a game
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// PlayerConfig carries the user-supplied part of a player
type PlayerConfig struct {
	Name string `json:"name" validate:"required,max=40"`
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, color Color) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Name:  strings.TrimSpace(config.Name),
		Color: color,
	}
}

// DisplayName falls back to a generic label for unnamed players
func (p *Player) DisplayName() string {
	if p == nil || p.Name == "" {
		return "Player"
	}
	return p.Name
}
