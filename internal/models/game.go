package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a player reached the goal score
	GameStatusCompleted GameStatus = "completed"
)

// Game represents a single game of Hog between two strategies
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// Goal is the score needed to win
	Goal int `json:"goal"`

	// Participants holds player 0 and player 1, in turn order
	Participants [2]*Participant `json:"participants"`

	// Turns is the full turn log
	Turns []*Turn `json:"turns,omitempty"`

	// Winner is the seat of the winning player once completed
	Winner int `json:"winner"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the game ended
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// Scores returns both scores in seat order
func (g *Game) Scores() (int, int) {
	return g.Participants[0].Score, g.Participants[1].Score
}
