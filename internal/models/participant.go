package models

// Participant is one seat at a game of Hog
type Participant struct {
	// Seat is 0 for the player who moves first and 1 otherwise
	Seat int `json:"seat"`

	// Strategy names the strategy playing this seat
	Strategy string `json:"strategy"`

	// Score is the participant's running total
	Score int `json:"score"`
}
