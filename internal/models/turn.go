package models

// Turn records a single turn of a game
type Turn struct {
	// Seat is the player who took the turn
	Seat int `json:"seat"`

	// NumRolls is the number of dice the strategy chose
	NumRolls int `json:"num_rolls"`

	// Dice is the number of sides on the dice rolled
	Dice int `json:"dice"`

	// Outcomes holds every face rolled
	Outcomes []int `json:"outcomes,omitempty"`

	// Points is the turn score
	Points int `json:"points"`

	// PigOut indicates a 1 was rolled
	PigOut bool `json:"pig_out,omitempty"`

	// FreeBacon indicates zero dice were rolled
	FreeBacon bool `json:"free_bacon,omitempty"`

	// HogWild indicates four-sided dice were used
	HogWild bool `json:"hog_wild,omitempty"`

	// Swapped indicates the scores were swapped after the turn
	Swapped bool `json:"swapped,omitempty"`

	// Scores holds both scores after the turn, in seat order
	Scores [2]int `json:"scores"`
}
