package models

// DistributionTable is a persisted turn-total distribution
type DistributionTable struct {
	Rolls         int             `json:"rolls"`
	Dice          int             `json:"dice"`
	Probabilities map[int]float64 `json:"probabilities"`
}

// ValueEntry is a persisted expected-value table entry
type ValueEntry struct {
	NumRolls      int     `json:"num_rolls"`
	Dice          int     `json:"dice"`
	Score         int     `json:"score"`
	OpponentScore int     `json:"opponent_score"`
	Value         float64 `json:"value"`
}
