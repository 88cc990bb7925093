package dice

import (
	"math/rand"
	"sync"
	"time"
)

const (
	// FourSided is the die used when hog wild is in effect
	FourSided = 4

	// SixSided is the default die
	SixSided = 6
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/hog/internal/dice Roller

// Roller rolls a single die
type Roller interface {
	// Roll returns a uniformly random face in 1..sides
	Roll(sides int) int
}

// RandomRoller provides dice rolling functionality
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible experiments
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = SixSided
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// TestRoller returns a fixed sequence of outcomes, cycling back to the
// start once exhausted. The sides argument is ignored.
type TestRoller struct {
	mu       sync.Mutex
	outcomes []int
	next     int
}

// NewTestRoller creates a roller that cycles through outcomes
func NewTestRoller(outcomes ...int) *TestRoller {
	if len(outcomes) == 0 {
		outcomes = []int{1}
	}
	return &TestRoller{
		outcomes: outcomes,
	}
}

// Roll returns the next outcome in the sequence
func (r *TestRoller) Roll(sides int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.outcomes[r.next]
	r.next = (r.next + 1) % len(r.outcomes)
	return v
}
