package game

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/hog/internal/common/clock"
	"github.com/KirkDiggler/hog/internal/common/uuid"
	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
	"github.com/KirkDiggler/hog/internal/services/scoring"
)

// service implements the Service interface
type service struct {
	goalScore     int
	trace         *log.Logger
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	goal := cfg.GoalScore
	if goal == 0 {
		goal = scoring.GoalScore
	}
	if goal < 0 {
		return nil, ErrInvalidGoal
	}

	return &service{
		goalScore:     goal,
		trace:         cfg.Trace,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// PlayGame simulates a game and returns the final scores of both players,
// player 0 first.
func (s *service) PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}
	for seat, player := range input.Players {
		if player.Strategy == nil {
			return nil, fmt.Errorf("%w: player %d", ErrNilStrategy, seat)
		}
	}

	goal := s.goal(input.Goal)
	game := &models.Game{
		ID:     s.uuidGenerator.NewUUID(),
		Status: models.GameStatusActive,
		Goal:   goal,
		Participants: [2]*models.Participant{
			{Seat: 0, Strategy: input.Players[0].Name},
			{Seat: 1, Strategy: input.Players[1].Name},
		},
		CreatedAt: s.clock.Now(),
	}

	scores := [2]int{}
	who := 0
	for max(scores[0], scores[1]) < goal {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		score, opponentScore := scores[who], scores[other(who)]
		numRolls := input.Players[who].Strategy(score, opponentScore)

		out, err := s.TakeTurn(ctx, &TakeTurnInput{
			Score:         score,
			OpponentScore: opponentScore,
			NumRolls:      numRolls,
			Goal:          goal,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to take turn for player %d: %w", who, err)
		}

		scores[who], scores[other(who)] = out.Score, out.OpponentScore

		if input.RecordTurns {
			turn := out.Turn
			turn.Seat = who
			turn.Scores = scores
			game.Turns = append(game.Turns, turn)
		}

		who = other(who)
	}

	game.Participants[0].Score = scores[0]
	game.Participants[1].Score = scores[1]
	game.Winner = winner(scores)
	game.Status = models.GameStatusCompleted
	game.CompletedAt = s.clock.Now()

	return &PlayGameOutput{
		Game: game,
	}, nil
}

// TakeTurn rolls the chosen number of dice with the die picked by the hog
// wild rule and applies the swine swap.
func (s *service) TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}
	if input.NumRolls < 0 || input.NumRolls > scoring.MaxRolls {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategyChoice, input.NumRolls)
	}

	goal := s.goal(input.Goal)
	if input.Score >= goal || input.OpponentScore >= goal {
		return nil, ErrGameOver
	}

	sides := scoring.SelectDice(input.Score, input.OpponentScore)
	result, err := scoring.TakeTurn(s.diceRoller, input.NumRolls, input.OpponentScore, sides, goal)
	if err != nil {
		return nil, err
	}

	score, opponentScore := input.Score+result.Score, input.OpponentScore
	swapped := scoring.IsSwap(score, opponentScore)
	if swapped {
		score, opponentScore = opponentScore, score
	}

	turn := &models.Turn{
		NumRolls:  input.NumRolls,
		Outcomes:  result.Outcomes,
		Points:    result.Score,
		PigOut:    result.PigOut,
		FreeBacon: result.FreeBacon,
		HogWild:   sides == dice.FourSided,
		Swapped:   swapped,
		Scores:    [2]int{score, opponentScore},
	}
	if !result.FreeBacon {
		turn.Dice = sides
	}

	if s.trace != nil {
		s.trace.Printf("turn: %d dice (d%d) scored %d, scores %d-%d swapped=%t",
			input.NumRolls, sides, result.Score, score, opponentScore, swapped)
	}

	return &TakeTurnOutput{
		Turn:          turn,
		Score:         score,
		OpponentScore: opponentScore,
	}, nil
}

func (s *service) goal(override int) int {
	if override > 0 {
		return override
	}
	return s.goalScore
}

// other returns the other player, for a player numbered 0 or 1
func other(who int) int {
	return 1 - who
}

// winner returns 0 if player 0 finished ahead and 1 otherwise
func winner(scores [2]int) int {
	if scores[0] > scores[1] {
		return 0
	}
	return 1
}
