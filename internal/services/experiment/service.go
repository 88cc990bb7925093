package experiment

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/hog/internal/common/clock"
	"github.com/KirkDiggler/hog/internal/common/uuid"
	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
	experimentRepo "github.com/KirkDiggler/hog/internal/repositories/experiment"
	"github.com/KirkDiggler/hog/internal/services/game"
	"github.com/KirkDiggler/hog/internal/services/scoring"
	"github.com/KirkDiggler/hog/internal/services/strategy"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	samples       int
	logger        *log.Logger
	diceRoller    dice.Roller
	gameService   game.Service
	repo          experimentRepo.Repository
	catalog       *strategy.Catalog
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new experiment service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	samples := cfg.Samples
	if samples == 0 {
		samples = DefaultSamples
	}
	if samples < 0 {
		return nil, ErrInvalidSamples
	}

	return &service{
		samples:       samples,
		logger:        cfg.Logger,
		diceRoller:    cfg.DiceRoller,
		gameService:   cfg.GameService,
		repo:          cfg.Repository,
		catalog:       cfg.Catalog,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Averaged calls fn samples times and returns the arithmetic mean of its
// results. The context is checked before every sample.
func Averaged(ctx context.Context, samples int, fn func() (float64, error)) (float64, error) {
	if samples <= 0 {
		return 0, ErrInvalidSamples
	}

	var total float64
	for i := 0; i < samples; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		v, err := fn()
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total / float64(samples), nil
}

// AverageTurnScore averages the score of rolling NumRolls dice
func (s *service) AverageTurnScore(ctx context.Context, input *AverageTurnScoreInput) (*AverageTurnScoreOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	sides := input.Dice
	if sides == 0 {
		sides = dice.SixSided
	}

	avg, err := Averaged(ctx, s.samplesOr(input.Samples), func() (float64, error) {
		result, err := scoring.RollDice(s.diceRoller, input.NumRolls, sides)
		if err != nil {
			return 0, err
		}
		return float64(result.Score), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to average %d rolls: %w", input.NumRolls, err)
	}

	return &AverageTurnScoreOutput{
		Average: avg,
	}, nil
}

// MaxScoringNumRolls averages every number of dice from 1 to
// scoring.MaxRolls and returns the best. Ties go to fewer dice.
func (s *service) MaxScoringNumRolls(ctx context.Context, input *MaxScoringNumRollsInput) (*MaxScoringNumRollsOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	best, bestAverage := 0, 0.0
	averages := make([]float64, 0, scoring.MaxRolls)
	for n := 1; n <= scoring.MaxRolls; n++ {
		out, err := s.AverageTurnScore(ctx, &AverageTurnScoreInput{
			NumRolls: n,
			Dice:     input.Dice,
			Samples:  input.Samples,
		})
		if err != nil {
			return nil, err
		}
		s.logf("%d dice scores %.4f on average", n, out.Average)

		averages = append(averages, out.Average)
		if best == 0 || out.Average > bestAverage {
			best, bestAverage = n, out.Average
		}
	}

	return &MaxScoringNumRollsOutput{
		NumRolls: best,
		Averages: averages,
	}, nil
}

// WinRate plays Samples games with the strategy first and Samples games
// with it second, and averages the two win rates. Both seat orders run
// concurrently.
func (s *service) WinRate(ctx context.Context, input *WinRateInput) (*WinRateOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	baselineSpec := input.Baseline
	if baselineSpec.Name == "" {
		baselineSpec = DefaultBaseline
	}

	subject, err := s.catalog.Build(input.Strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to build strategy: %w", err)
	}
	baseline, err := s.catalog.Build(baselineSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to build baseline: %w", err)
	}

	player := game.Player{Name: input.Strategy.String(), Strategy: subject}
	opponent := game.Player{Name: baselineSpec.String(), Strategy: baseline}
	samples := s.samplesOr(input.Samples)

	var asFirst, asSecond float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wins, err := s.averageWins(gctx, samples, input.Goal, [2]game.Player{player, opponent}, 0)
		asFirst = wins
		return err
	})
	g.Go(func() error {
		wins, err := s.averageWins(gctx, samples, input.Goal, [2]game.Player{opponent, player}, 1)
		asSecond = wins
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to measure win rate: %w", err)
	}

	out := &WinRateOutput{
		WinRate:  (asFirst + asSecond) / 2,
		AsFirst:  asFirst,
		AsSecond: asSecond,
	}
	s.logf("%s win rate against %s: %.4f", player.Name, opponent.Name, out.WinRate)

	return out, nil
}

// averageWins returns the fraction of games won by the player in seat
func (s *service) averageWins(ctx context.Context, samples, goal int, players [2]game.Player, seat int) (float64, error) {
	return Averaged(ctx, samples, func() (float64, error) {
		out, err := s.gameService.PlayGame(ctx, &game.PlayGameInput{
			Players: players,
			Goal:    goal,
		})
		if err != nil {
			return 0, err
		}
		if out.Game.Winner == seat {
			return 1, nil
		}
		return 0, nil
	})
}

// RunPlan runs the plan's experiments in order and stores each result as
// soon as it is measured.
func (s *service) RunPlan(ctx context.Context, input *RunPlanInput) (*RunPlanOutput, error) {
	if input == nil || input.Plan == nil {
		return nil, fmt.Errorf("%w: plan cannot be nil", ErrInvalidPlan)
	}
	plan := input.Plan
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	results := make([]*models.ExperimentResult, 0, len(plan.Experiments))
	for _, entry := range plan.Experiments {
		samples := entry.Samples
		if samples == 0 {
			samples = s.samplesOr(plan.Samples)
		}

		result := &models.ExperimentResult{
			ID:      s.uuidGenerator.NewUUID(),
			Name:    entry.Name,
			Kind:    entry.Kind,
			Samples: samples,
		}

		switch entry.Kind {
		case models.ExperimentKindMaxScoring:
			out, err := s.MaxScoringNumRolls(ctx, &MaxScoringNumRollsInput{
				Dice:    entry.Dice,
				Samples: samples,
			})
			if err != nil {
				return nil, fmt.Errorf("experiment %s failed: %w", entry.Name, err)
			}
			result.Dice = entry.Dice
			result.NumRolls = out.NumRolls
			result.Averages = out.Averages
			s.logf("%s: max scoring num rolls for %d-sided dice: %d", entry.Name, entry.Dice, out.NumRolls)

		case models.ExperimentKindWinRate:
			baseline := entry.baseline()
			out, err := s.WinRate(ctx, &WinRateInput{
				Strategy: entry.Strategy,
				Baseline: baseline,
				Samples:  samples,
				Goal:     plan.Goal,
			})
			if err != nil {
				return nil, fmt.Errorf("experiment %s failed: %w", entry.Name, err)
			}
			result.Strategy = entry.Strategy.String()
			result.Baseline = baseline.String()
			result.WinRate = out.WinRate
		}

		result.CreatedAt = s.clock.Now()
		if err := s.repo.SaveResult(ctx, &experimentRepo.SaveResultInput{
			Result: result,
		}); err != nil {
			return nil, fmt.Errorf("failed to save result for %s: %w", entry.Name, err)
		}
		results = append(results, result)
	}

	return &RunPlanOutput{
		Results: results,
	}, nil
}

// ListResults returns stored results for an experiment name
func (s *service) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	out, err := s.repo.ListResults(ctx, &experimentRepo.ListResultsInput{
		Name:  input.Name,
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return &ListResultsOutput{
		Results: out.Results,
	}, nil
}

func (s *service) samplesOr(n int) int {
	if n > 0 {
		return n
	}
	return s.samples
}

func (s *service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
