package tables

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
	"github.com/KirkDiggler/hog/internal/probability"
	tablesRepo "github.com/KirkDiggler/hog/internal/repositories/tables"
	"github.com/KirkDiggler/hog/internal/services/scoring"
	"github.com/KirkDiggler/hog/internal/services/strategy"
)

// service implements the Service interface
type service struct {
	repo      tablesRepo.Repository
	evaluator *strategy.Evaluator
}

// New creates a new tables service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Evaluator == nil {
		return nil, ErrNilEvaluator
	}

	return &service{
		repo:      cfg.Repository,
		evaluator: cfg.Evaluator,
	}, nil
}

// Warm loads every saved distribution into the cache, then computes the
// pairs still missing and saves only those.
func (s *service) Warm(ctx context.Context, input *WarmInput) (*WarmOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	maxRolls := input.MaxRolls
	if maxRolls == 0 {
		maxRolls = scoring.MaxRolls
	}
	if maxRolls < 0 {
		return nil, fmt.Errorf("%w: max rolls %d", ErrInvalidInput, maxRolls)
	}
	sides := input.Dice
	if len(sides) == 0 {
		sides = []int{dice.FourSided, dice.SixSided}
	}

	saved, err := s.repo.LoadDistributions(ctx, &tablesRepo.LoadDistributionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load distributions: %w", err)
	}

	cache := s.evaluator.Cache()
	loaded := make(map[probability.Key]probability.Distribution, len(saved.Tables))
	for _, table := range saved.Tables {
		loaded[probability.Key{Rolls: table.Rolls, Dice: table.Dice}] = probability.Distribution(table.Probabilities)
	}
	cache.Load(loaded)

	var computed []*models.DistributionTable
	for _, d := range sides {
		for rolls := 1; rolls <= maxRolls; rolls++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, ok := loaded[probability.Key{Rolls: rolls, Dice: d}]; ok {
				continue
			}

			dist, err := cache.Get(rolls, d)
			if err != nil {
				return nil, fmt.Errorf("failed to calculate distribution %d:%d: %w", rolls, d, err)
			}
			computed = append(computed, &models.DistributionTable{
				Rolls:         rolls,
				Dice:          d,
				Probabilities: copyProbabilities(dist),
			})
		}
	}

	if len(computed) > 0 {
		if err := s.repo.SaveDistributions(ctx, &tablesRepo.SaveDistributionsInput{
			Tables: computed,
		}); err != nil {
			return nil, fmt.Errorf("failed to save distributions: %w", err)
		}
	}

	return &WarmOutput{
		Loaded:   len(loaded),
		Computed: len(computed),
	}, nil
}

// PrecomputeValues evaluates every roll count for every score pair below
// the goal, using the die the hog wild rule selects for that pair.
func (s *service) PrecomputeValues(ctx context.Context, input *PrecomputeValuesInput) (*PrecomputeValuesOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	goal := input.Goal
	if goal == 0 {
		goal = scoring.GoalScore
	}
	if goal < 0 {
		return nil, fmt.Errorf("%w: goal %d", ErrInvalidInput, goal)
	}

	entries := make([]*models.ValueEntry, 0, goal*goal*(scoring.MaxRolls+1))
	for score := 0; score < goal; score++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for opponentScore := 0; opponentScore < goal; opponentScore++ {
			sides := scoring.SelectDice(score, opponentScore)
			for numRolls := 0; numRolls <= scoring.MaxRolls; numRolls++ {
				value, err := s.evaluator.AverageFutureValue(numRolls, sides, score, opponentScore)
				if err != nil {
					return nil, fmt.Errorf("failed to evaluate %d rolls at %d-%d: %w", numRolls, score, opponentScore, err)
				}
				entries = append(entries, &models.ValueEntry{
					NumRolls:      numRolls,
					Dice:          sides,
					Score:         score,
					OpponentScore: opponentScore,
					Value:         value,
				})
			}
		}
	}

	if err := s.repo.SaveValues(ctx, &tablesRepo.SaveValuesInput{
		Entries: entries,
	}); err != nil {
		return nil, fmt.Errorf("failed to save values: %w", err)
	}

	return &PrecomputeValuesOutput{
		Entries: len(entries),
	}, nil
}

// LoadValues loads the saved expected-value table into the evaluator
func (s *service) LoadValues(ctx context.Context) (*LoadValuesOutput, error) {
	saved, err := s.repo.LoadValues(ctx, &tablesRepo.LoadValuesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load values: %w", err)
	}

	values := make(map[strategy.ValueKey]float64, len(saved.Entries))
	for _, entry := range saved.Entries {
		values[strategy.ValueKey{
			NumRolls:      entry.NumRolls,
			Dice:          entry.Dice,
			Score:         entry.Score,
			OpponentScore: entry.OpponentScore,
		}] = entry.Value
	}
	s.evaluator.LoadValues(values)

	return &LoadValuesOutput{
		Entries: len(values),
	}, nil
}

func copyProbabilities(dist probability.Distribution) map[int]float64 {
	out := make(map[int]float64, len(dist))
	for total, p := range dist {
		out[total] = p
	}
	return out
}
