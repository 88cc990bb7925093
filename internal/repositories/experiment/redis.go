package experiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/hog/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix = "experiment:result:"
	nameIndexPrefix = "experiment:name:" // Sorted set of result IDs by creation time
	namesKey        = "experiment:names"
)

// ErrResultNotFound is returned when a result is not found
var ErrResultNotFound = errors.New("experiment result not found")

// Config holds configuration for the Redis experiment repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed experiment repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveResult persists a result to Redis
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}
	if input.Result.ID == "" {
		return errors.New("result ID cannot be empty")
	}
	if input.Result.Name == "" {
		return errors.New("result name cannot be empty")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, resultKeyPrefix+input.Result.ID, resultJSON, 0)
	pipe.ZAdd(ctx, nameIndexPrefix+input.Result.Name, redis.Z{
		Score:  float64(input.Result.CreatedAt.UnixNano()),
		Member: input.Result.ID,
	})
	pipe.SAdd(ctx, namesKey, input.Result.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// GetResult retrieves a result by ID from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.ExperimentResult, error) {
	if input == nil || input.ResultID == "" {
		return nil, errors.New("input and result ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, resultKeyPrefix+input.ResultID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.ExperimentResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// ListResults retrieves the results stored under a name, oldest first
func (r *redisRepository) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and name cannot be empty")
	}

	start := int64(0)
	if input.Limit > 0 {
		start = -int64(input.Limit)
	}

	resultIDs, err := r.client.ZRange(ctx, nameIndexPrefix+input.Name, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get result IDs: %w", err)
	}

	if len(resultIDs) == 0 {
		return &ListResultsOutput{
			Results: []*models.ExperimentResult{},
		}, nil
	}

	// Fetch every result in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(resultIDs))
	for i, id := range resultIDs {
		cmds[i] = pipe.Get(ctx, resultKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	results := make([]*models.ExperimentResult, 0, len(resultIDs))
	for i, cmd := range cmds {
		resultJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Result was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get result %s: %w", resultIDs[i], err)
		}

		var result models.ExperimentResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result %s: %w", resultIDs[i], err)
		}
		results = append(results, &result)
	}

	return &ListResultsOutput{
		Results: results,
	}, nil
}

// ListNames retrieves every experiment name with stored results
func (r *redisRepository) ListNames(ctx context.Context, input *ListNamesInput) (*ListNamesOutput, error) {
	names, err := r.client.SMembers(ctx, namesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get experiment names: %w", err)
	}
	sort.Strings(names)

	return &ListNamesOutput{
		Names: names,
	}, nil
}

// DeleteResult removes a result from Redis
func (r *redisRepository) DeleteResult(ctx context.Context, input *DeleteResultInput) error {
	if input == nil || input.ResultID == "" {
		return errors.New("input and result ID cannot be empty")
	}

	// Get the result first to find its name index
	result, err := r.GetResult(ctx, &GetResultInput{
		ResultID: input.ResultID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, resultKeyPrefix+input.ResultID)
	pipe.ZRem(ctx, nameIndexPrefix+result.Name, input.ResultID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	return nil
}
