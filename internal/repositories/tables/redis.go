package tables

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hog/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Redis keys
	distributionsKey = "tables:distributions" // Hash of "rolls:dice" to distribution JSON
	valuesKey        = "tables:values"        // Hash of "rolls:dice:score:opponent" to value

	// Fields per HSET command when saving values
	valueBatchSize = 1000
)

// Config holds configuration for the Redis tables repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tables repository
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

// SaveDistributions stores distributions in a single hash
func (r *redisRepository) SaveDistributions(ctx context.Context, input *SaveDistributionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if len(input.Tables) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(input.Tables))
	for _, table := range input.Tables {
		if table == nil {
			return errors.New("distribution table cannot be nil")
		}
		tableJSON, err := json.Marshal(table)
		if err != nil {
			return fmt.Errorf("failed to marshal distribution %d:%d: %w", table.Rolls, table.Dice, err)
		}
		fields[distributionField(table.Rolls, table.Dice)] = tableJSON
	}

	if err := r.client.HSet(ctx, distributionsKey, fields).Err(); err != nil {
		return fmt.Errorf("failed to save distributions: %w", err)
	}

	return nil
}

// LoadDistributions retrieves every stored distribution ordered by dice then rolls
func (r *redisRepository) LoadDistributions(ctx context.Context, input *LoadDistributionsInput) (*LoadDistributionsOutput, error) {
	raw, err := r.client.HGetAll(ctx, distributionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load distributions: %w", err)
	}

	tables := make([]*models.DistributionTable, 0, len(raw))
	for field, tableJSON := range raw {
		var table models.DistributionTable
		if err := json.Unmarshal([]byte(tableJSON), &table); err != nil {
			return nil, fmt.Errorf("failed to unmarshal distribution %s: %w", field, err)
		}
		tables = append(tables, &table)
	}

	sortTables(tables)

	return &LoadDistributionsOutput{
		Tables: tables,
	}, nil
}

// SaveValues stores expected values, batching fields across one pipeline
func (r *redisRepository) SaveValues(ctx context.Context, input *SaveValuesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if len(input.Entries) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()

	batch := make(map[string]interface{}, valueBatchSize)
	for _, entry := range input.Entries {
		if entry == nil {
			return errors.New("value entry cannot be nil")
		}
		batch[valueField(entry)] = strconv.FormatFloat(entry.Value, 'g', -1, 64)
		if len(batch) == valueBatchSize {
			pipe.HSet(ctx, valuesKey, batch)
			batch = make(map[string]interface{}, valueBatchSize)
		}
	}
	if len(batch) > 0 {
		pipe.HSet(ctx, valuesKey, batch)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save values: %w", err)
	}

	return nil
}

// LoadValues retrieves every stored expected value
func (r *redisRepository) LoadValues(ctx context.Context, input *LoadValuesInput) (*LoadValuesOutput, error) {
	raw, err := r.client.HGetAll(ctx, valuesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load values: %w", err)
	}

	entries := make([]*models.ValueEntry, 0, len(raw))
	for field, value := range raw {
		entry, err := parseValueField(field)
		if err != nil {
			return nil, err
		}
		entry.Value, err = strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %s: %w", field, err)
		}
		entries = append(entries, entry)
	}

	sortEntries(entries)

	return &LoadValuesOutput{
		Entries: entries,
	}, nil
}

func distributionField(rolls, dice int) string {
	return fmt.Sprintf("%d:%d", rolls, dice)
}

func valueField(entry *models.ValueEntry) string {
	return fmt.Sprintf("%d:%d:%d:%d", entry.NumRolls, entry.Dice, entry.Score, entry.OpponentScore)
}

func parseValueField(field string) (*models.ValueEntry, error) {
	parts := strings.Split(field, ":")
	if len(parts) != 4 {
		return nil, fmt.Errorf("malformed value field %q", field)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("malformed value field %q: %w", field, err)
		}
		nums[i] = n
	}

	return &models.ValueEntry{
		NumRolls:      nums[0],
		Dice:          nums[1],
		Score:         nums[2],
		OpponentScore: nums[3],
	}, nil
}

// sortTables orders tables by dice then rolls
func sortTables(tables []*models.DistributionTable) {
	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Dice != tables[j].Dice {
			return tables[i].Dice < tables[j].Dice
		}
		return tables[i].Rolls < tables[j].Rolls
	})
}

// sortEntries orders entries by their table key
func sortEntries(entries []*models.ValueEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Dice != b.Dice {
			return a.Dice < b.Dice
		}
		if a.NumRolls != b.NumRolls {
			return a.NumRolls < b.NumRolls
		}
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.OpponentScore < b.OpponentScore
	})
}
