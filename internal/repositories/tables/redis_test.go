package tables

import (
	"context"
	"testing"

	"github.com/KirkDiggler/hog/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestDistributions_RoundTrip() {
	err := s.repo.SaveDistributions(s.ctx, &SaveDistributionsInput{
		Tables: []*models.DistributionTable{
			{Rolls: 2, Dice: 6, Probabilities: map[int]float64{1: 11.0 / 36, 12: 1.0 / 36}},
			{Rolls: 1, Dice: 4, Probabilities: map[int]float64{1: 0.25, 2: 0.25, 3: 0.25, 4: 0.25}},
			{Rolls: 1, Dice: 6, Probabilities: map[int]float64{1: 1.0 / 6}},
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.LoadDistributions(s.ctx, &LoadDistributionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Tables, 3)

	s.Equal(4, out.Tables[0].Dice)
	s.Equal(1, out.Tables[1].Rolls)
	s.Equal(6, out.Tables[1].Dice)
	s.Equal(2, out.Tables[2].Rolls)
	s.Equal(11.0/36, out.Tables[2].Probabilities[1])
	s.Equal(1.0/36, out.Tables[2].Probabilities[12])
}

func (s *RedisRepositoryTestSuite) TestDistributions_Overwrite() {
	s.Require().NoError(s.repo.SaveDistributions(s.ctx, &SaveDistributionsInput{
		Tables: []*models.DistributionTable{{Rolls: 1, Dice: 6, Probabilities: map[int]float64{1: 0.5}}},
	}))
	s.Require().NoError(s.repo.SaveDistributions(s.ctx, &SaveDistributionsInput{
		Tables: []*models.DistributionTable{{Rolls: 1, Dice: 6, Probabilities: map[int]float64{1: 1.0 / 6}}},
	}))

	out, err := s.repo.LoadDistributions(s.ctx, &LoadDistributionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Tables, 1)
	s.Equal(1.0/6, out.Tables[0].Probabilities[1])
}

func (s *RedisRepositoryTestSuite) TestLoad_Empty() {
	dists, err := s.repo.LoadDistributions(s.ctx, &LoadDistributionsInput{})
	s.Require().NoError(err)
	s.Empty(dists.Tables)

	values, err := s.repo.LoadValues(s.ctx, &LoadValuesInput{})
	s.Require().NoError(err)
	s.Empty(values.Entries)
}

func (s *RedisRepositoryTestSuite) TestValues_RoundTripAcrossBatches() {
	entries := make([]*models.ValueEntry, 0, valueBatchSize+5)
	for i := 0; i < valueBatchSize+5; i++ {
		entries = append(entries, &models.ValueEntry{
			NumRolls:      i % 11,
			Dice:          6,
			Score:         i / 11,
			OpponentScore: 7,
			Value:         float64(i) / 3,
		})
	}

	s.Require().NoError(s.repo.SaveValues(s.ctx, &SaveValuesInput{Entries: entries}))

	out, err := s.repo.LoadValues(s.ctx, &LoadValuesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, len(entries))

	byKey := map[string]float64{}
	for _, entry := range out.Entries {
		byKey[valueField(entry)] = entry.Value
	}
	for _, entry := range entries {
		s.Equal(entry.Value, byKey[valueField(entry)])
	}
}

func (s *RedisRepositoryTestSuite) TestLoadValues_Malformed() {
	s.Require().NoError(s.client.HSet(s.ctx, valuesKey, "not-a-key", "1").Err())

	_, err := s.repo.LoadValues(s.ctx, &LoadValuesInput{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSave_Validation() {
	s.Error(s.repo.SaveDistributions(s.ctx, nil))
	s.Error(s.repo.SaveValues(s.ctx, nil))
	s.Error(s.repo.SaveDistributions(s.ctx, &SaveDistributionsInput{Tables: []*models.DistributionTable{nil}}))
	s.Error(s.repo.SaveValues(s.ctx, &SaveValuesInput{Entries: []*models.ValueEntry{nil}}))
}
