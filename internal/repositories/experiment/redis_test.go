package experiment

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/hog/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
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
	s.testNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) result(id, name string, offset time.Duration) *models.ExperimentResult {
	return &models.ExperimentResult{
		ID:        id,
		Name:      name,
		Kind:      models.ExperimentKindWinRate,
		Strategy:  "final",
		Baseline:  "always_roll:5",
		Samples:   1000,
		WinRate:   0.61,
		CreatedAt: s.testNow.Add(offset),
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetResult() {
	err := s.repo.SaveResult(s.ctx, &SaveResultInput{
		Result: s.result("result-1", "final_strategy", 0),
	})
	s.Require().NoError(err)

	got, err := s.repo.GetResult(s.ctx, &GetResultInput{ResultID: "result-1"})
	s.Require().NoError(err)
	s.Equal("final_strategy", got.Name)
	s.Equal(models.ExperimentKindWinRate, got.Kind)
	s.Equal("final", got.Strategy)
	s.Equal(0.61, got.WinRate)
	s.Equal(s.testNow.Unix(), got.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSaveResult_Validation() {
	s.Error(s.repo.SaveResult(s.ctx, nil))
	s.Error(s.repo.SaveResult(s.ctx, &SaveResultInput{}))
	s.Error(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: &models.ExperimentResult{Name: "x"}}))
	s.Error(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: &models.ExperimentResult{ID: "x"}}))
}

func (s *RedisRepositoryTestSuite) TestGetResult_NotFound() {
	_, err := s.repo.GetResult(s.ctx, &GetResultInput{ResultID: "missing"})
	s.ErrorIs(err, ErrResultNotFound)
}

func (s *RedisRepositoryTestSuite) TestListResults_OrderedByCreation() {
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: s.result("late", "final_strategy", 2*time.Minute)}))
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: s.result("early", "final_strategy", 0)}))
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: s.result("middle", "final_strategy", time.Minute)}))
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: s.result("other", "swap_strategy", 0)}))

	out, err := s.repo.ListResults(s.ctx, &ListResultsInput{Name: "final_strategy"})
	s.Require().NoError(err)
	s.Require().Len(out.Results, 3)
	s.Equal("early", out.Results[0].ID)
	s.Equal("middle", out.Results[1].ID)
	s.Equal("late", out.Results[2].ID)

	out, err = s.repo.ListResults(s.ctx, &ListResultsInput{Name: "final_strategy", Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Results, 1)
	s.Equal("late", out.Results[0].ID)

	names, err := s.repo.ListNames(s.ctx, &ListNamesInput{})
	s.Require().NoError(err)
	s.Equal([]string{"final_strategy", "swap_strategy"}, names.Names)
}

func (s *RedisRepositoryTestSuite) TestListResults_Empty() {
	out, err := s.repo.ListResults(s.ctx, &ListResultsInput{Name: "nothing"})
	s.Require().NoError(err)
	s.Empty(out.Results)
}

func (s *RedisRepositoryTestSuite) TestDeleteResult() {
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: s.result("result-1", "final_strategy", 0)}))

	err := s.repo.DeleteResult(s.ctx, &DeleteResultInput{ResultID: "result-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetResult(s.ctx, &GetResultInput{ResultID: "result-1"})
	s.ErrorIs(err, ErrResultNotFound)

	out, err := s.repo.ListResults(s.ctx, &ListResultsInput{Name: "final_strategy"})
	s.Require().NoError(err)
	s.Empty(out.Results)

	err = s.repo.DeleteResult(s.ctx, &DeleteResultInput{ResultID: "result-1"})
	s.ErrorIs(err, ErrResultNotFound)
}
