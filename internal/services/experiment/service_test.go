package experiment

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/hog/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/hog/internal/common/uuid/mocks"
	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
	experimentRepo "github.com/KirkDiggler/hog/internal/repositories/experiment"
	repoMocks "github.com/KirkDiggler/hog/internal/repositories/experiment/mocks"
	"github.com/KirkDiggler/hog/internal/services/game"
	gameMocks "github.com/KirkDiggler/hog/internal/services/game/mocks"
	"github.com/KirkDiggler/hog/internal/services/strategy"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExperimentServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGameService *gameMocks.MockService
	mockRepo        *repoMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	catalog         *strategy.Catalog
	ctx             context.Context

	testTime time.Time
}

func (s *ExperimentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.mockCtrl)
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.catalog = strategy.NewCatalog(nil)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
}

func (s *ExperimentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExperimentServiceSuite(t *testing.T) {
	suite.Run(t, new(ExperimentServiceTestSuite))
}

// newService builds a service that rolls the given outcomes in order
func (s *ExperimentServiceTestSuite) newService(outcomes ...int) Service {
	svc, err := New(&Config{
		Samples:       100,
		DiceRoller:    dice.NewTestRoller(outcomes...),
		GameService:   s.mockGameService,
		Repository:    s.mockRepo,
		Catalog:       s.catalog,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return svc
}

func (s *ExperimentServiceTestSuite) TestNew_Validation() {
	roller := dice.NewTestRoller(1)

	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{DiceRoller: roller})
	s.ErrorIs(err, ErrNilGameService)

	_, err = New(&Config{DiceRoller: roller, GameService: s.mockGameService})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{DiceRoller: roller, GameService: s.mockGameService, Repository: s.mockRepo})
	s.ErrorIs(err, ErrNilCatalog)

	_, err = New(&Config{
		DiceRoller:    roller,
		GameService:   s.mockGameService,
		Repository:    s.mockRepo,
		Catalog:       s.catalog,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Samples:       -1,
	})
	s.ErrorIs(err, ErrInvalidSamples)
}

func (s *ExperimentServiceTestSuite) TestAveraged_TestDice() {
	roller := dice.NewTestRoller(3, 1, 5, 6)

	avg, err := Averaged(s.ctx, 1000, func() (float64, error) {
		return float64(roller.Roll(dice.SixSided)), nil
	})
	s.Require().NoError(err)
	s.Equal(3.75, avg)
}

func (s *ExperimentServiceTestSuite) TestAveraged_Errors() {
	_, err := Averaged(s.ctx, 0, func() (float64, error) { return 1, nil })
	s.ErrorIs(err, ErrInvalidSamples)

	boom := errors.New("boom")
	_, err = Averaged(s.ctx, 3, func() (float64, error) { return 0, boom })
	s.ErrorIs(err, boom)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = Averaged(ctx, 3, func() (float64, error) { return 1, nil })
	s.ErrorIs(err, context.Canceled)
}

func (s *ExperimentServiceTestSuite) TestAverageTurnScore() {
	// Alternates a pig out (3, 1) with an 11 (5, 6)
	svc := s.newService(3, 1, 5, 6)

	out, err := svc.AverageTurnScore(s.ctx, &AverageTurnScoreInput{
		NumRolls: 2,
		Samples:  1000,
	})
	s.Require().NoError(err)
	s.Equal(6.0, out.Average)
}

func (s *ExperimentServiceTestSuite) TestMaxScoringNumRolls() {
	svc := s.newService(3)

	out, err := svc.MaxScoringNumRolls(s.ctx, &MaxScoringNumRollsInput{
		Dice:    dice.SixSided,
		Samples: 10,
	})
	s.Require().NoError(err)
	s.Equal(10, out.NumRolls)
	s.Require().Len(out.Averages, 10)
	for i, avg := range out.Averages {
		s.Equal(float64(3*(i+1)), avg)
	}
}

func (s *ExperimentServiceTestSuite) TestMaxScoringNumRolls_TiesGoToFewestDice() {
	// Every turn pigs out, so every number of dice averages 1
	svc := s.newService(1)

	out, err := svc.MaxScoringNumRolls(s.ctx, &MaxScoringNumRollsInput{
		Dice:    dice.SixSided,
		Samples: 5,
	})
	s.Require().NoError(err)
	s.Equal(1, out.NumRolls)
}

func (s *ExperimentServiceTestSuite) TestWinRate_FirstPlayerAlwaysWins() {
	svc := s.newService(1)

	s.mockGameService.EXPECT().
		PlayGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.PlayGameInput) (*game.PlayGameOutput, error) {
			s.NotNil(input.Players[0].Strategy)
			s.NotNil(input.Players[1].Strategy)
			return &game.PlayGameOutput{Game: &models.Game{Winner: 0}}, nil
		}).
		Times(20)

	out, err := svc.WinRate(s.ctx, &WinRateInput{
		Strategy: strategy.Spec{Name: strategy.NameFinal},
		Samples:  10,
	})
	s.Require().NoError(err)
	s.Equal(1.0, out.AsFirst)
	s.Equal(0.0, out.AsSecond)
	s.Equal(0.5, out.WinRate)
}

func (s *ExperimentServiceTestSuite) TestWinRate_StrategyAlwaysWins() {
	svc := s.newService(1)

	s.mockGameService.EXPECT().
		PlayGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.PlayGameInput) (*game.PlayGameOutput, error) {
			winner := 0
			if input.Players[1].Name == "bacon" {
				winner = 1
			}
			return &game.PlayGameOutput{Game: &models.Game{Winner: winner}}, nil
		}).
		Times(8)

	out, err := svc.WinRate(s.ctx, &WinRateInput{
		Strategy: strategy.Spec{Name: strategy.NameBacon},
		Baseline: strategy.Spec{Name: strategy.NameAlwaysRoll, NumRolls: 6},
		Samples:  4,
	})
	s.Require().NoError(err)
	s.Equal(1.0, out.WinRate)
}

func (s *ExperimentServiceTestSuite) TestWinRate_UnknownStrategy() {
	svc := s.newService(1)

	_, err := svc.WinRate(s.ctx, &WinRateInput{
		Strategy: strategy.Spec{Name: "nope"},
	})
	s.ErrorIs(err, strategy.ErrUnknownStrategy)
}

func (s *ExperimentServiceTestSuite) TestWinRate_GameError() {
	svc := s.newService(1)

	s.mockGameService.EXPECT().
		PlayGame(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrInvalidStrategyChoice).
		AnyTimes()

	_, err := svc.WinRate(s.ctx, &WinRateInput{
		Strategy: strategy.Spec{Name: strategy.NameAlwaysRoll, NumRolls: 3},
		Samples:  2,
	})
	s.ErrorIs(err, game.ErrInvalidStrategyChoice)
}

func (s *ExperimentServiceTestSuite) TestRunPlan() {
	svc := s.newService(3)

	gomock.InOrder(
		s.mockUUID.EXPECT().NewUUID().Return("result-1"),
		s.mockUUID.EXPECT().NewUUID().Return("result-2"),
	)
	s.mockGameService.EXPECT().
		PlayGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.PlayGameInput) (*game.PlayGameOutput, error) {
			s.Equal(50, input.Goal)
			return &game.PlayGameOutput{Game: &models.Game{Winner: 1}}, nil
		}).
		Times(6)

	var saved []*models.ExperimentResult
	s.mockRepo.EXPECT().
		SaveResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *experimentRepo.SaveResultInput) error {
			saved = append(saved, input.Result)
			return nil
		}).
		Times(2)

	out, err := svc.RunPlan(s.ctx, &RunPlanInput{
		Plan: &Plan{
			Samples: 3,
			Goal:    50,
			Experiments: []PlanEntry{
				{Name: "six", Kind: models.ExperimentKindMaxScoring, Dice: dice.SixSided},
				{Name: "swap", Kind: models.ExperimentKindWinRate, Strategy: strategy.Spec{Name: strategy.NameSwap}},
			},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Results, 2)
	s.Equal(saved, out.Results)

	maxScoring := out.Results[0]
	s.Equal("result-1", maxScoring.ID)
	s.Equal("six", maxScoring.Name)
	s.Equal(10, maxScoring.NumRolls)
	s.Equal(3, maxScoring.Samples)
	s.Len(maxScoring.Averages, 10)
	s.Equal(s.testTime, maxScoring.CreatedAt)

	winRate := out.Results[1]
	s.Equal("result-2", winRate.ID)
	s.Equal(models.ExperimentKindWinRate, winRate.Kind)
	s.Equal("swap", winRate.Strategy)
	s.Equal("always_roll:5", winRate.Baseline)
	s.Equal(0.5, winRate.WinRate)
}

func (s *ExperimentServiceTestSuite) TestRunPlan_SaveError() {
	svc := s.newService(3)

	s.mockUUID.EXPECT().NewUUID().Return("result-1")
	s.mockRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.RunPlan(s.ctx, &RunPlanInput{
		Plan: &Plan{
			Samples:     1,
			Experiments: []PlanEntry{{Name: "four", Kind: models.ExperimentKindMaxScoring, Dice: dice.FourSided}},
		},
	})
	s.Error(err)
}

func (s *ExperimentServiceTestSuite) TestRunPlan_InvalidPlan() {
	svc := s.newService(3)

	_, err := svc.RunPlan(s.ctx, &RunPlanInput{})
	s.ErrorIs(err, ErrInvalidPlan)

	_, err = svc.RunPlan(s.ctx, &RunPlanInput{Plan: &Plan{}})
	s.ErrorIs(err, ErrInvalidPlan)
}

func (s *ExperimentServiceTestSuite) TestListResults() {
	svc := s.newService(3)
	results := []*models.ExperimentResult{{ID: "a", Name: "final_strategy"}}

	s.mockRepo.EXPECT().
		ListResults(gomock.Any(), &experimentRepo.ListResultsInput{Name: "final_strategy", Limit: 5}).
		Return(&experimentRepo.ListResultsOutput{Results: results}, nil)

	out, err := svc.ListResults(s.ctx, &ListResultsInput{Name: "final_strategy", Limit: 5})
	s.Require().NoError(err)
	s.Equal(results, out.Results)
}
